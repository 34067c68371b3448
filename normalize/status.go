package normalize

const (
	StatusCompliant    = "Compliant"
	StatusNonCompliant = "Non-Compliant"
)

// Status maps the source pass/fail vocabulary onto the canonical one.
// Unknown values pass through unchanged.
func Status(source string) string {
	switch source {
	case "Pass":
		return StatusCompliant
	case "Fail":
		return StatusNonCompliant
	default:
		return source
	}
}
