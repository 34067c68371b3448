package normalize

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"
)

// Contract terms reached the database through several generations of
// encoders: genuine JSON objects, JSON-encoded strings, single-quoted
// pseudo-JSON wrapped under a "raw" key, and arbitrary free text. The read
// path has to tolerate all of them without dropping data or failing the
// request, so it is an ordered chain of parse strategies - each one total,
// short-circuiting on the first success.

// ContractTermsToWire converts the stored contract_terms column value into
// its wire representation.
func ContractTermsToWire(stored datatypes.JSON) any {
	if len(stored) == 0 {
		return nil
	}

	var decoded any
	if err := json.Unmarshal(stored, &decoded); err != nil {
		// not valid JSON at all - should not happen with a jsonb column,
		// but never fail the request over it
		return string(stored)
	}

	switch v := decoded.(type) {
	case map[string]any:
		raw, ok := v["raw"].(string)
		if !ok {
			// already a structured document without a raw wrapper
			return v
		}
		return recoverRawString(raw)
	case string:
		var reparsed any
		if err := json.Unmarshal([]byte(v), &reparsed); err != nil {
			return v
		}
		return reparsed
	default:
		return decoded
	}
}

// recoverRawString handles data stored by non-standard encoders that
// serialized documents with single quotes. On any parse failure the
// original text is returned unchanged.
func recoverRawString(raw string) any {
	candidate := strings.ReplaceAll(raw, "'", `"`)

	var reparsed any
	if err := json.Unmarshal([]byte(candidate), &reparsed); err != nil {
		return raw
	}
	return reparsed
}

// ContractTermsToStorage converts caller-provided contract terms into the
// value persisted in the contract_terms column. A {"raw": X} wrapper is
// unwrapped so that X itself is what gets stored.
func ContractTermsToStorage(in any) (datatypes.JSON, error) {
	if m, ok := in.(map[string]any); ok {
		if raw, exists := m["raw"]; exists {
			in = raw
		}
	}

	b, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// ContractTermsFromSource normalizes a contract_terms cell from a seed
// source: valid JSON text is stored as the parsed value, anything else is
// preserved under a raw wrapper.
func ContractTermsFromSource(s string) datatypes.JSON {
	var parsed any
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		b, _ := json.Marshal(map[string]any{"raw": s})
		return datatypes.JSON(b)
	}

	b, _ := json.Marshal(parsed)
	return datatypes.JSON(b)
}
