package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vantix-dev/supplierguard/normalize"
	"gorm.io/datatypes"
)

func TestContractTermsToWire(t *testing.T) {
	t.Run("should recover single-quoted pseudo JSON stored under a raw wrapper", func(t *testing.T) {
		stored := datatypes.JSON(`{"raw": "{'k': 'v'}"}`)

		result := normalize.ContractTermsToWire(stored)

		assert.Equal(t, map[string]any{"k": "v"}, result)
	})

	t.Run("should fall back to the raw text when it is not parseable", func(t *testing.T) {
		stored := datatypes.JSON(`{"raw": "not json at all"}`)

		result := normalize.ContractTermsToWire(stored)

		assert.Equal(t, "not json at all", result)
	})

	t.Run("should parse a stored JSON string containing structured data", func(t *testing.T) {
		stored := datatypes.JSON(`"{\"payment_terms\": \"net30\"}"`)

		result := normalize.ContractTermsToWire(stored)

		assert.Equal(t, map[string]any{"payment_terms": "net30"}, result)
	})

	t.Run("should pass a stored plain string through unchanged", func(t *testing.T) {
		stored := datatypes.JSON(`"standard master agreement"`)

		result := normalize.ContractTermsToWire(stored)

		assert.Equal(t, "standard master agreement", result)
	})

	t.Run("should pass a structured document without raw key through unchanged", func(t *testing.T) {
		stored := datatypes.JSON(`{"payment_terms": "net30", "penalty_clause": true}`)

		result := normalize.ContractTermsToWire(stored)

		assert.Equal(t, map[string]any{"payment_terms": "net30", "penalty_clause": true}, result)
	})

	t.Run("should pass a document with a non-string raw value through unchanged", func(t *testing.T) {
		stored := datatypes.JSON(`{"raw": 42}`)

		result := normalize.ContractTermsToWire(stored)

		assert.Equal(t, map[string]any{"raw": float64(42)}, result)
	})

	t.Run("should return nil for an empty column", func(t *testing.T) {
		assert.Nil(t, normalize.ContractTermsToWire(nil))
	})
}

func TestContractTermsToStorage(t *testing.T) {
	t.Run("should unwrap a raw wrapper before persisting", func(t *testing.T) {
		stored, err := normalize.ContractTermsToStorage(map[string]any{"raw": "free text terms"})

		require.NoError(t, err)
		assert.JSONEq(t, `"free text terms"`, string(stored))
	})

	t.Run("should persist a structured document as is", func(t *testing.T) {
		stored, err := normalize.ContractTermsToStorage(map[string]any{"payment_terms": "net30"})

		require.NoError(t, err)
		assert.JSONEq(t, `{"payment_terms": "net30"}`, string(stored))
	})

	t.Run("should persist a plain string as a JSON encoded blob", func(t *testing.T) {
		stored, err := normalize.ContractTermsToStorage("net60, annual renewal")

		require.NoError(t, err)
		assert.JSONEq(t, `"net60, annual renewal"`, string(stored))
	})
}

func TestContractTermsRoundTrip(t *testing.T) {
	t.Run("structured input survives the write-read cycle", func(t *testing.T) {
		input := map[string]any{"incoterms": "FOB", "audit_rights": "quarterly"}

		stored, err := normalize.ContractTermsToStorage(input)
		require.NoError(t, err)

		assert.Equal(t, input, normalize.ContractTermsToWire(stored))
	})

	t.Run("valid JSON text under a raw wrapper survives as structured data", func(t *testing.T) {
		stored, err := normalize.ContractTermsToStorage(map[string]any{"raw": `{"tier": 2}`})
		require.NoError(t, err)

		assert.Equal(t, map[string]any{"tier": float64(2)}, normalize.ContractTermsToWire(stored))
	})

	t.Run("unparseable text is preserved, never dropped", func(t *testing.T) {
		stored, err := normalize.ContractTermsToStorage(map[string]any{"raw": "see annex B"})
		require.NoError(t, err)

		assert.Equal(t, "see annex B", normalize.ContractTermsToWire(stored))
	})
}

func TestContractTermsFromSource(t *testing.T) {
	t.Run("valid JSON text is stored parsed", func(t *testing.T) {
		stored := normalize.ContractTermsFromSource(`{"payment_terms": "net30"}`)

		assert.JSONEq(t, `{"payment_terms": "net30"}`, string(stored))
	})

	t.Run("anything else is preserved under a raw wrapper", func(t *testing.T) {
		stored := normalize.ContractTermsFromSource(`{'payment_terms': 'net60'}`)

		assert.JSONEq(t, `{"raw": "{'payment_terms': 'net60'}"}`, string(stored))
	})
}
