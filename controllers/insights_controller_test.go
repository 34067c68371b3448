package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInsightsGenerator struct {
	insights string
	err      error
}

func (f *fakeInsightsGenerator) GenerateInsights(ctx context.Context) (string, error) {
	return f.insights, f.err
}

func TestInsightsControllerGet(t *testing.T) {
	t.Run("should return the generated insights", func(t *testing.T) {
		ctx, rec := newContext(t, http.MethodGet, "")

		controller := NewInsightsController(&fakeInsightsGenerator{insights: "supplier 4 trends non-compliant"})

		require.NoError(t, controller.Get(ctx))

		var payload map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, "supplier 4 trends non-compliant", payload["insights"])
	})

	t.Run("a provider failure surfaces as 502", func(t *testing.T) {
		ctx, _ := newContext(t, http.MethodGet, "")

		controller := NewInsightsController(&fakeInsightsGenerator{err: fmt.Errorf("quota exceeded")})

		err := controller.Get(ctx)
		require.Error(t, err)

		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 502, he.Code)
	})
}
