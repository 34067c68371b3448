package controllers

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/vantix-dev/supplierguard/shared"
)

type insightsGenerator interface {
	GenerateInsights(ctx context.Context) (string, error)
}

type insightsController struct {
	insightsService insightsGenerator
}

func NewInsightsController(insightsService insightsGenerator) *insightsController {
	return &insightsController{
		insightsService: insightsService,
	}
}

func (c *insightsController) Get(ctx shared.Context) error {
	insights, err := c.insightsService.GenerateInsights(ctx.Request().Context())
	if err != nil {
		return echo.NewHTTPError(502, "insights provider unavailable").WithInternal(err)
	}

	return ctx.JSON(200, echo.Map{"insights": insights})
}
