package router

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"
	"github.com/vantix-dev/supplierguard/controllers"
	"github.com/vantix-dev/supplierguard/database/repositories"
	"github.com/vantix-dev/supplierguard/services"
	"github.com/vantix-dev/supplierguard/shared"
)

// RegisterRoutes wires repositories, services and controllers onto the echo
// instance. The route names mirror the public surface consumed by the
// frontend, so they are not RESTful on purpose.
func RegisterRoutes(e *echo.Echo, db shared.DB) error {
	supplierRepository := repositories.NewSupplierRepository(db)
	complianceRecordRepository := repositories.NewComplianceRecordRepository(db)

	insightsService, err := services.NewInsightsService(
		complianceRecordRepository,
		viper.GetString("GEMINI_API_KEY"),
		viper.GetString("GEMINI_MODEL"),
		viper.GetDuration("INSIGHTS_TIMEOUT"),
	)
	if err != nil {
		return err
	}

	supplierController := controllers.NewSupplierController(supplierRepository)
	complianceRecordController := controllers.NewComplianceRecordController(complianceRecordRepository)
	insightsController := controllers.NewInsightsController(insightsService)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, echo.Map{"status": "ok", "time": time.Now().UTC()})
	})

	e.GET("/getsuppliers", supplierController.List)
	e.GET("/getsupplier/:id", supplierController.Read)
	e.POST("/addsupplier", supplierController.Create)

	e.POST("/addcompliancerecord", complianceRecordController.Create)
	e.GET("/getcompliancerecords/:supplierId", complianceRecordController.ListBySupplier)

	e.GET("/getaiinsights", insightsController.Get)

	return nil
}
