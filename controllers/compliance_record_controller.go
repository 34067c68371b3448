package controllers

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/vantix-dev/supplierguard/database"
	"github.com/vantix-dev/supplierguard/dtos"
	"github.com/vantix-dev/supplierguard/shared"
)

type complianceRecordController struct {
	complianceRecordRepository shared.ComplianceRecordRepository
}

func NewComplianceRecordController(complianceRecordRepository shared.ComplianceRecordRepository) *complianceRecordController {
	return &complianceRecordController{
		complianceRecordRepository: complianceRecordRepository,
	}
}

func (c *complianceRecordController) ListBySupplier(ctx shared.Context) error {
	supplierID, err := strconv.Atoi(ctx.Param("supplierId"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid supplier id").WithInternal(err)
	}

	// an unknown supplier simply has no records - empty list, not an error
	records, err := c.complianceRecordRepository.GetBySupplierID(supplierID)
	if err != nil {
		return err
	}

	return ctx.JSON(200, dtos.ComplianceRecordsToDTO(records))
}

func (c *complianceRecordController) Create(ctx shared.Context) error {
	var req dtos.CreateComplianceRecordRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to parse compliance record").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	record, err := req.ToModel()
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	// the foreign key constraint is the only supplier existence check
	if err := c.complianceRecordRepository.Create(nil, &record); err != nil {
		if database.IsConstraintViolationError(err) {
			return echo.NewHTTPError(400, err.Error())
		}
		return err
	}

	return ctx.JSON(200, echo.Map{"message": "Compliance record added successfully"})
}
