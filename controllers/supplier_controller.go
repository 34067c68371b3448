package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/vantix-dev/supplierguard/database"
	"github.com/vantix-dev/supplierguard/dtos"
	"github.com/vantix-dev/supplierguard/shared"
	"gorm.io/gorm"
)

type supplierController struct {
	supplierRepository shared.SupplierRepository
}

func NewSupplierController(supplierRepository shared.SupplierRepository) *supplierController {
	return &supplierController{
		supplierRepository: supplierRepository,
	}
}

func (c *supplierController) List(ctx shared.Context) error {
	suppliers, err := c.supplierRepository.All()
	if err != nil {
		return err
	}

	return ctx.JSON(200, dtos.SuppliersToDTO(suppliers))
}

func (c *supplierController) Read(ctx shared.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid supplier id").WithInternal(err)
	}

	supplier, err := c.supplierRepository.Read(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "Supplier not found")
		}
		return err
	}

	return ctx.JSON(200, dtos.SupplierToDTO(supplier))
}

func (c *supplierController) Create(ctx shared.Context) error {
	var req dtos.CreateSupplierRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to parse supplier").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	supplier, err := req.ToModel()
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	if err := c.supplierRepository.Create(nil, &supplier); err != nil {
		if database.IsConstraintViolationError(err) {
			return echo.NewHTTPError(400, err.Error())
		}
		return err
	}

	return ctx.JSON(200, echo.Map{"supplierId": supplier.SupplierID})
}
