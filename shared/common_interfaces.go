package shared

import (
	"github.com/vantix-dev/supplierguard/database/models"
)

type SupplierRepository interface {
	All() ([]models.Supplier, error)
	Read(supplierID int) (models.Supplier, error)
	Create(tx DB, supplier *models.Supplier) error
}

type ComplianceRecordRepository interface {
	All() ([]models.ComplianceRecord, error)
	GetBySupplierID(supplierID int) ([]models.ComplianceRecord, error)
	Create(tx DB, record *models.ComplianceRecord) error
}
