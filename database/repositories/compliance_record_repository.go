package repositories

import (
	"github.com/vantix-dev/supplierguard/database/models"
	"gorm.io/gorm"
)

type complianceRecordRepository struct {
	db *gorm.DB
	*GormRepository[int, models.ComplianceRecord]
}

func NewComplianceRecordRepository(db *gorm.DB) *complianceRecordRepository {
	return &complianceRecordRepository{
		db:             db,
		GormRepository: newGormRepository[int, models.ComplianceRecord](db),
	}
}

func (r *complianceRecordRepository) GetBySupplierID(supplierID int) ([]models.ComplianceRecord, error) {
	var records []models.ComplianceRecord
	err := r.db.Where("supplier_id = ?", supplierID).Find(&records).Error
	if err != nil {
		return records, err
	}
	return records, nil
}
