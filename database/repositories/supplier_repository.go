package repositories

import (
	"github.com/vantix-dev/supplierguard/database/models"
	"gorm.io/gorm"
)

type supplierRepository struct {
	db *gorm.DB
	*GormRepository[int, models.Supplier]
}

func NewSupplierRepository(db *gorm.DB) *supplierRepository {
	return &supplierRepository{
		db:             db,
		GormRepository: newGormRepository[int, models.Supplier](db),
	}
}
