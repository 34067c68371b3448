package models

import (
	"time"
)

type ComplianceRecord struct {
	ID           int       `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	SupplierID   int       `json:"supplierId" gorm:"column:supplier_id"`
	Metric       string    `json:"metric" gorm:"column:metric;not null"`
	DateRecorded time.Time `json:"dateRecorded" gorm:"column:date_recorded;type:date;not null"`
	Result       string    `json:"result" gorm:"column:result"`
	Status       string    `json:"status" gorm:"column:status"`

	Supplier *Supplier `json:"-" gorm:"foreignKey:SupplierID;references:SupplierID;constraint:OnDelete:CASCADE"`
}

func (m ComplianceRecord) TableName() string {
	return "compliance_records"
}
