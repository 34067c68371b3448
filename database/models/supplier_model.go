package models

import (
	"time"

	"gorm.io/datatypes"
)

type Supplier struct {
	SupplierID      int            `json:"supplierId" gorm:"column:supplier_id;primaryKey;autoIncrement"`
	Name            string         `json:"name" gorm:"column:name;not null"`
	Country         string         `json:"country" gorm:"column:country;not null"`
	ComplianceScore int            `json:"complianceScore" gorm:"column:compliance_score;not null"`
	ContractTerms   datatypes.JSON `json:"contractTerms" gorm:"column:contract_terms;type:jsonb"`
	LastAudit       *time.Time     `json:"lastAuditDate" gorm:"column:last_audit;type:date"`
}

func (m Supplier) TableName() string {
	return "suppliers"
}
