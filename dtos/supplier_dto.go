package dtos

import (
	"time"

	"github.com/pkg/errors"
	"github.com/vantix-dev/supplierguard/database/models"
	"github.com/vantix-dev/supplierguard/normalize"
)

const dateLayout = "2006-01-02"

// SupplierDTO is the wire shape of a supplier. Wire names are the compact
// camel-style ones; the storage column names live on the model.
type SupplierDTO struct {
	SupplierID      int     `json:"supplierId"`
	Name            string  `json:"name"`
	Country         string  `json:"country"`
	ComplianceScore int     `json:"complianceScore"`
	ContractTerms   any     `json:"contractTerms"`
	LastAuditDate   *string `json:"lastAuditDate"`
}

func SupplierToDTO(m models.Supplier) SupplierDTO {
	dto := SupplierDTO{
		SupplierID:      m.SupplierID,
		Name:            m.Name,
		Country:         m.Country,
		ComplianceScore: m.ComplianceScore,
		ContractTerms:   normalize.ContractTermsToWire(m.ContractTerms),
	}
	if m.LastAudit != nil {
		formatted := m.LastAudit.Format(dateLayout)
		dto.LastAuditDate = &formatted
	}
	return dto
}

func SuppliersToDTO(suppliers []models.Supplier) []SupplierDTO {
	result := make([]SupplierDTO, 0, len(suppliers))
	for _, supplier := range suppliers {
		result = append(result, SupplierToDTO(supplier))
	}
	return result
}

type CreateSupplierRequest struct {
	Name            string  `json:"name" validate:"required"`
	Country         string  `json:"country" validate:"required"`
	ComplianceScore *int    `json:"complianceScore" validate:"required"`
	ContractTerms   any     `json:"contractTerms"`
	LastAuditDate   *string `json:"lastAuditDate"`
}

func (r CreateSupplierRequest) ToModel() (models.Supplier, error) {
	terms, err := normalize.ContractTermsToStorage(r.ContractTerms)
	if err != nil {
		return models.Supplier{}, errors.Wrap(err, "invalid contract terms")
	}

	supplier := models.Supplier{
		Name:            r.Name,
		Country:         r.Country,
		ComplianceScore: *r.ComplianceScore,
		ContractTerms:   terms,
	}

	if r.LastAuditDate != nil && *r.LastAuditDate != "" {
		date, err := time.Parse(dateLayout, *r.LastAuditDate)
		if err != nil {
			return models.Supplier{}, errors.Wrapf(err, "invalid lastAuditDate %q", *r.LastAuditDate)
		}
		supplier.LastAudit = &date
	}

	return supplier, nil
}
