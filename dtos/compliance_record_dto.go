package dtos

import (
	"time"

	"github.com/pkg/errors"
	"github.com/vantix-dev/supplierguard/database/models"
	"github.com/vantix-dev/supplierguard/normalize"
)

type ComplianceRecordDTO struct {
	ID           int    `json:"id"`
	SupplierID   int    `json:"supplierId"`
	Metric       string `json:"metric"`
	DateRecorded string `json:"dateRecorded"`
	Result       string `json:"result"`
	Status       string `json:"status"`
}

func ComplianceRecordToDTO(m models.ComplianceRecord) ComplianceRecordDTO {
	return ComplianceRecordDTO{
		ID:           m.ID,
		SupplierID:   m.SupplierID,
		Metric:       m.Metric,
		DateRecorded: m.DateRecorded.Format(dateLayout),
		Result:       m.Result,
		Status:       m.Status,
	}
}

func ComplianceRecordsToDTO(records []models.ComplianceRecord) []ComplianceRecordDTO {
	result := make([]ComplianceRecordDTO, 0, len(records))
	for _, record := range records {
		result = append(result, ComplianceRecordToDTO(record))
	}
	return result
}

type CreateComplianceRecordRequest struct {
	SupplierID   *int   `json:"supplierId" validate:"required"`
	Metric       string `json:"metric" validate:"required"`
	DateRecorded string `json:"dateRecorded" validate:"required"`
	Result       string `json:"result"`
	Status       string `json:"status"`
}

func (r CreateComplianceRecordRequest) ToModel() (models.ComplianceRecord, error) {
	date, err := time.Parse(dateLayout, r.DateRecorded)
	if err != nil {
		return models.ComplianceRecord{}, errors.Wrapf(err, "invalid dateRecorded %q", r.DateRecorded)
	}

	return models.ComplianceRecord{
		SupplierID:   *r.SupplierID,
		Metric:       r.Metric,
		DateRecorded: date,
		Result:       r.Result,
		Status:       normalize.Status(r.Status),
	}, nil
}
