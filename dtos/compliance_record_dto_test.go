package dtos_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vantix-dev/supplierguard/database/models"
	"github.com/vantix-dev/supplierguard/dtos"
	"github.com/vantix-dev/supplierguard/utils"
)

func TestComplianceRecordToDTO(t *testing.T) {
	record := models.ComplianceRecord{
		ID:           3,
		SupplierID:   1,
		Metric:       "CO2 reporting",
		DateRecorded: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		Result:       "submitted late",
		Status:       "Non-Compliant",
	}

	dto := dtos.ComplianceRecordToDTO(record)

	assert.Equal(t, 3, dto.ID)
	assert.Equal(t, 1, dto.SupplierID)
	assert.Equal(t, "CO2 reporting", dto.Metric)
	assert.Equal(t, "2024-12-01", dto.DateRecorded)
	assert.Equal(t, "submitted late", dto.Result)
	assert.Equal(t, "Non-Compliant", dto.Status)
}

func TestCreateComplianceRecordRequestToModel(t *testing.T) {
	t.Run("should normalize the status vocabulary at ingestion", func(t *testing.T) {
		req := dtos.CreateComplianceRecordRequest{
			SupplierID:   utils.Ptr(1),
			Metric:       "Labor standards inspection",
			DateRecorded: "2024-08-15",
			Status:       "Pass",
		}

		record, err := req.ToModel()
		require.NoError(t, err)
		assert.Equal(t, "Compliant", record.Status)
	})

	t.Run("should reject a malformed date", func(t *testing.T) {
		req := dtos.CreateComplianceRecordRequest{
			SupplierID:   utils.Ptr(1),
			Metric:       "Labor standards inspection",
			DateRecorded: "August 15th",
		}

		_, err := req.ToModel()
		assert.Error(t, err)
	})
}
