package database

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vantix-dev/supplierguard/database/models"
	"github.com/vantix-dev/supplierguard/normalize"
	"github.com/vantix-dev/supplierguard/utils"
	"gorm.io/gorm"
)

// layouts a date cell may arrive in, most specific first
var seedDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

// SeedIfNew loads the two seed sources into freshly provisioned tables.
// It runs only when the database itself was just created - truncating the
// tables by hand does not re-trigger seeding.
//
// Malformed rows are skipped and logged so that a single bad cell cannot
// corrupt the rows after it. The inserts per table run in one transaction:
// a failed insert leaves that table unseeded instead of half-seeded.
func SeedIfNew(db *gorm.DB, firstRun bool, supplierSource, complianceSource string) error {
	if !firstRun {
		slog.Debug("database already provisioned, skipping seed")
		return nil
	}

	if err := seedSuppliers(db, supplierSource); err != nil {
		return err
	}
	return seedComplianceRecords(db, complianceSource)
}

func seedSuppliers(db *gorm.DB, source string) error {
	rows, err := utils.ReadCsvFile(source)
	if err != nil {
		return errors.Wrap(err, "could not read supplier seed source")
	}

	suppliers := make([]models.Supplier, 0, len(rows))
	for i, row := range rows {
		supplier, err := parseSupplierRow(row)
		if err != nil {
			slog.Warn("skipping malformed supplier seed row", "row", i+1, "err", err)
			continue
		}
		suppliers = append(suppliers, supplier)
	}

	if len(suppliers) == 0 {
		slog.Warn("supplier seed source contained no usable rows", "source", source)
		return nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&suppliers).Error
	})
	if err != nil {
		return errors.Wrap(err, "could not seed suppliers")
	}

	slog.Info("seeded suppliers", "count", len(suppliers))
	return nil
}

func seedComplianceRecords(db *gorm.DB, source string) error {
	rows, err := utils.ReadCsvFile(source)
	if err != nil {
		return errors.Wrap(err, "could not read compliance record seed source")
	}

	records := make([]models.ComplianceRecord, 0, len(rows))
	for i, row := range rows {
		record, err := parseComplianceRecordRow(row)
		if err != nil {
			slog.Warn("skipping malformed compliance seed row", "row", i+1, "err", err)
			continue
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		slog.Warn("compliance seed source contained no usable rows", "source", source)
		return nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&records).Error
	})
	if err != nil {
		return errors.Wrap(err, "could not seed compliance records")
	}

	slog.Info("seeded compliance records", "count", len(records))
	return nil
}

func parseSupplierRow(row map[string]string) (models.Supplier, error) {
	score, err := strconv.Atoi(strings.TrimSpace(row["compliance_score"]))
	if err != nil {
		return models.Supplier{}, errors.Wrapf(err, "invalid compliance_score %q", row["compliance_score"])
	}

	supplier := models.Supplier{
		Name:            row["name"],
		Country:         row["country"],
		ComplianceScore: score,
		ContractTerms:   normalize.ContractTermsFromSource(row["contract_terms"]),
	}

	if audit := strings.TrimSpace(row["last_audit"]); audit != "" {
		date, err := parseSeedDate(audit)
		if err != nil {
			return models.Supplier{}, err
		}
		supplier.LastAudit = &date
	}

	return supplier, nil
}

func parseComplianceRecordRow(row map[string]string) (models.ComplianceRecord, error) {
	supplierID, err := strconv.Atoi(strings.TrimSpace(row["supplier_id"]))
	if err != nil {
		return models.ComplianceRecord{}, errors.Wrapf(err, "invalid supplier_id %q", row["supplier_id"])
	}

	date, err := parseSeedDate(strings.TrimSpace(row["date_recorded"]))
	if err != nil {
		return models.ComplianceRecord{}, err
	}

	return models.ComplianceRecord{
		SupplierID:   supplierID,
		Metric:       row["metric"],
		DateRecorded: date,
		Result:       row["result"],
		Status:       normalize.Status(row["status"]),
	}, nil
}

func parseSeedDate(s string) (time.Time, error) {
	for _, layout := range seedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("invalid date %q", s)
}
