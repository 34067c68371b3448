package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const createSuppliersTable = `
CREATE TABLE IF NOT EXISTS suppliers (
	supplier_id SERIAL PRIMARY KEY,
	name VARCHAR NOT NULL,
	country VARCHAR NOT NULL,
	compliance_score INTEGER NOT NULL,
	contract_terms JSONB,
	last_audit DATE
);`

const createComplianceRecordsTable = `
CREATE TABLE IF NOT EXISTS compliance_records (
	id SERIAL PRIMARY KEY,
	supplier_id INTEGER REFERENCES suppliers(supplier_id) ON DELETE CASCADE,
	metric VARCHAR NOT NULL,
	date_recorded DATE NOT NULL,
	result VARCHAR,
	status VARCHAR
);`

// EnsureDatabaseExists connects to the server's administrative database,
// creates the target database if it does not exist yet, and reports whether
// this was a first-time provisioning. CREATE DATABASE cannot run inside a
// transaction, so this uses a plain autocommit connection.
//
// Any failure here is fatal to startup: the service cannot run without its
// schema and never retries.
func EnsureDatabaseExists(cfg PoolConfig) (firstRun bool, err error) {
	admin, err := sql.Open("pgx", getDSN(cfg.Host, cfg.User, cfg.Password, "postgres", cfg.Port))
	if err != nil {
		return false, errors.Wrap(err, "could not connect to administrative database")
	}
	defer admin.Close()

	var exists bool
	err = admin.QueryRow(`SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`, cfg.DBName).Scan(&exists)
	if err != nil {
		return false, errors.Wrap(err, "could not check database existence")
	}

	if !exists {
		// identifier comes from configuration, not from any request
		if _, err := admin.Exec(fmt.Sprintf(`CREATE DATABASE %q`, cfg.DBName)); err != nil {
			return false, errors.Wrapf(err, "could not create database %s", cfg.DBName)
		}
		slog.Info("database created", "name", cfg.DBName)
	}

	return !exists, nil
}

// CreateTables provisions the two tables. Idempotent, runs on every start.
func CreateTables(db *gorm.DB) error {
	if err := db.Exec(createSuppliersTable).Error; err != nil {
		return errors.Wrap(err, "could not create suppliers table")
	}
	if err := db.Exec(createComplianceRecordsTable).Error; err != nil {
		return errors.Wrap(err, "could not create compliance_records table")
	}
	return nil
}
