package integration_tests

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vantix-dev/supplierguard/database"
	"github.com/vantix-dev/supplierguard/database/models"
	"github.com/vantix-dev/supplierguard/database/repositories"
)

const (
	supplierSeed   = "../assets/suppliers.csv"
	complianceSeed = "../assets/compliance_records.csv"
)

func TestProvisioningAndSeeding(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	cfg, terminate := initDatabaseContainer()
	defer terminate()

	firstRun, err := database.EnsureDatabaseExists(cfg)
	require.NoError(t, err)
	assert.True(t, firstRun)

	pool, err := database.NewPgxConnPool(cfg)
	require.NoError(t, err)
	defer pool.Close()

	db, err := database.NewGormDB(pool)
	require.NoError(t, err)

	require.NoError(t, database.CreateTables(db))
	require.NoError(t, database.SeedIfNew(db, firstRun, supplierSeed, complianceSeed))

	var supplierCount, recordCount int64
	require.NoError(t, db.Table("suppliers").Count(&supplierCount).Error)
	require.NoError(t, db.Table("compliance_records").Count(&recordCount).Error)
	assert.EqualValues(t, 5, supplierCount)
	assert.EqualValues(t, 7, recordCount)

	t.Run("second provisioning run performs zero inserts", func(t *testing.T) {
		firstRun, err := database.EnsureDatabaseExists(cfg)
		require.NoError(t, err)
		assert.False(t, firstRun)

		require.NoError(t, database.CreateTables(db))
		require.NoError(t, database.SeedIfNew(db, firstRun, supplierSeed, complianceSeed))

		var suppliers, records int64
		require.NoError(t, db.Table("suppliers").Count(&suppliers).Error)
		require.NoError(t, db.Table("compliance_records").Count(&records).Error)
		assert.Equal(t, supplierCount, suppliers)
		assert.Equal(t, recordCount, records)
	})

	t.Run("status vocabulary is normalized at seed time", func(t *testing.T) {
		var statuses []string
		require.NoError(t, db.Table("compliance_records").Order("id").Pluck("status", &statuses).Error)

		assert.NotContains(t, statuses, "Pass")
		assert.NotContains(t, statuses, "Fail")
		assert.Contains(t, statuses, "Compliant")
		assert.Contains(t, statuses, "Non-Compliant")
		// anything outside the pass/fail vocabulary passes through
		assert.Contains(t, statuses, "Pending")
	})

	t.Run("concurrent inserts receive distinct identifiers", func(t *testing.T) {
		repository := repositories.NewSupplierRepository(db)

		const n = 20
		ids := make([]int, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				supplier := models.Supplier{
					Name:            fmt.Sprintf("Parallel Supplier %d", i),
					Country:         "Germany",
					ComplianceScore: 50,
				}
				if err := repository.Create(nil, &supplier); err == nil {
					ids[i] = supplier.SupplierID
				}
			}(i)
		}
		wg.Wait()

		seen := make(map[int]bool, n)
		for _, id := range ids {
			require.NotZero(t, id)
			require.False(t, seen[id], "duplicate supplier id %d", id)
			seen[id] = true
		}
	})

	t.Run("deleting a supplier cascades to its compliance records", func(t *testing.T) {
		var before int64
		require.NoError(t, db.Table("compliance_records").Where("supplier_id = ?", 1).Count(&before).Error)
		require.NotZero(t, before)

		// no delete endpoint exists - the constraint itself must hold
		require.NoError(t, db.Exec("DELETE FROM suppliers WHERE supplier_id = ?", 1).Error)

		var after int64
		require.NoError(t, db.Table("compliance_records").Where("supplier_id = ?", 1).Count(&after).Error)
		assert.Zero(t, after)
	})
}
