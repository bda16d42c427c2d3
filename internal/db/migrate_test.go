package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"students", "schedule_runs", "schedule_run_students", "schedule_placements", "schedule_unassigned"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, "idx_schedule_runs_period").Scan(&name)
	require.NoError(t, err)
}

func TestMigrate_ForeignKeysEnforced(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO schedule_unassigned (run_id, position, student_id) VALUES ('missing', 0, '1')`)
	assert.Error(t, err, "orphan rows should be rejected")
}

func TestMigrate_RejectsOutOfRangeSlotIndex(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO schedule_runs (id, year, month, generated_at) VALUES ('r', 2026, 4, '2026-04-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO schedule_placements (run_id, slot_date, slot_index, position, student_id) VALUES ('r', '2026-04-01', 3, 0, '1')`)
	assert.Error(t, err)
}

func TestOpenDB_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "lessonslot.db")

	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	assert.FileExists(t, path)
}
