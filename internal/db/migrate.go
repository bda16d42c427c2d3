package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema. Every statement is idempotent, so it is safe to
// run on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// seq keeps roster insertion order, which breaks prioritization ties.
	`CREATE TABLE IF NOT EXISTS students (
		seq            INTEGER PRIMARY KEY AUTOINCREMENT,
		id             TEXT NOT NULL UNIQUE,
		name           TEXT NOT NULL,
		preferred_days TEXT NOT NULL DEFAULT '',
		ng_with        TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_runs (
		id           TEXT PRIMARY KEY,
		year         INTEGER NOT NULL CHECK(year > 0),
		month        INTEGER NOT NULL CHECK(month BETWEEN 1 AND 12),
		generated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedule_runs_period ON schedule_runs(year, month, generated_at)`,

	`CREATE TABLE IF NOT EXISTS schedule_run_students (
		run_id         TEXT NOT NULL REFERENCES schedule_runs(id) ON DELETE CASCADE,
		position       INTEGER NOT NULL,
		student_id     TEXT NOT NULL,
		name           TEXT NOT NULL,
		preferred_days TEXT NOT NULL DEFAULT '',
		ng_with        TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (run_id, position)
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_placements (
		run_id     TEXT NOT NULL REFERENCES schedule_runs(id) ON DELETE CASCADE,
		slot_date  TEXT NOT NULL,
		slot_index INTEGER NOT NULL CHECK(slot_index BETWEEN 0 AND 2),
		position   INTEGER NOT NULL CHECK(position BETWEEN 0 AND 4),
		student_id TEXT NOT NULL,
		PRIMARY KEY (run_id, slot_date, slot_index, position)
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_unassigned (
		run_id     TEXT NOT NULL REFERENCES schedule_runs(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		student_id TEXT NOT NULL,
		PRIMARY KEY (run_id, position)
	)`,
}
