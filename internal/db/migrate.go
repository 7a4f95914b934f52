package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS workers (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		role       TEXT NOT NULL DEFAULT '',
		status     TEXT NOT NULL DEFAULT 'active'
		           CHECK(status IN ('active','inactive')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// Append-only punch log. Rows are never updated; reconstruction is
	// recomputed from scratch on every report query.
	`CREATE TABLE IF NOT EXISTS punch_events (
		id         TEXT PRIMARY KEY,
		worker_id  TEXT NOT NULL REFERENCES workers(id) ON DELETE CASCADE,
		kind       TEXT NOT NULL
		           CHECK(kind IN ('clock_in','break_start','break_end','clock_out')),
		ts         TEXT NOT NULL,
		note       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_punch_events_worker_ts ON punch_events(worker_id, ts)`,
	`CREATE INDEX IF NOT EXISTS idx_punch_events_ts ON punch_events(ts)`,

	`CREATE TABLE IF NOT EXISTS shop_profile (
		id       TEXT PRIMARY KEY DEFAULT 'default',
		name     TEXT NOT NULL DEFAULT '',
		timezone TEXT NOT NULL DEFAULT 'UTC',
		locale   TEXT NOT NULL DEFAULT 'en'
	)`,

	// Seed default shop profile
	`INSERT OR IGNORE INTO shop_profile (id) VALUES ('default')`,
}
