package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent and are
// re-run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// The workouts table holds exactly one snapshot: rows are replaced as a
// whole on every save and read back ordered by seq.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS workouts (
		id               TEXT PRIMARY KEY,
		seq              INTEGER NOT NULL,
		kind             TEXT NOT NULL CHECK(kind IN ('running','cycling')),
		created_at       TEXT NOT NULL,
		lat              REAL NOT NULL,
		lon              REAL NOT NULL,
		distance_km      REAL NOT NULL,
		duration_min     REAL NOT NULL,
		description      TEXT NOT NULL,
		cadence_spm      REAL,
		pace_min_per_km  REAL,
		elevation_gain_m REAL,
		speed_km_per_h   REAL,
		saved_at         TEXT
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_workouts_seq ON workouts(seq)`,
}
