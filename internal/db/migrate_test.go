package db

import (
	"database/sql"
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

	// Re-running every statement must succeed.
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesWorkoutsTableAndIndex(t *testing.T) {
	db := openTestDB(t)

	var name string
	require.NoError(t, db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='workouts'`).Scan(&name))
	assert.Equal(t, "workouts", name)

	require.NoError(t, db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_workouts_seq'`).Scan(&name))
	assert.Equal(t, "idx_workouts_seq", name)
}

func TestMigrate_KindConstraint(t *testing.T) {
	db := openTestDB(t)

	insert := `INSERT INTO workouts (id, seq, kind, created_at, lat, lon, distance_km, duration_min, description)
		VALUES (?, ?, ?, '2025-04-14T09:30:00Z', 0, 0, 1, 1, 'x')`

	_, err := db.Exec(insert, "a", 0, "running")
	require.NoError(t, err)
	_, err = db.Exec(insert, "b", 1, "swimming")
	assert.Error(t, err, "unknown kinds are rejected by the CHECK constraint")
}

func TestMigrate_WorkoutsHasSavedAtColumn(t *testing.T) {
	db := openTestDB(t)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM pragma_table_info('workouts') WHERE name = 'saved_at'`).Scan(&count))
	assert.Equal(t, 1, count)
}
