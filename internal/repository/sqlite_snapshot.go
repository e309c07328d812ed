package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/trailog/internal/db"
	"github.com/alexanderramin/trailog/internal/store"
)

// SQLiteSnapshotRepo stores the snapshot as one row per record in the
// workouts table, ordered by seq.
type SQLiteSnapshotRepo struct {
	db  db.DBTX
	uow db.UnitOfWork
}

// NewSQLiteSnapshotRepo creates a SQLiteSnapshotRepo backed by database.
func NewSQLiteSnapshotRepo(database *sql.DB) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: database, uow: db.NewSQLiteUnitOfWork(database)}
}

// NewSQLiteSnapshotRepoWithUoW lets callers supply the transaction boundary
// used by Save and Clear.
func NewSQLiteSnapshotRepoWithUoW(conn db.DBTX, uow db.UnitOfWork) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: conn, uow: uow}
}

const selectWorkoutColumns = `id, kind, created_at, lat, lon, distance_km, duration_min, description,
	cadence_spm, pace_min_per_km, elevation_gain_m, speed_km_per_h`

func (r *SQLiteSnapshotRepo) Load(ctx context.Context) (store.Snapshot, error) {
	query := `SELECT ` + selectWorkoutColumns + ` FROM workouts ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("loading workouts: %w", err)
	}
	defer rows.Close()
	return r.scanRecords(rows)
}

// Save replaces every stored row with snap inside one transaction.
func (r *SQLiteSnapshotRepo) Save(ctx context.Context, snap store.Snapshot) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM workouts`); err != nil {
			return fmt.Errorf("clearing workouts: %w", err)
		}
		savedAt := nowUTC()
		for i, rec := range snap {
			if err := insertRecord(ctx, tx, i, rec, savedAt); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SQLiteSnapshotRepo) Clear(ctx context.Context) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM workouts`); err != nil {
			return fmt.Errorf("clearing workouts: %w", err)
		}
		return nil
	})
}

func insertRecord(ctx context.Context, tx db.DBTX, seq int, rec store.Record, savedAt string) error {
	if len(rec.Coordinates) != 2 || rec.DistanceKm == nil || rec.DurationMin == nil {
		return fmt.Errorf("inserting workout %s: incomplete record", rec.ID)
	}
	query := `INSERT INTO workouts (id, seq, kind, created_at, lat, lon, distance_km, duration_min, description,
		cadence_spm, pace_min_per_km, elevation_gain_m, speed_km_per_h, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, query,
		rec.ID,
		seq,
		rec.Kind,
		rec.CreatedAt,
		rec.Coordinates[0],
		rec.Coordinates[1],
		*rec.DistanceKm,
		*rec.DurationMin,
		rec.Description,
		nullableFloat(rec.CadenceSpm),
		nullableFloat(rec.PaceMinPerKm),
		nullableFloat(rec.ElevationGainM),
		nullableFloat(rec.SpeedKmPerH),
		savedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting workout %s: %w", rec.ID, err)
	}
	return nil
}

// scanRecords scans workout rows into snapshot records.
func (r *SQLiteSnapshotRepo) scanRecords(rows *sql.Rows) (store.Snapshot, error) {
	snap := store.Snapshot{}
	for rows.Next() {
		var rec store.Record
		var lat, lon, distance, duration float64
		var cadence, pace, elevation, speed sql.NullFloat64

		err := rows.Scan(
			&rec.ID, &rec.Kind, &rec.CreatedAt, &lat, &lon, &distance, &duration, &rec.Description,
			&cadence, &pace, &elevation, &speed,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning workout row: %w", err)
		}

		rec.Coordinates = []float64{lat, lon}
		rec.DistanceKm = &distance
		rec.DurationMin = &duration
		rec.CadenceSpm = floatPtr(cadence)
		rec.PaceMinPerKm = floatPtr(pace)
		rec.ElevationGainM = floatPtr(elevation)
		rec.SpeedKmPerH = floatPtr(speed)
		snap = append(snap, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workouts: %w", err)
	}
	return snap, nil
}
