package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/trailog/internal/store"
	"github.com/alexanderramin/trailog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleStore builds a store with a run, a ride and another run in that order.
func sampleStore(t *testing.T) *store.WorkoutStore {
	t.Helper()
	created := time.Date(2025, 4, 14, 9, 30, 0, 0, time.UTC)
	s := store.New()
	s.Append(testutil.NewTestRunning(t, testutil.WithID("r1"), testutil.WithCreatedAt(created)))
	s.Append(testutil.NewTestCycling(t, testutil.WithID("c1"), testutil.WithCreatedAt(created.Add(time.Hour)), testutil.WithExtra(-50)))
	s.Append(testutil.NewTestRunning(t, testutil.WithID("r2"), testutil.WithCreatedAt(created.Add(2*time.Hour)), testutil.WithDistance(3.3)))
	return s
}

func TestSQLiteSnapshotRepo_LoadEmpty(t *testing.T) {
	repo := NewSQLiteSnapshotRepo(testutil.NewTestDB(t))

	snap, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap)
}

func TestSQLiteSnapshotRepo_SaveAndLoad_PreservesOrderAndFields(t *testing.T) {
	repo := NewSQLiteSnapshotRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	src := sampleStore(t)

	require.NoError(t, repo.Save(ctx, src.Serialize()))

	snap, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, src.Serialize(), snap)

	restored := store.New()
	require.NoError(t, restored.Restore(snap))
	assert.Equal(t, src.All(), restored.All())
}

func TestSQLiteSnapshotRepo_SaveReplaces(t *testing.T) {
	repo := NewSQLiteSnapshotRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleStore(t).Serialize()))

	single := store.New()
	single.Append(testutil.NewTestCycling(t, testutil.WithID("only")))
	require.NoError(t, repo.Save(ctx, single.Serialize()))

	snap, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap, 1)
	assert.Equal(t, "only", snap[0].ID)
}

func TestSQLiteSnapshotRepo_SaveIsAllOrNothing(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	require.NoError(t, NewSQLiteSnapshotRepo(database).Save(ctx, sampleStore(t).Serialize()))

	// Exec 1 is the DELETE, exec 3 is the second INSERT.
	injected := errors.New("disk full")
	failing := NewSQLiteSnapshotRepoWithUoW(database, &testutil.FailOnNthExecUoW{DB: database, FailOn: 3, Err: injected})

	replacement := store.New()
	replacement.Append(testutil.NewTestRunning(t, testutil.WithID("n1")))
	replacement.Append(testutil.NewTestRunning(t, testutil.WithID("n2")))
	err := failing.Save(ctx, replacement.Serialize())
	require.Error(t, err)
	assert.ErrorIs(t, err, injected)

	snap, err := failing.Load(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(snap))
	for _, rec := range snap {
		ids = append(ids, rec.ID)
	}
	assert.Equal(t, []string{"r1", "c1", "r2"}, ids, "previous snapshot must survive a failed save")
}

func TestSQLiteSnapshotRepo_Clear(t *testing.T) {
	repo := NewSQLiteSnapshotRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleStore(t).Serialize()))
	require.NoError(t, repo.Clear(ctx))

	snap, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap)
}

func TestSQLiteSnapshotRepo_RecordsSavedAt(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSnapshotRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleStore(t).Serialize()))

	var missing int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM workouts WHERE saved_at IS NULL`).Scan(&missing))
	assert.Zero(t, missing)
}
