package repository

import (
	"context"

	"github.com/alexanderramin/trailog/internal/store"
)

// SnapshotRepo persists one full snapshot. Implementations never merge:
// Save replaces whatever was stored, Load returns everything.
type SnapshotRepo interface {
	// Load returns the stored snapshot, or an empty one if nothing was saved.
	Load(ctx context.Context) (store.Snapshot, error)
	Save(ctx context.Context, snap store.Snapshot) error
	Clear(ctx context.Context) error
}

var (
	_ SnapshotRepo = (*SQLiteSnapshotRepo)(nil)
	_ SnapshotRepo = (*FileSnapshotRepo)(nil)
)
