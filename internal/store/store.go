// Package store holds the in-memory, insertion-ordered workout collection
// and its snapshot format.
package store

import (
	"fmt"

	"github.com/alexanderramin/trailog/internal/domain"
)

// WorkoutStore is an append-only, ordered sequence of workouts owned by a
// single session. It is not safe for concurrent use.
type WorkoutStore struct {
	workouts []domain.Workout
}

// New returns an empty store.
func New() *WorkoutStore {
	return &WorkoutStore{}
}

// Append adds w to the end of the sequence.
func (s *WorkoutStore) Append(w domain.Workout) {
	s.workouts = append(s.workouts, w)
}

// All returns the workouts present at call time, in insertion order.
// The returned slice is a copy; later appends do not show up in it.
func (s *WorkoutStore) All() []domain.Workout {
	out := make([]domain.Workout, len(s.workouts))
	copy(out, s.workouts)
	return out
}

// Len returns the number of workouts.
func (s *WorkoutStore) Len() int { return len(s.workouts) }

// FindByID scans for the workout with the given id.
func (s *WorkoutStore) FindByID(id string) (domain.Workout, error) {
	for _, w := range s.workouts {
		if w.ID() == id {
			return w, nil
		}
	}
	return nil, fmt.Errorf("workout %s: %w", id, ErrNotFound)
}

// Serialize captures every record in insertion order.
func (s *WorkoutStore) Serialize() Snapshot {
	snap := make(Snapshot, 0, len(s.workouts))
	for _, w := range s.workouts {
		snap = append(snap, EncodeRecord(w))
	}
	return snap
}

// Restore replaces the whole sequence with the records of snap. Either
// every record decodes or the store is left untouched.
func (s *WorkoutStore) Restore(snap Snapshot) error {
	decoded, err := decodeAll(snap)
	if err != nil {
		return err
	}
	s.workouts = decoded
	return nil
}

// Clear empties the store.
func (s *WorkoutStore) Clear() {
	s.workouts = nil
}

func decodeAll(snap Snapshot) ([]domain.Workout, error) {
	out := make([]domain.Workout, 0, len(snap))
	seen := make(map[string]bool, len(snap))
	for i, rec := range snap {
		w, err := DecodeRecord(rec)
		if err != nil {
			return nil, &DeserializationError{Index: i, Err: err}
		}
		if seen[w.ID()] {
			return nil, &DeserializationError{Index: i, Err: fmt.Errorf("duplicate id %q", w.ID())}
		}
		seen[w.ID()] = true
		out = append(out, w)
	}
	return out, nil
}
