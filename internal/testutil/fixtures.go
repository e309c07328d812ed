package testutil

import (
	"testing"
	"time"

	"github.com/alexanderramin/trailog/internal/domain"
	"github.com/google/uuid"
)

// WorkoutSpec collects the raw inputs used to build a test workout.
type WorkoutSpec struct {
	ID          string
	CreatedAt   time.Time
	Coords      domain.Coordinates
	DistanceKm  float64
	DurationMin float64
	Extra       float64
}

// Workout options
type WorkoutOption func(*WorkoutSpec)

func WithID(id string) WorkoutOption {
	return func(s *WorkoutSpec) {
		s.ID = id
	}
}

func WithCreatedAt(t time.Time) WorkoutOption {
	return func(s *WorkoutSpec) {
		s.CreatedAt = t
	}
}

func WithCoords(lat, lon float64) WorkoutOption {
	return func(s *WorkoutSpec) {
		s.Coords = domain.Coordinates{Lat: lat, Lon: lon}
	}
}

func WithDistance(km float64) WorkoutOption {
	return func(s *WorkoutSpec) {
		s.DistanceKm = km
	}
}

func WithDuration(min float64) WorkoutOption {
	return func(s *WorkoutSpec) {
		s.DurationMin = min
	}
}

// WithExtra sets the cadence of a run or the elevation gain of a ride.
func WithExtra(v float64) WorkoutOption {
	return func(s *WorkoutSpec) {
		s.Extra = v
	}
}

func newSpec(extra float64, opts []WorkoutOption) WorkoutSpec {
	s := WorkoutSpec{
		ID:          uuid.New().String(),
		CreatedAt:   time.Now().UTC().Round(0),
		Coords:      domain.Coordinates{Lat: 38.7223, Lon: -9.1393},
		DistanceKm:  5,
		DurationMin: 25,
		Extra:       extra,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// NewTestRunning builds a valid run: 5 km in 25 min at 180 spm unless overridden.
func NewTestRunning(t testing.TB, opts ...WorkoutOption) *domain.Running {
	t.Helper()
	s := newSpec(180, opts)
	r, err := domain.NewRunning(s.ID, s.CreatedAt, s.Coords, s.DistanceKm, s.DurationMin, s.Extra)
	if err != nil {
		t.Fatalf("building test running workout: %v", err)
	}
	return r
}

// NewTestCycling builds a valid ride: 5 km in 25 min with 120 m gain unless overridden.
func NewTestCycling(t testing.TB, opts ...WorkoutOption) *domain.Cycling {
	t.Helper()
	s := newSpec(120, opts)
	c, err := domain.NewCycling(s.ID, s.CreatedAt, s.Coords, s.DistanceKm, s.DurationMin, s.Extra)
	if err != nil {
		t.Fatalf("building test cycling workout: %v", err)
	}
	return c
}
