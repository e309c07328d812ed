package service

import (
	"context"

	"github.com/alexanderramin/trailog/internal/domain"
)

// WorkoutService is the surface the presentation adapter talks to.
// *Session implements it.
type WorkoutService interface {
	Load(ctx context.Context) error
	PickPoint(c domain.Coordinates) error
	PendingPoint() (domain.Coordinates, bool)
	SubmitForm(ctx context.Context, in FormInput) (domain.Workout, error)
	Log(ctx context.Context, req CreateRequest) (domain.Workout, error)
	Select(ctx context.Context, id string) (domain.Workout, error)
	Workouts() []domain.Workout
	Reset(ctx context.Context) error
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, data []byte) (int, error)
}

var _ WorkoutService = (*Session)(nil)

// CreateRequest creates a workout at explicit coordinates. Extra is the
// cadence (spm) for a run and the elevation gain (m) for a ride.
type CreateRequest struct {
	Kind        domain.Kind
	Coords      domain.Coordinates
	DistanceKm  float64
	DurationMin float64
	Extra       float64
}

// FormInput is a CreateRequest without coordinates; the pending picked
// point supplies them.
type FormInput struct {
	Kind        domain.Kind
	DistanceKm  float64
	DurationMin float64
	Extra       float64
}
