package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/trailog/internal/domain"
	"github.com/alexanderramin/trailog/internal/repository"
	"github.com/alexanderramin/trailog/internal/store"
	"github.com/google/uuid"
)

// ErrNoPendingPoint is returned by SubmitForm before a point was picked.
var ErrNoPendingPoint = errors.New("no point picked on the map")

// ErrAmbiguousID is returned by Select when an id prefix matches more than
// one workout.
var ErrAmbiguousID = errors.New("ambiguous workout id")

// Session is the single owner of a workout store for one user session.
// It keeps the point picked on the map until a form is submitted for it.
type Session struct {
	store    *store.WorkoutStore
	repo     repository.SnapshotRepo
	pending  *domain.Coordinates
	now      func() time.Time
	newID    func() string
	observer UseCaseObserver
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the creation-time source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithIDGenerator overrides workout id generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Session) {
		s.newID = newID
	}
}

// WithObserver reports every use case to obs.
func WithObserver(obs UseCaseObserver) Option {
	return func(s *Session) {
		if obs != nil {
			s.observer = obs
		}
	}
}

// NewSession creates a session with an empty store. Call Load to pick up
// the persisted snapshot.
func NewSession(repo repository.SnapshotRepo, opts ...Option) *Session {
	s := &Session{
		store:    store.New(),
		repo:     repo,
		now:      time.Now,
		newID:    newWorkoutID,
		observer: NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newWorkoutID returns a time-ordered UUIDv7, falling back to a random v4.
func newWorkoutID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Load replaces the in-memory store with the persisted snapshot. If the
// snapshot is malformed the session starts empty and the
// *store.DeserializationError is returned so the caller can report it.
func (s *Session) Load(ctx context.Context) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.report(ctx, "load", startedAt, err, fields)
	}()

	snap, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrDeserialization) {
			s.store.Clear()
		}
		return fmt.Errorf("loading workouts: %w", err)
	}
	if err = s.store.Restore(snap); err != nil {
		s.store.Clear()
		return fmt.Errorf("loading workouts: %w", err)
	}
	fields["count"] = s.store.Len()
	return nil
}

// PickPoint remembers c as the location for the next submitted form.
func (s *Session) PickPoint(c domain.Coordinates) error {
	if err := c.Validate(); err != nil {
		return err
	}
	s.pending = &c
	return nil
}

// PendingPoint returns the picked point, if any.
func (s *Session) PendingPoint() (domain.Coordinates, bool) {
	if s.pending == nil {
		return domain.Coordinates{}, false
	}
	return *s.pending, true
}

// SubmitForm creates a workout at the pending point. The point is cleared
// only on success, so a rejected form can be corrected and resubmitted.
func (s *Session) SubmitForm(ctx context.Context, in FormInput) (domain.Workout, error) {
	if s.pending == nil {
		return nil, ErrNoPendingPoint
	}
	w, err := s.Log(ctx, CreateRequest{
		Kind:        in.Kind,
		Coords:      *s.pending,
		DistanceKm:  in.DistanceKm,
		DurationMin: in.DurationMin,
		Extra:       in.Extra,
	})
	if err != nil {
		return nil, err
	}
	s.pending = nil
	return w, nil
}

// Log validates req, persists the new snapshot and then appends the
// workout. A failed save leaves the store as it was.
func (s *Session) Log(ctx context.Context, req CreateRequest) (w domain.Workout, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"kind": string(req.Kind)}
	defer func() {
		s.report(ctx, "log-workout", startedAt, err, fields)
	}()

	w, err = domain.NewWorkout(s.newID(), s.now(), domain.Input{
		Kind:        req.Kind,
		Coords:      req.Coords,
		DistanceKm:  req.DistanceKm,
		DurationMin: req.DurationMin,
		Extra:       req.Extra,
	})
	if err != nil {
		return nil, err
	}
	fields["workout_id"] = w.ID()

	snap := append(s.store.Serialize(), store.EncodeRecord(w))
	if err = s.repo.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("saving workouts: %w", err)
	}
	s.store.Append(w)
	return w, nil
}

// Select finds the workout to recenter on. Besides the full id, a unique
// prefix or the short handle (domain.ShortID) is accepted.
func (s *Session) Select(ctx context.Context, id string) (w domain.Workout, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"query": id}
	defer func() {
		s.report(ctx, "select", startedAt, err, fields)
	}()

	w, err = s.store.FindByID(id)
	if err == nil {
		fields["workout_id"] = w.ID()
		return w, nil
	}
	if id == "" {
		return nil, err
	}
	var match domain.Workout
	for _, cand := range s.store.All() {
		if !strings.HasPrefix(cand.ID(), id) && !strings.HasSuffix(cand.ID(), id) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%w: %s", ErrAmbiguousID, id)
		}
		match = cand
	}
	if match == nil {
		return nil, err
	}
	fields["workout_id"] = match.ID()
	return match, nil
}

// Workouts returns the current workouts in insertion order.
func (s *Session) Workouts() []domain.Workout {
	return s.store.All()
}

// Reset drops the persisted snapshot, every workout and the pending point.
func (s *Session) Reset(ctx context.Context) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"count": s.store.Len()}
	defer func() {
		s.report(ctx, "reset", startedAt, err, fields)
	}()

	if err = s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clearing workouts: %w", err)
	}
	s.store.Clear()
	s.pending = nil
	return nil
}

// Export renders the current snapshot as JSON.
func (s *Session) Export(ctx context.Context) (data []byte, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"count": s.store.Len()}
	defer func() {
		s.report(ctx, "export", startedAt, err, fields)
	}()

	return store.EncodeSnapshot(s.store.Serialize())
}

// Import replaces every workout with the snapshot in data and persists it.
// Nothing changes unless the whole snapshot decodes and saves.
func (s *Session) Import(ctx context.Context, data []byte) (n int, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.report(ctx, "import", startedAt, err, fields)
	}()

	snap, err := store.DecodeSnapshot(data)
	if err != nil {
		return 0, err
	}
	staged := store.New()
	if err = staged.Restore(snap); err != nil {
		return 0, err
	}
	if err = s.repo.Save(ctx, staged.Serialize()); err != nil {
		return 0, fmt.Errorf("saving workouts: %w", err)
	}
	s.store = staged
	fields["count"] = staged.Len()
	return staged.Len(), nil
}

func (s *Session) report(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}
