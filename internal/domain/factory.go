package domain

import "time"

// Input is the raw form data for a new workout. Extra is the cadence for a
// run and the elevation gain for a ride.
type Input struct {
	Kind        Kind
	Coords      Coordinates
	DistanceKm  float64
	DurationMin float64
	Extra       float64
}

// NewWorkout validates in and constructs the matching variant. The derived
// metric and the description are computed here and never again.
func NewWorkout(id string, now time.Time, in Input) (Workout, error) {
	switch in.Kind {
	case KindRunning:
		r, err := NewRunning(id, now, in.Coords, in.DistanceKm, in.DurationMin, in.Extra)
		if err != nil {
			return nil, err
		}
		return r, nil
	case KindCycling:
		c, err := NewCycling(id, now, in.Coords, in.DistanceKm, in.DurationMin, in.Extra)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, &ValidationError{Field: "kind", Reason: "must be one of running, cycling"}
	}
}

// NewRunning constructs a run. Pace is duration / distance.
func NewRunning(id string, now time.Time, coords Coordinates, distanceKm, durationMin, cadenceSpm float64) (*Running, error) {
	b, err := newBase(id, now, KindRunning, coords, distanceKm, durationMin)
	if err != nil {
		return nil, err
	}
	if err := requirePositive("cadence", cadenceSpm); err != nil {
		return nil, err
	}
	return &Running{
		base:         b,
		cadenceSpm:   cadenceSpm,
		paceMinPerKm: durationMin / distanceKm,
	}, nil
}

// NewCycling constructs a ride. Speed is distance / (duration / 60).
// Elevation may be zero or negative but must be finite.
func NewCycling(id string, now time.Time, coords Coordinates, distanceKm, durationMin, elevationGainM float64) (*Cycling, error) {
	b, err := newBase(id, now, KindCycling, coords, distanceKm, durationMin)
	if err != nil {
		return nil, err
	}
	if !isFinite(elevationGainM) {
		return nil, &ValidationError{Field: "elevation", Reason: "must be a number"}
	}
	return &Cycling{
		base:           b,
		elevationGainM: elevationGainM,
		speedKmPerH:    distanceKm / (durationMin / 60),
	}, nil
}

// Stored carries the persisted values of a workout, derived ones included.
type Stored struct {
	ID          string
	CreatedAt   time.Time
	Coords      Coordinates
	DistanceKm  float64
	DurationMin float64
	Description string
}

// RehydrateRunning rebuilds a run from stored values. The stored pace is
// kept as-is so a reload is exactly equal to what was saved.
func RehydrateRunning(s Stored, cadenceSpm, paceMinPerKm float64) (*Running, error) {
	b, err := rehydrateBase(s)
	if err != nil {
		return nil, err
	}
	if err := requirePositive("cadence", cadenceSpm); err != nil {
		return nil, err
	}
	if err := requirePositive("pace", paceMinPerKm); err != nil {
		return nil, err
	}
	return &Running{base: b, cadenceSpm: cadenceSpm, paceMinPerKm: paceMinPerKm}, nil
}

// RehydrateCycling rebuilds a ride from stored values.
func RehydrateCycling(s Stored, elevationGainM, speedKmPerH float64) (*Cycling, error) {
	b, err := rehydrateBase(s)
	if err != nil {
		return nil, err
	}
	if !isFinite(elevationGainM) {
		return nil, &ValidationError{Field: "elevation", Reason: "must be a number"}
	}
	if err := requirePositive("speed", speedKmPerH); err != nil {
		return nil, err
	}
	return &Cycling{base: b, elevationGainM: elevationGainM, speedKmPerH: speedKmPerH}, nil
}

func newBase(id string, now time.Time, kind Kind, coords Coordinates, distanceKm, durationMin float64) (base, error) {
	if id == "" {
		return base{}, &ValidationError{Field: "id", Reason: "must not be empty"}
	}
	if err := coords.Validate(); err != nil {
		return base{}, err
	}
	if err := requirePositive("distance", distanceKm); err != nil {
		return base{}, err
	}
	if err := requirePositive("duration", durationMin); err != nil {
		return base{}, err
	}
	// Strip the monotonic reading so the timestamp round-trips through a snapshot.
	createdAt := now.Round(0)
	return base{
		id:          id,
		createdAt:   createdAt,
		coords:      coords,
		distanceKm:  distanceKm,
		durationMin: durationMin,
		description: Describe(kind, createdAt),
	}, nil
}

func rehydrateBase(s Stored) (base, error) {
	if s.ID == "" {
		return base{}, &ValidationError{Field: "id", Reason: "must not be empty"}
	}
	if s.CreatedAt.IsZero() {
		return base{}, &ValidationError{Field: "createdAt", Reason: "must be set"}
	}
	if s.Description == "" {
		return base{}, &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if err := s.Coords.Validate(); err != nil {
		return base{}, err
	}
	if err := requirePositive("distance", s.DistanceKm); err != nil {
		return base{}, err
	}
	if err := requirePositive("duration", s.DurationMin); err != nil {
		return base{}, err
	}
	return base{
		id:          s.ID,
		createdAt:   s.CreatedAt,
		coords:      s.Coords,
		distanceKm:  s.DistanceKm,
		durationMin: s.DurationMin,
		description: s.Description,
	}, nil
}

func requirePositive(field string, v float64) error {
	if !isFinite(v) || v <= 0 {
		return &ValidationError{Field: field, Reason: "must be a positive number"}
	}
	return nil
}
