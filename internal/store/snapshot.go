package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/trailog/internal/domain"
)

// Record is the persisted shape of one workout. Numeric fields are pointers
// so that a missing field can be told apart from a zero value.
type Record struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	CreatedAt   string    `json:"createdAt"`
	Coordinates []float64 `json:"coordinates"`
	DistanceKm  *float64  `json:"distanceKm"`
	DurationMin *float64  `json:"durationMin"`
	Description string    `json:"description"`

	CadenceSpm   *float64 `json:"cadenceSpm,omitempty"`
	PaceMinPerKm *float64 `json:"paceMinPerKm,omitempty"`

	ElevationGainM *float64 `json:"elevationGainM,omitempty"`
	SpeedKmPerH    *float64 `json:"speedKmPerH,omitempty"`
}

// Snapshot is the full, ordered state of a store.
type Snapshot []Record

// timeLayout keeps the offset and sub-second precision so timestamps
// round-trip exactly.
const timeLayout = time.RFC3339Nano

// EncodeRecord captures every field of w, derived ones included.
func EncodeRecord(w domain.Workout) Record {
	c := w.Coords()
	rec := Record{
		ID:          w.ID(),
		Kind:        string(w.Kind()),
		CreatedAt:   w.CreatedAt().Format(timeLayout),
		Coordinates: []float64{c.Lat, c.Lon},
		DistanceKm:  ptr(w.DistanceKm()),
		DurationMin: ptr(w.DurationMin()),
		Description: w.Description(),
	}
	switch v := w.(type) {
	case *domain.Running:
		rec.CadenceSpm = ptr(v.CadenceSpm())
		rec.PaceMinPerKm = ptr(v.PaceMinPerKm())
	case *domain.Cycling:
		rec.ElevationGainM = ptr(v.ElevationGainM())
		rec.SpeedKmPerH = ptr(v.SpeedKmPerH())
	}
	return rec
}

// DecodeRecord rebuilds a workout from rec. Every field required by the
// record's kind must be present.
func DecodeRecord(rec Record) (domain.Workout, error) {
	if rec.ID == "" {
		return nil, missing("id")
	}
	if rec.CreatedAt == "" {
		return nil, missing("createdAt")
	}
	createdAt, err := time.Parse(timeLayout, rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing createdAt: %w", err)
	}
	if len(rec.Coordinates) != 2 {
		return nil, fmt.Errorf("coordinates: expected [lat, lon], got %d values", len(rec.Coordinates))
	}
	if rec.DistanceKm == nil {
		return nil, missing("distanceKm")
	}
	if rec.DurationMin == nil {
		return nil, missing("durationMin")
	}
	if rec.Description == "" {
		return nil, missing("description")
	}
	stored := domain.Stored{
		ID:          rec.ID,
		CreatedAt:   createdAt,
		Coords:      domain.Coordinates{Lat: rec.Coordinates[0], Lon: rec.Coordinates[1]},
		DistanceKm:  *rec.DistanceKm,
		DurationMin: *rec.DurationMin,
		Description: rec.Description,
	}

	switch domain.Kind(rec.Kind) {
	case domain.KindRunning:
		if rec.CadenceSpm == nil {
			return nil, missing("cadenceSpm")
		}
		if rec.PaceMinPerKm == nil {
			return nil, missing("paceMinPerKm")
		}
		r, err := domain.RehydrateRunning(stored, *rec.CadenceSpm, *rec.PaceMinPerKm)
		if err != nil {
			return nil, err
		}
		return r, nil
	case domain.KindCycling:
		if rec.ElevationGainM == nil {
			return nil, missing("elevationGainM")
		}
		if rec.SpeedKmPerH == nil {
			return nil, missing("speedKmPerH")
		}
		c, err := domain.RehydrateCycling(stored, *rec.ElevationGainM, *rec.SpeedKmPerH)
		if err != nil {
			return nil, err
		}
		return c, nil
	case "":
		return nil, missing("kind")
	default:
		return nil, fmt.Errorf("unknown kind %q", rec.Kind)
	}
}

// EncodeSnapshot renders snap as a JSON array. A nil snapshot encodes as [].
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	if snap == nil {
		snap = Snapshot{}
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a JSON array of records. Anything that is not an
// array of objects is a *DeserializationError. Field presence is checked
// later by Restore.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &DeserializationError{Index: -1, Err: errors.New("expected a JSON array of records")}
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, &DeserializationError{Index: -1, Err: err}
	}
	snap := make(Snapshot, 0, len(raw))
	for i, elem := range raw {
		elem = bytes.TrimSpace(elem)
		if len(elem) == 0 || elem[0] != '{' {
			return nil, &DeserializationError{Index: i, Err: errors.New("expected an object")}
		}
		var rec Record
		if err := json.Unmarshal(elem, &rec); err != nil {
			return nil, &DeserializationError{Index: i, Err: err}
		}
		snap = append(snap, rec)
	}
	return snap, nil
}

func missing(field string) error {
	return fmt.Errorf("missing required field %q", field)
}

func ptr(f float64) *float64 { return &f }
