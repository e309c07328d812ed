package domain

import (
	"fmt"
	"time"
)

// Workout is one logged activity. The set of implementations is closed:
// *Running and *Cycling. Use a type switch to reach variant fields.
type Workout interface {
	ID() string
	Kind() Kind
	CreatedAt() time.Time
	Coords() Coordinates
	DistanceKm() float64
	DurationMin() float64
	Description() string

	sealed()
}

// base holds the fields shared by every variant. All fields are set once
// in the constructor and only exposed through accessors.
type base struct {
	id          string
	createdAt   time.Time
	coords      Coordinates
	distanceKm  float64
	durationMin float64
	description string
}

func (b base) ID() string           { return b.id }
func (b base) CreatedAt() time.Time { return b.createdAt }
func (b base) Coords() Coordinates  { return b.coords }
func (b base) DistanceKm() float64  { return b.distanceKm }
func (b base) DurationMin() float64 { return b.durationMin }
func (b base) Description() string  { return b.description }
func (base) sealed()                {}

// Running is a run with cadence and derived pace.
type Running struct {
	base
	cadenceSpm   float64
	paceMinPerKm float64
}

func (*Running) Kind() Kind { return KindRunning }

// CadenceSpm is the cadence in steps per minute.
func (r *Running) CadenceSpm() float64 { return r.cadenceSpm }

// PaceMinPerKm is durationMin / distanceKm, unrounded.
func (r *Running) PaceMinPerKm() float64 { return r.paceMinPerKm }

// Cycling is a ride with elevation gain and derived speed.
type Cycling struct {
	base
	elevationGainM float64
	speedKmPerH    float64
}

func (*Cycling) Kind() Kind { return KindCycling }

// ElevationGainM is the net elevation change in meters; negative for descents.
func (c *Cycling) ElevationGainM() float64 { return c.elevationGainM }

// SpeedKmPerH is distanceKm / (durationMin / 60), unrounded.
func (c *Cycling) SpeedKmPerH() float64 { return c.speedKmPerH }

// ShortIDLen is the length of the handle shown in place of a full id.
const ShortIDLen = 8

// ShortID returns the tail of id. A UUIDv7 starts with its timestamp, so
// workouts logged close together share a head but not a tail.
func ShortID(id string) string {
	if len(id) <= ShortIDLen {
		return id
	}
	return id[len(id)-ShortIDLen:]
}

// Describe builds "{Kind} on {Month} {Day}" from the calendar date of t.
func Describe(kind Kind, t time.Time) string {
	return fmt.Sprintf("%s on %s %d", kind.Title(), t.Month(), t.Day())
}
