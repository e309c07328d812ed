package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coordinates is an immutable (latitude, longitude) pair in degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Validate checks that both values are finite and inside geographic ranges.
func (c Coordinates) Validate() error {
	if !isFinite(c.Lat) || c.Lat < -90 || c.Lat > 90 {
		return &ValidationError{Field: "latitude", Reason: "must be a number between -90 and 90"}
	}
	if !isFinite(c.Lon) || c.Lon < -180 || c.Lon > 180 {
		return &ValidationError{Field: "longitude", Reason: "must be a number between -180 and 180"}
	}
	return nil
}

// Pair returns the coordinates as [lat, lon].
func (c Coordinates) Pair() [2]float64 { return [2]float64{c.Lat, c.Lon} }

func (c Coordinates) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

// ParseCoordinates parses "lat,lon" and validates the result.
func ParseCoordinates(s string) (Coordinates, error) {
	latStr, lonStr, ok := strings.Cut(s, ",")
	if !ok {
		return Coordinates{}, &ValidationError{Field: "coordinates", Reason: fmt.Sprintf("expected \"lat,lon\" (got %q)", s)}
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return Coordinates{}, &ValidationError{Field: "latitude", Reason: "must be a number"}
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return Coordinates{}, &ValidationError{Field: "longitude", Reason: "must be a number"}
	}
	c := Coordinates{Lat: lat, Lon: lon}
	if err := c.Validate(); err != nil {
		return Coordinates{}, err
	}
	return c, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
