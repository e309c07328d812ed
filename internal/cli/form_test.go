package cli

import (
	"testing"

	"github.com/alexanderramin/trailog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkoutForm_RunningRequest(t *testing.T) {
	f := workoutForm{Kind: "running", Lat: "38.7223", Lon: " -9.1393", Distance: "5", Duration: "25", Cadence: "180", Elevation: "999"}

	coords, in, err := f.request()
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinates{Lat: 38.7223, Lon: -9.1393}, coords)
	assert.Equal(t, domain.KindRunning, in.Kind)
	assert.Equal(t, 5.0, in.DistanceKm)
	assert.Equal(t, 25.0, in.DurationMin)
	assert.Equal(t, 180.0, in.Extra)
}

func TestWorkoutForm_CyclingUsesElevation(t *testing.T) {
	f := workoutForm{Kind: "cycling", Lat: "1", Lon: "2", Distance: "20", Duration: "60", Cadence: "180", Elevation: "-50"}

	_, in, err := f.request()
	require.NoError(t, err)
	assert.Equal(t, domain.KindCycling, in.Kind)
	assert.Equal(t, -50.0, in.Extra)
}

func TestWorkoutForm_EmptyElevationIsZero(t *testing.T) {
	f := workoutForm{Kind: "cycling", Lat: "1", Lon: "2", Distance: "20", Duration: "60"}

	_, in, err := f.request()
	require.NoError(t, err)
	assert.Equal(t, 0.0, in.Extra)
}

func TestWorkoutForm_Errors(t *testing.T) {
	tests := []struct {
		name  string
		form  workoutForm
		field string
	}{
		{"bad latitude", workoutForm{Kind: "running", Lat: "x", Lon: "2", Distance: "1", Duration: "1", Cadence: "1"}, "latitude"},
		{"latitude out of range", workoutForm{Kind: "running", Lat: "100", Lon: "2", Distance: "1", Duration: "1", Cadence: "1"}, "latitude"},
		{"bad distance", workoutForm{Kind: "running", Lat: "1", Lon: "2", Distance: "five", Duration: "1", Cadence: "1"}, "distance"},
		{"missing cadence", workoutForm{Kind: "running", Lat: "1", Lon: "2", Distance: "1", Duration: "1"}, "cadence"},
		{"unknown kind", workoutForm{Kind: "rowing", Lat: "1", Lon: "2", Distance: "1", Duration: "1"}, "kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.form.request()
			require.Error(t, err)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestValidators(t *testing.T) {
	assert.NoError(t, validatePositiveNumber("2.5"))
	assert.Error(t, validatePositiveNumber("0"))
	assert.Error(t, validatePositiveNumber("-1"))
	assert.Error(t, validatePositiveNumber(""))

	assert.NoError(t, validateNumber("-50"))
	assert.Error(t, validateNumber("abc"))

	assert.NoError(t, validateLatitude("-90"))
	assert.Error(t, validateLatitude("90.1"))
	assert.NoError(t, validateLongitude("180"))
	assert.Error(t, validateLongitude("-181"))
}

func TestCoordsValue(t *testing.T) {
	var v coordsValue
	assert.Equal(t, "", v.String())
	assert.Equal(t, "lat,lon", v.Type())

	require.NoError(t, v.Set("38.7, -9.1"))
	assert.True(t, v.set)
	assert.Equal(t, "38.7,-9.1", v.String())

	assert.Error(t, v.Set("38.7"))
}
