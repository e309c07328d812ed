package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/trailog/internal/domain"
)

// KindIcon returns the list/marker icon for a workout kind.
func KindIcon(kind domain.Kind) string {
	if kind == domain.KindRunning {
		return "🏃"
	}
	return "🚴"
}

// Metric returns the derived metric of w rounded for display, with its unit.
func Metric(w domain.Workout) (string, string) {
	switch v := w.(type) {
	case *domain.Running:
		return OneDecimal(v.PaceMinPerKm()), "min/km"
	case *domain.Cycling:
		return OneDecimal(v.SpeedKmPerH()), "km/h"
	default:
		return "--", ""
	}
}

// Extra returns the variant input of w (cadence or elevation) with its unit.
func Extra(w domain.Workout) (string, string) {
	switch v := w.(type) {
	case *domain.Running:
		return Number(v.CadenceSpm()), "spm"
	case *domain.Cycling:
		return Number(v.ElevationGainM()), "m"
	default:
		return "--", ""
	}
}

// MapURL links to the workout location on OpenStreetMap at the given zoom.
func MapURL(c domain.Coordinates, zoom int) string {
	lat, lon := Number(c.Lat), Number(c.Lon)
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%s&mlon=%s#map=%d/%s/%s", lat, lon, zoom, lat, lon)
}

// Marker is the popup text shown for a workout on the map.
func Marker(w domain.Workout) string {
	return KindIcon(w.Kind()) + " " + w.Description()
}

// WorkoutTable renders workouts as an aligned table in insertion order.
func WorkoutTable(workouts []domain.Workout) string {
	headers := []string{"", "WORKOUT", "DISTANCE", "DURATION", "PACE/SPEED", "CADENCE/ELEV", "ID"}
	rows := make([][]string, 0, len(workouts))
	for _, w := range workouts {
		metric, metricUnit := Metric(w)
		extra, extraUnit := Extra(w)
		rows = append(rows, []string{
			KindIcon(w.Kind()),
			KindStyle(w.Kind()).Render(w.Description()),
			Number(w.DistanceKm()) + " km",
			Number(w.DurationMin()) + " min",
			metric + " " + metricUnit,
			extra + " " + extraUnit,
			TruncID(w.ID()),
		})
	}
	return RenderTable(headers, rows)
}

// WorkoutDetail renders every field of w plus a map link centered on it.
func WorkoutDetail(w domain.Workout, zoom int) string {
	metric, metricUnit := Metric(w)
	extra, extraUnit := Extra(w)

	metricLabel, extraLabel := "Pace", "Cadence"
	if w.Kind() == domain.KindCycling {
		metricLabel, extraLabel = "Speed", "Elevation"
	}

	lines := []string{
		KindStyle(w.Kind()).Bold(true).Render(Marker(w)),
		"",
		detailLine("ID", w.ID()),
		detailLine("Logged", HumanDate(w.CreatedAt())),
		detailLine("Location", w.Coords().String()),
		detailLine("Distance", Number(w.DistanceKm())+" km"),
		detailLine("Duration", "⏱ "+Number(w.DurationMin())+" min"),
		detailLine(metricLabel, "⚡ "+metric+" "+metricUnit),
		detailLine(extraLabel, extra+" "+extraUnit),
		"",
		Dim(MapURL(w.Coords(), zoom)),
	}
	return strings.Join(lines, "\n")
}

func detailLine(label, value string) string {
	return fmt.Sprintf("%s %s", StyleDim.Render(fmt.Sprintf("%-10s", label)), StyleFg.Render(value))
}
