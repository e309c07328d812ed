package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/trailog/internal/cli/formatter"
	"github.com/alexanderramin/trailog/internal/domain"
	"github.com/alexanderramin/trailog/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// coordsValue is a pflag.Value accepting "lat,lon".
type coordsValue struct {
	coords domain.Coordinates
	set    bool
}

func (v *coordsValue) String() string {
	if !v.set {
		return ""
	}
	return v.coords.String()
}

func (v *coordsValue) Set(s string) error {
	c, err := domain.ParseCoordinates(s)
	if err != nil {
		return err
	}
	v.coords, v.set = c, true
	return nil
}

func (v *coordsValue) Type() string { return "lat,lon" }

var _ pflag.Value = (*coordsValue)(nil)

func newLogCmd(app *App) *cobra.Command {
	var (
		at        coordsValue
		lat, lon  float64
		distance  float64
		duration  float64
		cadence   float64
		elevation float64
	)

	cmd := &cobra.Command{
		Use:   "log [running|cycling]",
		Short: "Log a workout at a location",
		Long: `Log a running or cycling workout.

Without a type and on an interactive terminal a form is shown instead.
Negative elevation must be passed as --elevation=-50.`,
		Example: `  trailog log running --at 38.7223,-9.1393 --distance 5 --duration 25 --cadence 180
  trailog log cycling --lat 38.7 --lon -9.1 --distance 20 --duration 60 --elevation=-50`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(domain.KindRunning), string(domain.KindCycling)},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if !app.interactive() {
					return errors.New("workout type required: running or cycling")
				}
				return runLogForm(cmd, app)
			}

			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return err
			}

			point := at.coords
			if !at.set {
				if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lon") {
					return errors.New("location required: use --at lat,lon or --lat and --lon")
				}
				point = domain.Coordinates{Lat: lat, Lon: lon}
			}

			extra := cadence
			if kind == domain.KindCycling {
				extra = elevation
			}
			if err := app.Workouts.PickPoint(point); err != nil {
				return err
			}
			w, err := app.Workouts.SubmitForm(cmd.Context(), service.FormInput{
				Kind:        kind,
				DistanceKm:  distance,
				DurationMin: duration,
				Extra:       extra,
			})
			if err != nil {
				return err
			}
			printLogged(cmd, w)
			return nil
		},
	}

	cmd.Flags().Var(&at, "at", "location as lat,lon")
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude in degrees")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude in degrees")
	cmd.Flags().Float64Var(&distance, "distance", 0, "distance in km")
	cmd.Flags().Float64Var(&duration, "duration", 0, "duration in minutes")
	cmd.Flags().Float64Var(&cadence, "cadence", 0, "running cadence in steps/min")
	cmd.Flags().Float64Var(&elevation, "elevation", 0, "cycling elevation gain in m")
	cmd.MarkFlagsMutuallyExclusive("at", "lat")
	cmd.MarkFlagsMutuallyExclusive("at", "lon")

	return cmd
}

// runLogForm asks for every field with a huh form. An invalid submission
// reopens the form with the entered values kept.
func runLogForm(cmd *cobra.Command, app *App) error {
	var f workoutForm
	for {
		if err := app.runForm(newWorkoutForm(&f)); err != nil {
			return err
		}
		coords, in, err := f.request()
		if err == nil {
			if err = app.Workouts.PickPoint(coords); err == nil {
				var w domain.Workout
				if w, err = app.Workouts.SubmitForm(cmd.Context(), in); err == nil {
					printLogged(cmd, w)
					return nil
				}
			}
		}
		if !errors.Is(err, domain.ErrValidation) {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), formatter.StyleRed.Render("Invalid input: "+err.Error()))
	}
}

func printLogged(cmd *cobra.Command, w domain.Workout) {
	metric, unit := formatter.Metric(w)
	fmt.Fprintf(cmd.OutOrStdout(), "%s Logged %s (%s %s) %s\n",
		formatter.KindIcon(w.Kind()),
		formatter.Bold(w.Description()),
		metric, unit,
		formatter.TruncID(w.ID()),
	)
}
