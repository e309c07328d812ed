package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/trailog/internal/cli/formatter"
	"github.com/alexanderramin/trailog/internal/domain"
	"github.com/alexanderramin/trailog/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// trailogHuhTheme returns a huh theme using the formatter palette.
func trailogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// workoutForm holds the raw text of the interactive log form.
type workoutForm struct {
	Kind      string
	Lat       string
	Lon       string
	Distance  string
	Duration  string
	Cadence   string
	Elevation string
}

func (f *workoutForm) isRunning() bool { return f.Kind == string(domain.KindRunning) }

// newWorkoutForm builds the log form. Only one of cadence or elevation is
// shown, depending on the selected kind.
func newWorkoutForm(f *workoutForm) *huh.Form {
	if f.Kind == "" {
		f.Kind = string(domain.KindRunning)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption(formatter.KindIcon(domain.KindRunning)+" Running", string(domain.KindRunning)),
					huh.NewOption(formatter.KindIcon(domain.KindCycling)+" Cycling", string(domain.KindCycling)),
				).
				Value(&f.Kind),
			huh.NewInput().
				Title("Latitude").
				Placeholder("38.7223").
				Value(&f.Lat).
				Validate(validateLatitude),
			huh.NewInput().
				Title("Longitude").
				Placeholder("-9.1393").
				Value(&f.Lon).
				Validate(validateLongitude),
			huh.NewInput().
				Title("Distance (km)").
				Placeholder("5").
				Value(&f.Distance).
				Validate(validatePositiveNumber),
			huh.NewInput().
				Title("Duration (min)").
				Placeholder("25").
				Value(&f.Duration).
				Validate(validatePositiveNumber),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Cadence (step/min)").
				Placeholder("180").
				Value(&f.Cadence).
				Validate(validatePositiveNumber),
		).WithHideFunc(func() bool { return !f.isRunning() }),
		huh.NewGroup(
			huh.NewInput().
				Title("Elevation gain (m)").
				Placeholder("0").
				Value(&f.Elevation).
				Validate(validateNumber),
		).WithHideFunc(f.isRunning),
	).WithTheme(trailogHuhTheme()).WithShowHelp(false)
}

// request converts the form text into a picked point and form input.
func (f *workoutForm) request() (domain.Coordinates, service.FormInput, error) {
	kind, err := domain.ParseKind(f.Kind)
	if err != nil {
		return domain.Coordinates{}, service.FormInput{}, err
	}
	coords, err := domain.ParseCoordinates(f.Lat + "," + f.Lon)
	if err != nil {
		return domain.Coordinates{}, service.FormInput{}, err
	}

	in := service.FormInput{Kind: kind}
	extraField, extraText := "cadence", f.Cadence
	if kind == domain.KindCycling {
		extraField, extraText = "elevation", f.Elevation
		if strings.TrimSpace(extraText) == "" {
			extraText = "0"
		}
	}
	fields := []struct {
		name string
		text string
		dst  *float64
	}{
		{"distance", f.Distance, &in.DistanceKm},
		{"duration", f.Duration, &in.DurationMin},
		{extraField, extraText, &in.Extra},
	}
	for _, fld := range fields {
		v, err := parseNumber(fld.text)
		if err != nil {
			return domain.Coordinates{}, service.FormInput{}, &domain.ValidationError{Field: fld.name, Reason: "must be a number"}
		}
		*fld.dst = v
	}
	return coords, in, nil
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// validateNumber accepts any finite number.
func validateNumber(s string) error {
	if _, err := parseNumber(s); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

// validatePositiveNumber accepts a number greater than zero.
func validatePositiveNumber(s string) error {
	v, err := parseNumber(s)
	if err != nil || !(v > 0) {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validateLatitude(s string) error {
	v, err := parseNumber(s)
	if err != nil || v < -90 || v > 90 {
		return fmt.Errorf("enter a latitude between -90 and 90")
	}
	return nil
}

func validateLongitude(s string) error {
	v, err := parseNumber(s)
	if err != nil || v < -180 || v > 180 {
		return fmt.Errorf("enter a longitude between -180 and 180")
	}
	return nil
}

// confirmForm creates a yes/no confirmation.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(trailogHuhTheme()).WithShowHelp(false)
}
