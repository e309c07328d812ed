package cli

import (
	"github.com/alexanderramin/trailog/internal/config"
	"github.com/alexanderramin/trailog/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// App holds what the CLI commands need: the session controller and
// terminal settings chosen at startup.
type App struct {
	Workouts service.WorkoutService
	MapZoom  int

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// RunForm runs a huh form. Nil runs it against the terminal.
	RunForm func(*huh.Form) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) runForm(f *huh.Form) error {
	if a.RunForm != nil {
		return a.RunForm(f)
	}
	return f.Run()
}

func (a *App) zoom() int {
	if a.MapZoom <= 0 {
		return config.DefaultMapZoom
	}
	return a.MapZoom
}

// NewRootCmd creates the top-level "trailog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "trailog",
		Short:         "Log runs and rides by where they happened",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLogCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newBrowseCmd(app),
		newResetCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}
