package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/trailog/internal/cli/formatter"
	"github.com/alexanderramin/trailog/internal/store"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List logged workouts in the order they were added",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			workouts := app.Workouts.Workouts()
			if len(workouts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No workouts yet. Log one with `trailog log`."))
				return nil
			}
			title := fmt.Sprintf("Workouts (%d)", len(workouts))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox(title, formatter.WorkoutTable(workouts)))
			return nil
		},
	}
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a workout and link to its location on the map",
		Long:  "Show a workout by its id, the short id printed by `list`, or a unique id prefix.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.Workouts.Select(cmd.Context(), args[0])
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no workout with id %q", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Workout", formatter.WorkoutDetail(w, app.zoom())))
			return nil
		},
	}
}
