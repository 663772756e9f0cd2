package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/mazestar/astar"
	"github.com/pdrpinto/mazestar/driver"
	"github.com/pdrpinto/mazestar/render"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		plain            bool
		noGrid           bool
		failOnUnsolvable bool
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Generate one maze, search it to the end and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := driver.NewRunner(driver.RunnerConfig{Maze: a.cfg.MazeOptions()}, nil, a.driverOptions()...)
			if err != nil {
				return err
			}
			frame, err := runner.RunOnce(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !noGrid {
				renderer := render.New(render.DefaultPalette())
				if plain {
					renderer = render.NewPlain()
				}
				fmt.Fprintln(out, renderer.Grid(frame.Grid, frame.Snapshot))
			}
			fmt.Fprintf(out, "puzzle %s  start %v  goal %v\n", frame.Puzzle.ID, frame.Puzzle.Start, frame.Puzzle.Goal)
			fmt.Fprintln(out, render.Summary(frame.Snapshot))

			if frame.Snapshot.Status == astar.StatusFailed && failOnUnsolvable {
				return fmt.Errorf("puzzle %s: %w", frame.Puzzle.ID, astar.ErrNoPath)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "draw with ASCII characters instead of colors")
	cmd.Flags().BoolVar(&noGrid, "no-grid", false, "print only the summary")
	cmd.Flags().BoolVar(&failOnUnsolvable, "fail-on-unsolvable", false, "exit with an error when no path exists")
	return cmd
}
