package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/mazestar/driver"
	"github.com/pdrpinto/mazestar/render"
)

func newLoopCmd(a *app) *cobra.Command {
	var (
		frameInterval time.Duration
		restartDelay  time.Duration
		maxPuzzles    int
	)
	cmd := &cobra.Command{
		Use:   "loop",
		Short: "Solve mazes headlessly, printing one line per finished search",
		Long: `Runs the same frame loop as watch without a screen: one expansion per
frame, a pause after every finished search, then a fresh maze.

Example:
  mazestar loop --max-puzzles 10 --frame-interval 0 --restart-delay 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("frame-interval") {
				frameInterval = a.cfg.Driver.GetFrameInterval()
			}
			if !cmd.Flags().Changed("restart-delay") {
				restartDelay = a.cfg.Driver.GetRestartDelay()
			}
			if !cmd.Flags().Changed("max-puzzles") {
				maxPuzzles = a.cfg.Driver.MaxPuzzles
			}

			out := cmd.OutOrStdout()
			printer := driver.RendererFunc(func(frame driver.Frame) error {
				if !frame.Done() {
					return nil
				}
				_, err := fmt.Fprintf(out, "%s  %s\n", frame.Puzzle.ID, render.Summary(frame.Snapshot))
				return err
			})
			runner, err := driver.NewRunner(driver.RunnerConfig{
				Maze:          a.cfg.MazeOptions(),
				FrameInterval: frameInterval,
				RestartDelay:  restartDelay,
				MaxPuzzles:    maxPuzzles,
			}, printer, a.driverOptions()...)
			if err != nil {
				return err
			}

			err = runner.Run(cmd.Context())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().DurationVar(&frameInterval, "frame-interval", 16*time.Millisecond, "delay between two expansions")
	cmd.Flags().DurationVar(&restartDelay, "restart-delay", 5*time.Second, "pause before the next maze")
	cmd.Flags().IntVar(&maxPuzzles, "max-puzzles", 0, "stop after this many searches (0 runs until interrupted)")
	return cmd
}
