package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/mazestar/driver"
	"github.com/pdrpinto/mazestar/internal/tui"
	"github.com/pdrpinto/mazestar/render"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		frameInterval time.Duration
		restartDelay  time.Duration
		plain         bool
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Animate searches in the terminal, generating a new maze after each one",
		Long: `Opens a full screen view that expands one node per frame.

Colors: grey walls, red open set, white closed set, purple path,
pink start, green goal. Keys: space pauses, n starts a new maze, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("frame-interval") {
				frameInterval = a.cfg.Driver.GetFrameInterval()
			}
			if !cmd.Flags().Changed("restart-delay") {
				restartDelay = a.cfg.Driver.GetRestartDelay()
			}

			session, err := driver.NewSession(a.cfg.MazeOptions(), a.driverOptions()...)
			if err != nil {
				return err
			}
			renderer := render.New(render.DefaultPalette())
			if plain {
				renderer = render.NewPlain()
			}
			return tui.Run(cmd.Context(), tui.New(session, renderer, frameInterval, restartDelay))
		},
	}
	cmd.Flags().DurationVar(&frameInterval, "frame-interval", 16*time.Millisecond, "delay between two expansions")
	cmd.Flags().DurationVar(&restartDelay, "restart-delay", 5*time.Second, "pause before the next maze")
	cmd.Flags().BoolVar(&plain, "plain", false, "draw with ASCII characters instead of colors")
	return cmd
}
