package main

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdrpinto/mazestar/internal/vizweb"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser visualizer",
		Long: `Starts an HTTP server with a canvas view of the search.

Endpoints:
  /          visualizer page
  /init      new maze (?size=&density=&seed=)
  /next      advance the search (?steps=n) and return a JSON snapshot
  /state     current snapshot without stepping`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = a.cfg.Server.Addr
			}
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", addr, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "visualizer: http://%s\n", ln.Addr())

			srv := vizweb.New(a.cfg.MazeOptions(), a.logger, a.driverOptions()...)
			if err := srv.Serve(cmd.Context(), ln); err != nil {
				a.logger.Error("visualizer stopped", zap.Error(err))
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
