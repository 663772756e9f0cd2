package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdrpinto/mazestar/config"
	"github.com/pdrpinto/mazestar/driver"
	"github.com/pdrpinto/mazestar/maze"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	// Global flags
	configPath string
	verbose    bool
	size       int
	density    float64
	seed       uint64

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "mazestar",
		Short: "Watch A* search random grid mazes one expansion at a time",
		Long: `mazestar generates coin-flip grid mazes and solves them with an
incremental A* search, one node expansion per frame.

Cells are 8-connected. Some mazes have no path between start and goal;
the search then ends in the failed state and a new maze is generated.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.IntVar(&a.size, "size", maze.DefaultSize, "maze side length (2 to 512)")
	flags.Float64Var(&a.density, "density", maze.DefaultWallProbability, "probability that a cell is a wall")
	flags.Uint64Var(&a.seed, "seed", 0, "random seed (0 picks one)")

	rootCmd.AddCommand(
		newWatchCmd(a),
		newSolveCmd(a),
		newLoopCmd(a),
		newServeCmd(a),
	)
	return rootCmd
}

// setup loads the config file, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Maze.Size = a.size
	}
	if flags.Changed("density") {
		cfg.Maze.WallProbability = a.density
	}
	if flags.Changed("seed") {
		cfg.Maze.Seed = a.seed
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := buildLogger(cfg.Logging, cmd.Name() == "watch")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

// buildLogger writes to stderr, or to logging.file when set. Interactive
// commands own the terminal, so they only log to a file.
func buildLogger(lc config.LoggingConfig, interactive bool) (*zap.Logger, error) {
	if interactive && lc.File == "" {
		return zap.NewNop(), nil
	}
	zc := zap.NewProductionConfig()
	if lc.Format == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	if lc.File != "" {
		zc.OutputPaths = []string{lc.File}
		zc.ErrorOutputPaths = []string{lc.File}
	}
	return zc.Build()
}

// driverOptions returns the session options derived from the config.
func (a *app) driverOptions() []driver.Option {
	opts := []driver.Option{driver.WithLogger(a.logger)}
	if a.cfg.Maze.Seed != 0 {
		opts = append(opts, driver.WithRand(maze.NewRand(a.cfg.Maze.Seed)))
	}
	return opts
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
