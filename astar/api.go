package astar

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pdrpinto/mazestar/internal"
)

// Result contains the outcome of a search
type Result struct {
	// Path runs from start to goal.
	Path          []Coord
	TotalCost     int
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	Logger *zap.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger sets the logger used for search lifecycle events.
func WithLogger(logger *zap.Logger) Option {
	return func(options *Options) {
		if logger != nil {
			options.Logger = logger
		}
	}
}

func newOptions(options []Option) Options {
	searchOptions := Options{Logger: zap.NewNop()}
	for _, option := range options {
		option(&searchOptions)
	}
	return searchOptions
}

// Search steps a fresh Stepper until it terminates. The context is checked
// between expansions. When no path exists the returned error wraps ErrNoPath.
func Search(ctx context.Context, grid *Grid, options ...Option) (Result, error) {
	stepper := NewStepper(grid, options...)
	for {
		select {
		case <-ctx.Done():
			return Result{ExpandedNodes: stepper.Steps()}, ctx.Err()
		default:
		}

		switch stepper.Step() {
		case StatusContinue:
			continue
		case StatusSuccess:
			cost, _ := stepper.PathCost()
			return Result{
				Path:          internal.Reverse(stepper.Path()),
				TotalCost:     cost,
				ExpandedNodes: stepper.Steps(),
				Found:         true,
			}, nil
		default:
			return Result{ExpandedNodes: stepper.Steps()},
				fmt.Errorf("search %v -> %v: %w", grid.Start(), grid.Goal(), ErrNoPath)
		}
	}
}
