// Package driver runs searches frame by frame: it owns the current puzzle,
// calls Step once per frame, and starts a new puzzle once a search ends.
package driver

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/pdrpinto/mazestar/astar"
	"github.com/pdrpinto/mazestar/maze"
)

// Frame is what a renderer needs to draw one moment of a search.
type Frame struct {
	Puzzle   *maze.Puzzle
	Grid     *astar.Grid
	Snapshot astar.StepSnapshot
}

// Done reports whether the search in this frame has finished.
func (f Frame) Done() bool { return f.Snapshot.Status.Terminal() }

// Session holds one puzzle and its search. It is not safe for concurrent use.
type Session struct {
	mazeOpts maze.Options
	rng      *rand.Rand
	logger   *zap.Logger
	metrics  *metrics

	puzzle  *maze.Puzzle
	stepper *astar.Stepper
	puzzles int
}

// NewSession validates mazeOpts and generates the first puzzle.
func NewSession(mazeOpts maze.Options, options ...Option) (*Session, error) {
	opts, err := newOptions(options)
	if err != nil {
		return nil, err
	}
	if err := mazeOpts.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		mazeOpts: mazeOpts,
		rng:      opts.Rand,
		logger:   opts.Logger,
		metrics:  opts.metrics,
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset discards the current search and generates a new puzzle.
func (s *Session) Reset() error {
	puzzle, err := maze.Generate(s.rng, s.mazeOpts)
	if err != nil {
		return fmt.Errorf("failed to generate maze: %w", err)
	}
	stepper, err := puzzle.NewStepper(astar.WithLogger(s.logger))
	if err != nil {
		return err
	}
	s.puzzle = puzzle
	s.stepper = stepper
	s.puzzles++
	s.metrics.puzzleStarted()
	s.logger.Info("puzzle started",
		zap.String("puzzle_id", puzzle.ID.String()),
		zap.Int("size", puzzle.Size()),
		zap.Stringer("start", puzzle.Start),
		zap.Stringer("goal", puzzle.Goal))
	return nil
}

// Advance performs one Step and returns the resulting frame. After the search
// has finished it returns the final frame without stepping further.
func (s *Session) Advance() Frame {
	if s.stepper.Status().Terminal() {
		return s.Frame()
	}
	status := s.stepper.Step()
	if status != astar.StatusFailed {
		s.metrics.expanded()
	}
	if status.Terminal() {
		s.finish(status)
	}
	return s.Frame()
}

func (s *Session) finish(status astar.Status) {
	fields := []zap.Field{
		zap.String("puzzle_id", s.puzzle.ID.String()),
		zap.Stringer("status", status),
		zap.Int("steps", s.stepper.Steps()),
		zap.Int("closed", s.stepper.ClosedLen()),
	}
	if status == astar.StatusSuccess {
		cost, _ := s.stepper.PathCost()
		fields = append(fields, zap.Int("path_len", len(s.stepper.Path())), zap.Int("cost", cost))
	}
	s.logger.Info("puzzle finished", fields...)
	s.metrics.puzzleFinished(status, s.stepper.Steps())
}

// Frame returns the current frame without stepping.
func (s *Session) Frame() Frame {
	return Frame{
		Puzzle:   s.puzzle,
		Grid:     s.stepper.Grid(),
		Snapshot: s.stepper.Snapshot(),
	}
}

// Done reports whether the current search has finished.
func (s *Session) Done() bool { return s.stepper.Status().Terminal() }

// Status returns the status of the current search.
func (s *Session) Status() astar.Status { return s.stepper.Status() }

// Puzzle returns the current puzzle.
func (s *Session) Puzzle() *maze.Puzzle { return s.puzzle }

// Puzzles returns how many puzzles this session has generated.
func (s *Session) Puzzles() int { return s.puzzles }
