package driver

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pdrpinto/mazestar/maze"
)

// Renderer receives every frame the runner produces.
type Renderer interface {
	Render(frame Frame) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(frame Frame) error

func (f RendererFunc) Render(frame Frame) error { return f(frame) }

// RunnerConfig controls the frame loop.
type RunnerConfig struct {
	Maze maze.Options
	// FrameInterval is the delay before each Step; zero steps back to back.
	FrameInterval time.Duration
	// RestartDelay is the pause between a finished search and the next puzzle.
	RestartDelay time.Duration
	// MaxPuzzles stops Run after that many searches; zero runs until cancelled.
	MaxPuzzles int
}

// Runner repeatedly generates a maze and steps its search to the end, one
// expansion per frame.
type Runner struct {
	cfg      RunnerConfig
	renderer Renderer
	options  []Option
	logger   *zap.Logger
}

// NewRunner checks cfg and returns a runner drawing to renderer.
func NewRunner(cfg RunnerConfig, renderer Renderer, options ...Option) (*Runner, error) {
	if err := cfg.Maze.Validate(); err != nil {
		return nil, err
	}
	if cfg.FrameInterval < 0 || cfg.RestartDelay < 0 {
		return nil, fmt.Errorf("negative frame interval or restart delay")
	}
	if renderer == nil {
		renderer = RendererFunc(func(Frame) error { return nil })
	}
	opts, err := newOptions(options)
	if err != nil {
		return nil, err
	}
	return &Runner{cfg: cfg, renderer: renderer, options: options, logger: opts.Logger}, nil
}

// Run loops over puzzles until ctx is cancelled, the renderer fails, or
// MaxPuzzles searches have finished. Cancellation returns ctx.Err().
func (r *Runner) Run(ctx context.Context) error {
	session, err := NewSession(r.cfg.Maze, r.options...)
	if err != nil {
		return err
	}
	for {
		if _, err := r.search(ctx, session); err != nil {
			return err
		}
		if r.cfg.MaxPuzzles > 0 && session.Puzzles() >= r.cfg.MaxPuzzles {
			r.logger.Debug("puzzle limit reached", zap.Int("puzzles", session.Puzzles()))
			return nil
		}
		if err := sleep(ctx, r.cfg.RestartDelay); err != nil {
			return err
		}
		if err := session.Reset(); err != nil {
			return err
		}
	}
}

// RunOnce generates a single puzzle and steps it to the end, returning the
// final frame.
func (r *Runner) RunOnce(ctx context.Context) (Frame, error) {
	session, err := NewSession(r.cfg.Maze, r.options...)
	if err != nil {
		return Frame{}, err
	}
	return r.search(ctx, session)
}

func (r *Runner) search(ctx context.Context, session *Session) (Frame, error) {
	frame := session.Frame()
	if err := r.renderer.Render(frame); err != nil {
		return frame, fmt.Errorf("render: %w", err)
	}

	var tick <-chan time.Time
	if r.cfg.FrameInterval > 0 {
		ticker := time.NewTicker(r.cfg.FrameInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for !frame.Done() {
		if tick != nil {
			select {
			case <-ctx.Done():
				return frame, ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return frame, err
		}

		frame = session.Advance()
		if err := r.renderer.Render(frame); err != nil {
			return frame, fmt.Errorf("render: %w", err)
		}
	}
	return frame, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
