package driver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/mazestar/astar"
	"github.com/pdrpinto/mazestar/maze"
)

type recorder struct {
	frames []Frame
	err    error
	failAt int
}

func (r *recorder) Render(frame Frame) error {
	r.frames = append(r.frames, frame)
	if r.failAt > 0 && len(r.frames) == r.failAt {
		return r.err
	}
	return nil
}

func (r *recorder) puzzles() int {
	seen := map[string]bool{}
	for _, f := range r.frames {
		seen[f.Puzzle.ID.String()] = true
	}
	return len(seen)
}

func TestRunner_RunStopsAfterMaxPuzzles(t *testing.T) {
	rec := &recorder{}
	runner, err := NewRunner(RunnerConfig{
		Maze:       maze.Options{Size: 8, WallProbability: 0.4},
		MaxPuzzles: 3,
	}, rec, WithRand(maze.NewRand(10)))
	require.NoError(t, err)

	require.NoError(t, runner.Run(context.Background()))
	assert.Equal(t, 3, rec.puzzles())

	done := 0
	for _, f := range rec.frames {
		if f.Done() {
			done++
		}
	}
	assert.Equal(t, 3, done, "each search ends with exactly one terminal frame")
}

func TestRunner_FramesAdvanceOneStepAtATime(t *testing.T) {
	rec := &recorder{}
	runner, err := NewRunner(RunnerConfig{Maze: maze.Options{Size: 10, WallProbability: 0.3}}, rec,
		WithRand(maze.NewRand(21)))
	require.NoError(t, err)

	final, err := runner.RunOnce(context.Background())
	require.NoError(t, err)
	assert.True(t, final.Done())

	require.NotEmpty(t, rec.frames)
	for i, f := range rec.frames {
		want := i
		if f.Snapshot.Status == astar.StatusFailed {
			// the exhausting step expands nothing
			want = i - 1
		}
		assert.Equal(t, want, f.Snapshot.StepIndex)
	}
	last := rec.frames[len(rec.frames)-1]
	assert.Equal(t, final.Snapshot.Status, last.Snapshot.Status)
}

func TestRunner_CancelDuringRestartDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rec := &recorder{}
	runner, err := NewRunner(RunnerConfig{
		Maze:         maze.Options{Size: 4, WallProbability: 0},
		RestartDelay: time.Hour,
	}, RendererFunc(func(f Frame) error {
		_ = rec.Render(f)
		if f.Done() {
			cancel()
		}
		return nil
	}), WithRand(maze.NewRand(1)))
	require.NoError(t, err)

	err = runner.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, rec.puzzles())
}

func TestRunner_CancelDuringFrames(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	runner, err := NewRunner(RunnerConfig{
		Maze:          maze.Options{Size: 40, WallProbability: 0},
		FrameInterval: time.Hour,
	}, nil)
	require.NoError(t, err)

	_, err = runner.RunOnce(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunner_TickedFrames(t *testing.T) {
	rec := &recorder{}
	runner, err := NewRunner(RunnerConfig{
		Maze:          maze.Options{Size: 3, WallProbability: 0},
		FrameInterval: time.Millisecond,
	}, rec, WithRand(maze.NewRand(6)))
	require.NoError(t, err)

	final, err := runner.RunOnce(context.Background())
	require.NoError(t, err)
	assert.True(t, final.Done())
	assert.Greater(t, len(rec.frames), 1)
}

func TestRunner_RendererError(t *testing.T) {
	boom := errors.New("boom")
	rec := &recorder{err: boom, failAt: 2}
	runner, err := NewRunner(RunnerConfig{Maze: maze.Options{Size: 10, WallProbability: 0}}, rec)
	require.NoError(t, err)

	err = runner.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Len(t, rec.frames, 2)
}

func TestNewRunner_Validation(t *testing.T) {
	_, err := NewRunner(RunnerConfig{Maze: maze.Options{Size: 0}}, nil)
	assert.ErrorIs(t, err, maze.ErrInvalidOptions)

	_, err = NewRunner(RunnerConfig{Maze: maze.DefaultOptions(), RestartDelay: -time.Second}, nil)
	assert.Error(t, err)
}
