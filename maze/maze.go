// Package maze generates random coin-flip grid mazes for the A* search.
// Mazes are not guaranteed to be solvable.
package maze

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/pdrpinto/mazestar/astar"
)

const (
	// DefaultSize is the side length of a generated maze.
	DefaultSize = 80
	// DefaultWallProbability makes every cell a coin flip.
	DefaultWallProbability = 0.5
	// MaxSize bounds the side length so a request cannot force a huge allocation.
	MaxSize = 512
)

// ErrInvalidOptions indicates Options that cannot produce a maze.
var ErrInvalidOptions = errors.New("invalid maze options")

// Options controls maze generation.
type Options struct {
	Size            int
	WallProbability float64
}

// DefaultOptions returns an 80x80 maze with walls on half of the cells.
func DefaultOptions() Options {
	return Options{Size: DefaultSize, WallProbability: DefaultWallProbability}
}

// Validate checks that a maze with distinct endpoints can be built.
func (o Options) Validate() error {
	if o.Size < 2 {
		return fmt.Errorf("%w: size %d is below 2", ErrInvalidOptions, o.Size)
	}
	if o.Size > MaxSize {
		return fmt.Errorf("%w: size %d is above %d", ErrInvalidOptions, o.Size, MaxSize)
	}
	if o.WallProbability < 0 || o.WallProbability > 1 {
		return fmt.Errorf("%w: wall probability %v outside [0,1]", ErrInvalidOptions, o.WallProbability)
	}
	return nil
}

// Puzzle is one generated maze with its endpoints.
type Puzzle struct {
	ID    uuid.UUID
	Cells [][]astar.Occupancy
	Start astar.Coord
	Goal  astar.Coord
}

// Size returns the side length of the maze.
func (p *Puzzle) Size() int { return len(p.Cells) }

// Grid builds the search lattice for the puzzle.
func (p *Puzzle) Grid() (*astar.Grid, error) {
	return astar.NewGrid(p.Cells, p.Start, p.Goal)
}

// NewStepper builds the lattice and a fresh stepper over it.
func (p *Puzzle) NewStepper(options ...astar.Option) (*astar.Stepper, error) {
	grid, err := p.Grid()
	if err != nil {
		return nil, fmt.Errorf("puzzle %s: %w", p.ID, err)
	}
	return astar.NewStepper(grid, options...), nil
}

// Generate draws a maze from rng. Each cell is blocked with probability
// opts.WallProbability; the goal is redrawn until it differs from the start
// and both endpoints are forced open.
func Generate(rng *rand.Rand, opts Options) (*Puzzle, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	n := opts.Size

	cells := make([][]astar.Occupancy, n)
	for i := range cells {
		cells[i] = make([]astar.Occupancy, n)
		for j := range cells[i] {
			if rng.Float64() < opts.WallProbability {
				cells[i][j] = astar.Blocked
			}
		}
	}

	start := randomCoord(rng, n)
	goal := randomCoord(rng, n)
	for goal == start {
		goal = randomCoord(rng, n)
	}
	cells[start.Row][start.Col] = astar.Open
	cells[goal.Row][goal.Col] = astar.Open

	return &Puzzle{
		ID:    uuid.New(),
		Cells: cells,
		Start: start,
		Goal:  goal,
	}, nil
}

func randomCoord(rng *rand.Rand, n int) astar.Coord {
	return astar.Coord{Row: rng.IntN(n), Col: rng.IntN(n)}
}

// NewRand returns a generator seeded with seed, or a randomly seeded one when
// seed is zero.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
