package astar

import (
	"fmt"
)

// Coord identifies a lattice cell by row and column.
type Coord struct {
	Row, Col int
}

// String provides a string representation of Coord
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Occupancy marks whether a cell can be walked through.
type Occupancy uint8

const (
	Open Occupancy = iota
	Blocked
)

func (o Occupancy) String() string {
	if o == Blocked {
		return "blocked"
	}
	return "open"
}

// neighborOffsets lists the 8 directions in the order they are relaxed.
var neighborOffsets = [8][2]int{
	{1, 1}, {1, -1}, {1, 0}, {0, 1},
	{0, -1}, {-1, 1}, {-1, -1}, {-1, 0},
}

// Grid is the immutable node lattice for one search. Nodes are addressed by a
// dense id (row*size + col); neighbor lists and heuristic values are computed
// once at construction.
type Grid struct {
	size      int
	start     Coord
	goal      Coord
	cells     []Occupancy
	h         []int
	neighbors [][]int
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|. It is used both as the
// heuristic and as the step cost between adjacent cells.
func Manhattan(a, b Coord) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// NewGrid builds the lattice from a square occupancy matrix. Start and goal are
// forced open.
func NewGrid(cells [][]Occupancy, start, goal Coord) (*Grid, error) {
	size := len(cells)
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrGridTooSmall, size)
	}
	for row, line := range cells {
		if len(line) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrGridNotSquare, row, len(line), size)
		}
	}

	grid := &Grid{
		size:      size,
		start:     start,
		goal:      goal,
		cells:     make([]Occupancy, size*size),
		h:         make([]int, size*size),
		neighbors: make([][]int, size*size),
	}
	if !grid.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !grid.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrOutOfBounds, goal)
	}
	if start == goal {
		return nil, fmt.Errorf("%w: %v", ErrSameEndpoints, start)
	}

	for row, line := range cells {
		copy(grid.cells[row*size:], line)
	}
	grid.cells[grid.ID(start)] = Open
	grid.cells[grid.ID(goal)] = Open

	for id := range grid.cells {
		c := grid.Coord(id)
		grid.h[id] = Manhattan(c, goal)
		list := make([]int, 0, len(neighborOffsets))
		for _, off := range neighborOffsets {
			next := Coord{Row: c.Row + off[0], Col: c.Col + off[1]}
			if grid.InBounds(next) {
				list = append(list, grid.ID(next))
			}
		}
		grid.neighbors[id] = list
	}
	return grid, nil
}

// Size returns N for an N×N grid.
func (g *Grid) Size() int { return g.size }

func (g *Grid) Start() Coord { return g.start }

func (g *Grid) Goal() Coord { return g.goal }

// InBounds reports whether c lies inside the lattice.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// ID converts a coordinate to its dense node id. c must be in bounds; callers
// outside the package check InBounds first.
func (g *Grid) ID(c Coord) int { return c.Row*g.size + c.Col }

// Coord converts a dense node id back to its coordinate.
func (g *Grid) Coord(id int) Coord { return Coord{Row: id / g.size, Col: id % g.size} }

// Occupancy returns the occupancy of c. Out of bounds cells report Blocked.
func (g *Grid) Occupancy(c Coord) Occupancy {
	if !g.InBounds(c) {
		return Blocked
	}
	return g.cells[g.ID(c)]
}

// Heuristic returns the static h value of c. Out of bounds cells get the
// Manhattan distance to the goal computed on the fly.
func (g *Grid) Heuristic(c Coord) int {
	if !g.InBounds(c) {
		return Manhattan(c, g.goal)
	}
	return g.h[g.ID(c)]
}

// Neighbors returns the in-bounds 8-adjacent cells of c, blocked ones included.
func (g *Grid) Neighbors(c Coord) []Coord {
	if !g.InBounds(c) {
		return nil
	}
	ids := g.neighbors[g.ID(c)]
	out := make([]Coord, len(ids))
	for i, id := range ids {
		out[i] = g.Coord(id)
	}
	return out
}

// Len returns the number of nodes (N²).
func (g *Grid) Len() int { return len(g.cells) }
