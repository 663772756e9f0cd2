package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openCells(n int) [][]Occupancy {
	cells := make([][]Occupancy, n)
	for i := range cells {
		cells[i] = make([]Occupancy, n)
	}
	return cells
}

// parseCells reads rows of '.' (open) and '#' (blocked).
func parseCells(rows ...string) [][]Occupancy {
	cells := make([][]Occupancy, len(rows))
	for i, row := range rows {
		cells[i] = make([]Occupancy, len(row))
		for j, ch := range row {
			if ch == '#' {
				cells[i][j] = Blocked
			}
		}
	}
	return cells
}

func TestNewGrid_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cells   [][]Occupancy
		start   Coord
		goal    Coord
		wantErr error
	}{
		{"single cell", openCells(1), Coord{0, 0}, Coord{0, 0}, ErrGridTooSmall},
		{"empty", nil, Coord{0, 0}, Coord{0, 1}, ErrGridTooSmall},
		{"ragged", [][]Occupancy{{Open, Open}, {Open}}, Coord{0, 0}, Coord{0, 1}, ErrGridNotSquare},
		{"start outside", openCells(3), Coord{-1, 0}, Coord{0, 1}, ErrOutOfBounds},
		{"goal outside", openCells(3), Coord{0, 0}, Coord{3, 3}, ErrOutOfBounds},
		{"same endpoints", openCells(3), Coord{1, 1}, Coord{1, 1}, ErrSameEndpoints},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := NewGrid(tt.cells, tt.start, tt.goal)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, grid)
		})
	}
}

func TestNewGrid_ForcesEndpointsOpen(t *testing.T) {
	cells := parseCells(
		"#..",
		"...",
		"..#",
	)
	grid, err := NewGrid(cells, Coord{0, 0}, Coord{2, 2})
	require.NoError(t, err)

	assert.Equal(t, Open, grid.Occupancy(Coord{0, 0}))
	assert.Equal(t, Open, grid.Occupancy(Coord{2, 2}))
	// the caller's matrix is copied, not modified
	assert.Equal(t, Blocked, cells[0][0])
}

func TestNewGrid_Heuristic(t *testing.T) {
	grid, err := NewGrid(openCells(4), Coord{0, 0}, Coord{3, 1})
	require.NoError(t, err)

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			c := Coord{row, col}
			assert.Equal(t, Manhattan(c, Coord{3, 1}), grid.Heuristic(c), "h of %v", c)
		}
	}
	assert.Equal(t, 0, grid.Heuristic(grid.Goal()))
}

func TestNewGrid_Neighbors(t *testing.T) {
	cells := parseCells(
		"...",
		".#.",
		"...",
	)
	grid, err := NewGrid(cells, Coord{0, 0}, Coord{2, 2})
	require.NoError(t, err)

	assert.ElementsMatch(t, []Coord{{0, 1}, {1, 0}, {1, 1}}, grid.Neighbors(Coord{0, 0}))
	assert.ElementsMatch(t, []Coord{{0, 0}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, grid.Neighbors(Coord{0, 1}))

	// blocked cells still get their neighbor list
	center := grid.Neighbors(Coord{1, 1})
	assert.Len(t, center, 8)
	assert.NotContains(t, center, Coord{1, 1})
}

func TestGrid_OutOfBounds(t *testing.T) {
	grid, err := NewGrid(openCells(3), Coord{0, 0}, Coord{2, 2})
	require.NoError(t, err)

	assert.Nil(t, grid.Neighbors(Coord{0, 3}))
	assert.Nil(t, grid.Neighbors(Coord{5, 0}))
	assert.Equal(t, 3, grid.Heuristic(Coord{0, 3}))
	assert.Equal(t, 7, grid.Heuristic(Coord{-1, -2}))
	assert.Equal(t, Blocked, grid.Occupancy(Coord{3, 3}))
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, Manhattan(Coord{2, 2}, Coord{2, 2}))
	assert.Equal(t, 1, Manhattan(Coord{2, 2}, Coord{2, 3}))
	assert.Equal(t, 2, Manhattan(Coord{2, 2}, Coord{3, 3}))
	assert.Equal(t, 7, Manhattan(Coord{0, 5}, Coord{4, 2}))
}

func TestGrid_IDRoundTrip(t *testing.T) {
	grid, err := NewGrid(openCells(5), Coord{0, 0}, Coord{4, 4})
	require.NoError(t, err)

	assert.Equal(t, 25, grid.Len())
	for id := 0; id < grid.Len(); id++ {
		assert.Equal(t, id, grid.ID(grid.Coord(id)))
	}
	assert.Equal(t, Blocked, grid.Occupancy(Coord{5, 0}))
	assert.Equal(t, "(3,4)", Coord{3, 4}.String())
}
