package maze

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/mazestar/astar"
)

func TestGenerate_Shape(t *testing.T) {
	rng := NewRand(1)
	p, err := Generate(rng, Options{Size: 10, WallProbability: 0.5})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, 10, p.Size())
	for _, row := range p.Cells {
		assert.Len(t, row, 10)
	}
	assert.NotEqual(t, p.Start, p.Goal)
	assert.Equal(t, astar.Open, p.Cells[p.Start.Row][p.Start.Col])
	assert.Equal(t, astar.Open, p.Cells[p.Goal.Row][p.Goal.Col])
}

func TestGenerate_DistinctEndpointsOnSmallestGrid(t *testing.T) {
	rng := NewRand(99)
	for i := 0; i < 500; i++ {
		p, err := Generate(rng, Options{Size: 2, WallProbability: 1})
		require.NoError(t, err)
		require.NotEqual(t, p.Start, p.Goal)

		blocked := 0
		for _, row := range p.Cells {
			for _, c := range row {
				if c == astar.Blocked {
					blocked++
				}
			}
		}
		assert.Equal(t, 2, blocked, "only the endpoints are open")
	}
}

func TestGenerate_WallProbabilityExtremes(t *testing.T) {
	rng := NewRand(5)

	open, err := Generate(rng, Options{Size: 6, WallProbability: 0})
	require.NoError(t, err)
	for _, row := range open.Cells {
		for _, c := range row {
			assert.Equal(t, astar.Open, c)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(NewRand(77), DefaultOptions())
	require.NoError(t, err)
	b, err := Generate(NewRand(77), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, a.Cells, b.Cells)
	assert.Equal(t, a.Start, b.Start)
	assert.Equal(t, a.Goal, b.Goal)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		ok   bool
	}{
		{"defaults", DefaultOptions(), true},
		{"smallest", Options{Size: 2}, true},
		{"single cell", Options{Size: 1, WallProbability: 0.5}, false},
		{"largest", Options{Size: MaxSize}, true},
		{"above max size", Options{Size: MaxSize + 1}, false},
		{"huge", Options{Size: 1 << 40}, false},
		{"negative probability", Options{Size: 4, WallProbability: -0.1}, false},
		{"probability above one", Options{Size: 4, WallProbability: 1.5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidOptions)
			_, genErr := Generate(NewRand(1), tt.opts)
			assert.ErrorIs(t, genErr, ErrInvalidOptions)
		})
	}
}

func TestPuzzle_NewStepper(t *testing.T) {
	p, err := Generate(NewRand(3), Options{Size: 8, WallProbability: 0.3})
	require.NoError(t, err)

	stepper, err := p.NewStepper()
	require.NoError(t, err)
	assert.Equal(t, p.Start, stepper.Grid().Start())
	assert.Equal(t, p.Goal, stepper.Grid().Goal())
	assert.True(t, stepper.InOpen(p.Start))
}
