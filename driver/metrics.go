package driver

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/pdrpinto/mazestar/astar"
)

const meterName = "github.com/pdrpinto/mazestar/driver"

// metrics holds the instruments recorded by sessions.
type metrics struct {
	// puzzles counts generated puzzles
	puzzles metric.Int64Counter

	// expansions counts node expansions across all searches
	expansions metric.Int64Counter

	// outcomes counts finished searches by status
	outcomes metric.Int64Counter

	// steps records expansions per finished search
	steps metric.Int64Histogram
}

func newMetrics(meter metric.Meter) (*metrics, error) {
	m := &metrics{}
	var err error

	m.puzzles, err = meter.Int64Counter(
		"mazestar.puzzles",
		metric.WithDescription("Number of mazes generated"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create puzzles counter: %w", err)
	}

	m.expansions, err = meter.Int64Counter(
		"mazestar.expansions",
		metric.WithDescription("Number of A* node expansions"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create expansions counter: %w", err)
	}

	m.outcomes, err = meter.Int64Counter(
		"mazestar.searches",
		metric.WithDescription("Number of finished searches by status"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create searches counter: %w", err)
	}

	m.steps, err = meter.Int64Histogram(
		"mazestar.search.steps",
		metric.WithDescription("Expansions needed to finish a search"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create steps histogram: %w", err)
	}
	return m, nil
}

func (m *metrics) puzzleStarted() {
	m.puzzles.Add(context.Background(), 1)
}

func (m *metrics) expanded() {
	m.expansions.Add(context.Background(), 1)
}

func (m *metrics) puzzleFinished(status astar.Status, steps int) {
	ctx := context.Background()
	opts := metric.WithAttributes(attribute.String("status", status.String()))
	m.outcomes.Add(ctx, 1, opts)
	m.steps.Record(ctx, int64(steps), opts)
}
