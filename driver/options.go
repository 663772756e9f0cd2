package driver

import (
	"math/rand/v2"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"

	"github.com/pdrpinto/mazestar/maze"
)

// Options configures sessions and runners.
type Options struct {
	Logger        *zap.Logger
	Rand          *rand.Rand
	MeterProvider metric.MeterProvider

	metrics *metrics
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger sets the logger for puzzle lifecycle events.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithRand sets the random source used for maze generation.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// WithMeterProvider records puzzle and expansion metrics on mp.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *Options) {
		if mp != nil {
			o.MeterProvider = mp
		}
	}
}

func newOptions(options []Option) (Options, error) {
	o := Options{
		Logger:        zap.NewNop(),
		MeterProvider: noop.NewMeterProvider(),
	}
	for _, option := range options {
		option(&o)
	}
	if o.Rand == nil {
		o.Rand = maze.NewRand(0)
	}
	m, err := newMetrics(o.MeterProvider.Meter(meterName))
	if err != nil {
		return Options{}, err
	}
	o.metrics = m
	return o, nil
}
