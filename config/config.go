// Package config loads mazestar settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/mazestar/maze"
)

// ErrInvalidConfig indicates the provided configuration is invalid or incomplete.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	defaultFrameInterval = 16 * time.Millisecond
	defaultRestartDelay  = 5 * time.Second
	defaultAddr          = ":8080"
)

// Config holds all mazestar configuration.
type Config struct {
	Maze    MazeConfig    `yaml:"maze"`
	Driver  DriverConfig  `yaml:"driver"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// MazeConfig configures maze generation.
type MazeConfig struct {
	Size            int     `yaml:"size"`
	WallProbability float64 `yaml:"wall_probability"`
	// Seed fixes the random source; 0 draws a fresh seed per run.
	Seed uint64 `yaml:"seed,omitempty"`
}

// DriverConfig configures the frame loop.
type DriverConfig struct {
	// FrameInterval is the delay between two expansions.
	// Format: Go duration string (e.g., "16ms"). "0s" steps as fast as possible.
	FrameInterval string `yaml:"frame_interval"`

	// RestartDelay is how long a finished search stays on screen.
	// Format: Go duration string (e.g., "5s")
	RestartDelay string `yaml:"restart_delay"`

	// MaxPuzzles stops the loop after that many searches; 0 runs forever.
	MaxPuzzles int `yaml:"max_puzzles,omitempty"`
}

// ServerConfig configures the HTTP visualizer.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
	File   string `yaml:"file,omitempty"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Maze: MazeConfig{
			Size:            maze.DefaultSize,
			WallProbability: maze.DefaultWallProbability,
		},
		Driver: DriverConfig{
			FrameInterval: defaultFrameInterval.String(),
			RestartDelay:  defaultRestartDelay.String(),
		},
		Server:  ServerConfig{Addr: defaultAddr},
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
}

// Load reads path on top of DefaultConfig. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.MazeOptions().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := parseDuration(c.Driver.FrameInterval); err != nil {
		return fmt.Errorf("%w: driver.frame_interval: %v", ErrInvalidConfig, err)
	}
	if _, err := parseDuration(c.Driver.RestartDelay); err != nil {
		return fmt.Errorf("%w: driver.restart_delay: %v", ErrInvalidConfig, err)
	}
	if c.Driver.MaxPuzzles < 0 {
		return fmt.Errorf("%w: driver.max_puzzles must not be negative", ErrInvalidConfig)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}

// MazeOptions converts the maze section for the generator.
func (c *Config) MazeOptions() maze.Options {
	return maze.Options{Size: c.Maze.Size, WallProbability: c.Maze.WallProbability}
}

// GetFrameInterval parses the frame interval and returns a duration.
// Returns the default value if not set or invalid.
func (d *DriverConfig) GetFrameInterval() time.Duration {
	v, err := parseDuration(d.FrameInterval)
	if err != nil || d.FrameInterval == "" {
		return defaultFrameInterval
	}
	return v
}

// GetRestartDelay parses the restart delay and returns a duration.
// Returns the default value if not set or invalid.
func (d *DriverConfig) GetRestartDelay() time.Duration {
	v, err := parseDuration(d.RestartDelay)
	if err != nil || d.RestartDelay == "" {
		return defaultRestartDelay
	}
	return v
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %s", s)
	}
	return d, nil
}
