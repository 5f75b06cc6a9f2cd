// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - New() returns a Config populated with defaults.
// - Load(ctx) layers a YAML file and ARCSTAR_* environment variables on top.
// - Validation failures wrap ErrInvalidConfig.
package config

import (
	"fmt"
	"math"
	"runtime"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// EventQueueSize bounds the in-memory event queue.
	EventQueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of detection workers.
	WorkerCount int `koanf:"worker_count"`

	// SensorRows and SensorCols give the sensor extent in pixels.
	SensorRows int `koanf:"sensor_rows"`
	SensorCols int `koanf:"sensor_cols"`

	// SplitPolarity keeps one surface per polarity instead of a shared one.
	SplitPolarity bool `koanf:"split_polarity"`

	// CornerCapacity bounds how many recent corners are retained.
	CornerCapacity int `koanf:"corner_capacity"`

	// MaxCornerLimit caps GET /corners?limit.
	MaxCornerLimit int `koanf:"max_corner_limit"`

	// MatchRadius is the pixel radius searched by POST /corners/match.
	MatchRadius int `koanf:"match_radius"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9080",
		EventQueueSize: 100_000,
		WorkerCount:    runtime.NumCPU(),
		SensorRows:     180,
		SensorCols:     240,
		SplitPolarity:  true,
		CornerCapacity: 4096,
		MaxCornerLimit: 100,
		MatchRadius:    5,
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("addr must not be empty: %w", ErrInvalidConfig)
	case c.SensorRows < 1 || c.SensorRows > maxSensorExtent:
		return fmt.Errorf("sensor_rows %d must be in [1, %d]: %w", c.SensorRows, maxSensorExtent, ErrInvalidConfig)
	case c.SensorCols < 1 || c.SensorCols > maxSensorExtent:
		return fmt.Errorf("sensor_cols %d must be in [1, %d]: %w", c.SensorCols, maxSensorExtent, ErrInvalidConfig)
	case c.CornerCapacity < 1:
		return fmt.Errorf("corner_capacity %d must be positive: %w", c.CornerCapacity, ErrInvalidConfig)
	case c.EventQueueSize < 1:
		return fmt.Errorf("queue_size %d must be positive: %w", c.EventQueueSize, ErrInvalidConfig)
	case c.WorkerCount < 1:
		return fmt.Errorf("worker_count %d must be positive: %w", c.WorkerCount, ErrInvalidConfig)
	case c.MaxCornerLimit < 1:
		return fmt.Errorf("max_corner_limit %d must be positive: %w", c.MaxCornerLimit, ErrInvalidConfig)
	case c.MatchRadius < 0 || c.MatchRadius > math.MaxUint16:
		return fmt.Errorf("match_radius %d must be in [0, %d]: %w", c.MatchRadius, math.MaxUint16, ErrInvalidConfig)
	}
	return nil
}

// Event coordinates are 16-bit.
const maxSensorExtent = 1 << 16
