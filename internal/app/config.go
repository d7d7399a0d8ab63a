package app

import (
	"errors"
	"time"
)

// DefaultTickRate is the number of engine updates per second.
const DefaultTickRate = 60

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PatchPath string // .hcl, .yaml or .yml files, or a directory of them

	LogFormat string
	LogLevel  string

	// TickRate is the number of engine updates per second.
	TickRate int
	// MaxSteps caps node executions per update; zero keeps the engine default.
	MaxSteps int
	// Duration stops the run after this long; zero runs until cancelled.
	Duration time.Duration

	// BackendURL is the socket.io endpoint of the audio host. Empty runs
	// offline, logging backend commands instead of sending them.
	BackendURL       string
	BackendNamespace string

	InspectPort int
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PatchPath == "" {
		return nil, errors.New("PatchPath is a required configuration field and cannot be empty")
	}
	if cfg.TickRate < 0 {
		return nil, errors.New("TickRate cannot be negative")
	}
	if cfg.TickRate == 0 {
		cfg.TickRate = DefaultTickRate
	}
	if cfg.InspectPort < 0 || cfg.InspectPort > 65535 {
		return nil, errors.New("InspectPort must be between 0 and 65535")
	}
	return &cfg, nil
}

// TickInterval is the time between two engine updates.
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
