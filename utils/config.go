package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the simulation.
type Config struct {
	Bound          int           `json:"bound"`
	Delay          time.Duration `json:"delay"`
	Pattern        string        `json:"pattern"`
	MaxGenerations int           `json:"max_generations"`
	UseParallel    bool          `json:"use_parallel"`
}

// DefaultConfig returns sensible defaults: the classic 15-cell torus with a
// glider, stepping five times a second until interrupted.
func DefaultConfig() Config {
	return Config{
		Bound:          15,
		Delay:          200 * time.Millisecond,
		Pattern:        "glider",
		MaxGenerations: 0, // run until interrupted
		UseParallel:    false,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate rejects configurations the engine cannot run.
func (c Config) Validate() error {
	if c.Bound <= 0 {
		return errors.Errorf("[Validate] bound must be positive, got: %d", c.Bound)
	}
	if c.Delay < 0 {
		return errors.Errorf("[Validate] delay must be non-negative, got: %v", c.Delay)
	}
	return nil
}
