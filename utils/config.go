package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned when a configuration value is out of range
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the editor
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	Speed               time.Duration `json:"speed"`
	SpeedStep           time.Duration `json:"speed_step"`
	Pattern             string        `json:"pattern"`
	Tool                string        `json:"tool"`
	RandomDensity       float64       `json:"random_density"`
	Seed                int64         `json:"seed"`
	UseBoundedGrid      bool          `json:"use_bounded_grid"`
	MaxGenerations      int           `json:"max_generations"`
	StagnationThreshold int           `json:"stagnation_threshold"`
}

// DefaultConfig returns the editor's start state: a 100x60 board holding the glider gun
func DefaultConfig() Config {
	return Config{
		Width:               100,
		Height:              60,
		Speed:               180 * time.Millisecond,
		SpeedStep:           30 * time.Millisecond,
		Pattern:             "gosperGliderGun",
		Tool:                "draw",
		RandomDensity:       0.3,
		Seed:                0, // 0 seeds from the clock
		UseBoundedGrid:      false,
		MaxGenerations:      1000,
		StagnationThreshold: 5,
	}
}

// LoadConfig loads configuration from JSON file on top of DefaultConfig
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid values in file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first out-of-range field
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "board must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.Speed <= 0:
		return errors.Wrapf(ErrInvalidConfig, "speed must be positive, got %v", c.Speed)
	case c.SpeedStep < 0:
		return errors.Wrapf(ErrInvalidConfig, "speed_step must not be negative, got %v", c.SpeedStep)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "random_density must be within [0,1], got %v", c.RandomDensity)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_generations must not be negative, got %d", c.MaxGenerations)
	case c.StagnationThreshold < 0:
		return errors.Wrapf(ErrInvalidConfig, "stagnation_threshold must not be negative, got %d", c.StagnationThreshold)
	}
	return nil
}
