package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	CellSize            int           `json:"cell_size"`
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"`
	Seed                int64         `json:"seed"` // 0 seeds from the runtime
	Workers             int           `json:"workers"`
	Counter             string        `json:"counter"` // "indexed" or "scan"
	UseMemoryPool       bool          `json:"use_memory_pool"`
	Pattern             string        `json:"pattern"` // "random", "glider", "blinker" or "block"
	StagnationThreshold int           `json:"stagnation_threshold"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               25,
		Height:              25,
		CellSize:            20,
		FrameRate:           200 * time.Millisecond,
		MaxGenerations:      1000,
		Counter:             "indexed",
		UseMemoryPool:       true,
		Pattern:             "random",
		StagnationThreshold: 5,
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

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate rejects values the engine cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "width=%d height=%d must be positive", c.Width, c.Height)
	case c.CellSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "cell_size=%d must be positive", c.CellSize)
	case c.FrameRate <= 0:
		return errors.Wrapf(ErrInvalidConfig, "frame_rate=%s must be positive", c.FrameRate)
	case c.Counter != "indexed" && c.Counter != "scan":
		return errors.Wrapf(ErrInvalidConfig, "unknown counter %q", c.Counter)
	}
	switch c.Pattern {
	case "random", "glider", "blinker", "block":
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown pattern %q", c.Pattern)
	}
	return nil
}
