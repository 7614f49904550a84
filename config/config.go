// Package config loads and validates engine configuration. Invalid room
// geometry is rejected here, at construction time, so the per-frame paths
// never have to check it.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultCellSize is the collision-area edge length used when none is
// configured
const DefaultCellSize = 128.0

// ErrInvalidConfig wraps all validation failures
var ErrInvalidConfig = errors.New("invalid config")

// Config is the root configuration
type Config struct {
	Room RoomConfig `yaml:"room"`
	Step StepConfig `yaml:"step"`
}

// RoomConfig describes the bounded room area and its collision grid
type RoomConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	CellSize float64 `yaml:"cell_size"`
}

// StepConfig describes the frame-step loop
type StepConfig struct {
	Hz       float64 `yaml:"hz"`
	MaxSpeed float64 `yaml:"max_speed"` // 0 = uncapped
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	return &Config{
		Room: RoomConfig{
			Width:    1024,
			Height:   768,
			CellSize: DefaultCellSize,
		},
		Step: StepConfig{
			Hz: 60,
		},
	}
}

// Load reads a YAML config file over the defaults and validates the result
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for construction-time errors
func (c *Config) Validate() error {
	if err := c.Room.Validate(); err != nil {
		return err
	}
	if c.Step.Hz <= 0 {
		return fmt.Errorf("%w: step hz %v must be positive", ErrInvalidConfig, c.Step.Hz)
	}
	if c.Step.MaxSpeed < 0 {
		return fmt.Errorf("%w: max speed %v must not be negative", ErrInvalidConfig, c.Step.MaxSpeed)
	}
	return nil
}

// Validate checks room geometry
func (r *RoomConfig) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: room %vx%v must have positive dimensions", ErrInvalidConfig, r.Width, r.Height)
	}
	if r.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %v must be positive", ErrInvalidConfig, r.CellSize)
	}
	return nil
}
