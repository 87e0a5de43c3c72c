// Package config handles editor configuration loading and management.
package config

import (
	"fmt"

	"battlemat/internal/grid"
)

// Config holds all editor settings.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Window  WindowConfig  `yaml:"window"`
	Logging LoggingConfig `yaml:"logging"`
}

// GridConfig selects the active grid topology and cell size.
type GridConfig struct {
	// Type is one of LINES, DOTS, HIDDEN, HEXAGONAL, ISOMETRIC.
	// The first three share square geometry and differ only in how the
	// renderer draws the grid.
	Type string  `yaml:"type"`
	Size float64 `yaml:"size"` // cell size in pixels
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	VSync  bool `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Type: "LINES",
			Size: grid.DefaultSize,
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
			VSync:  true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks that the grid settings form a usable configuration.
// Invalid values here are programming/deployment errors, not user input;
// they fail loudly rather than degrading.
func (c *Config) Validate() error {
	if _, err := grid.ParseType(c.Grid.Type); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Grid.Size <= 0 {
		return fmt.Errorf("config: grid size must be positive, got %g", c.Grid.Size)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d",
			c.Window.Width, c.Window.Height)
	}
	return nil
}

// GridType returns the parsed grid type tag. Call Validate first.
func (c *Config) GridType() grid.Type {
	t, _ := grid.ParseType(c.Grid.Type)
	return t
}
