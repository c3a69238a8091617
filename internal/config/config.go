// Package config loads solvetrack configuration from file, environment,
// and defaults.
package config

import (
	"errors"
	"fmt"

	"github.com/solvetrack/solvetrack/internal/bucket"
	"github.com/solvetrack/solvetrack/internal/chart/segment"
)

// Config is the top-level configuration struct for solvetrack.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Theme string      `mapstructure:"theme"`
	View  ViewConfig  `mapstructure:"view"`
	Chart ChartConfig `mapstructure:"chart"`
	Serve ServeConfig `mapstructure:"serve"`
}

// ViewConfig holds the default view selection.
type ViewConfig struct {
	Mode        string `mapstructure:"mode"`
	Stack       string `mapstructure:"stack"`
	Granularity string `mapstructure:"granularity"`
}

// ChartConfig holds chart geometry and animation knobs.
type ChartConfig struct {
	Width       float64 `mapstructure:"width"`
	Height      float64 `mapstructure:"height"`
	AnimationMS int     `mapstructure:"animation_ms"`
}

// ServeConfig holds the serve command settings.
type ServeConfig struct {
	Listen string `mapstructure:"listen"`
}

// Validation errors.
var (
	ErrInvalidTheme       = errors.New("theme must be \"light\" or \"dark\"")
	ErrInvalidViewMode    = errors.New("view.mode must be \"problems\" or \"submissions\"")
	ErrInvalidStackMode   = errors.New("view.stack must be \"difficulty\" or \"language\"")
	ErrInvalidGranularity = errors.New("view.granularity must be \"daily\", \"weekly\", or \"monthly\"")
	ErrInvalidDimensions  = errors.New("chart.width and chart.height must be positive")
)

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Theme != "light" && c.Theme != "dark" {
		return fmt.Errorf("%w: got %q", ErrInvalidTheme, c.Theme)
	}

	if !segment.ViewMode(c.View.Mode).Valid() {
		return fmt.Errorf("%w: got %q", ErrInvalidViewMode, c.View.Mode)
	}

	if !segment.StackMode(c.View.Stack).Valid() {
		return fmt.Errorf("%w: got %q", ErrInvalidStackMode, c.View.Stack)
	}

	if !bucket.Granularity(c.View.Granularity).Valid() {
		return fmt.Errorf("%w: got %q", ErrInvalidGranularity, c.View.Granularity)
	}

	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return ErrInvalidDimensions
	}

	return nil
}

// ViewSelection converts the configured defaults into a segment
// ViewConfig.
func (c *Config) ViewSelection() segment.ViewConfig {
	return segment.ViewConfig{
		View:        segment.ViewMode(c.View.Mode),
		Stack:       segment.StackMode(c.View.Stack),
		Granularity: bucket.Granularity(c.View.Granularity),
	}
}
