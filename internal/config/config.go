// Package config provides YAML-based engine configuration loading and
// difficulty presets for the block stacking game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig contains all configuration for the block stacking engine.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Gravity GravityConfig `yaml:"gravity"`
	Scoring ScoringConfig `yaml:"scoring"`
	Preview PreviewConfig `yaml:"preview"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig defines the gravity interval curve.
// interval(level) = max(MinMS, BaseMS - (level-1)*StepMS)
type GravityConfig struct {
	BaseMS int `yaml:"base_ms"`
	StepMS int `yaml:"step_ms"`
	MinMS  int `yaml:"min_ms"`
}

// Base returns the level 1 interval.
func (g GravityConfig) Base() time.Duration {
	return time.Duration(g.BaseMS) * time.Millisecond
}

// Step returns the per-level reduction.
func (g GravityConfig) Step() time.Duration {
	return time.Duration(g.StepMS) * time.Millisecond
}

// Min returns the interval floor.
func (g GravityConfig) Min() time.Duration {
	return time.Duration(g.MinMS) * time.Millisecond
}

// ScoringConfig defines line clear rewards and level pacing.
type ScoringConfig struct {
	PointsPerLine int `yaml:"points_per_line"`
	LinesPerLevel int `yaml:"lines_per_level"`
}

// PreviewConfig controls the next-piece preview.
type PreviewConfig struct {
	Enabled bool `yaml:"enabled"`
}

// ErrInvalidConfig is returned (wrapped) by Validate.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks that the configuration describes a playable engine.
func (c TetrisConfig) Validate() error {
	switch {
	case c.Board.Width <= 0 || c.Board.Height <= 0:
		return fmt.Errorf("%w: board must be positive, got %dx%d", ErrInvalidConfig, c.Board.Width, c.Board.Height)
	case c.Board.Width < 4:
		return fmt.Errorf("%w: board width %d cannot fit an I piece", ErrInvalidConfig, c.Board.Width)
	case c.Gravity.MinMS <= 0:
		return fmt.Errorf("%w: gravity min_ms must be positive, got %d", ErrInvalidConfig, c.Gravity.MinMS)
	case c.Gravity.BaseMS < c.Gravity.MinMS:
		return fmt.Errorf("%w: gravity base_ms %d below min_ms %d", ErrInvalidConfig, c.Gravity.BaseMS, c.Gravity.MinMS)
	case c.Gravity.StepMS < 0:
		return fmt.Errorf("%w: gravity step_ms must not be negative, got %d", ErrInvalidConfig, c.Gravity.StepMS)
	case c.Scoring.PointsPerLine < 0:
		return fmt.Errorf("%w: points_per_line must not be negative, got %d", ErrInvalidConfig, c.Scoring.PointsPerLine)
	case c.Scoring.LinesPerLevel <= 0:
		return fmt.Errorf("%w: lines_per_level must be positive, got %d", ErrInvalidConfig, c.Scoring.LinesPerLevel)
	}
	return nil
}
