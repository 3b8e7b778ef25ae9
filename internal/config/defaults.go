package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default engine configuration.
// Values mirror defaults/tetris.yaml.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Gravity: GravityConfig{
			BaseMS: 1000,
			StepMS: 100,
			MinMS:  100,
		},
		Scoring: ScoringConfig{
			PointsPerLine: 100,
			LinesPerLevel: 10,
		},
		Preview: PreviewConfig{
			Enabled: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
