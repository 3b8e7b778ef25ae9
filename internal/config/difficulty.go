package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets only reshape the gravity curve; scoring and leveling stay fixed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name. Empty means normal.
func ParseDifficultyPreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyTetrisPreset modifies the gravity curve based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.BaseMS = 1200
		cfg.Gravity.StepMS = 80
		cfg.Gravity.MinMS = 150
	case DifficultyHard:
		cfg.Gravity.BaseMS = 600
		cfg.Gravity.StepMS = 60
		cfg.Gravity.MinMS = 80
	case DifficultyFixed:
		cfg.Gravity.StepMS = 0
	}

	if cfg.Gravity.MinMS > cfg.Gravity.BaseMS {
		cfg.Gravity.MinMS = cfg.Gravity.BaseMS
	}
}
