package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

var (
	flagConfig     string
	flagDifficulty string
	flagEffective  bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the engine configuration",
	Long: `Print the embedded default configuration as YAML.

Save the output to ~/.blocks/configs/tetris.yaml (or ./configs/tetris.yaml)
and edit it to change the board size, gravity curve or scoring.

With --effective, print the configuration play would use after applying
the config search order and the difficulty preset.

Examples:
  blocks config > ~/.blocks/configs/tetris.yaml
  blocks config --effective --difficulty hard`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved configuration instead of the defaults")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagEffective {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, _, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// loadGameConfig resolves the engine configuration and applies the
// difficulty preset on top of it.
func loadGameConfig(path, difficulty string) (config.TetrisConfig, config.DifficultyPreset, error) {
	preset, err := config.ParseDifficultyPreset(difficulty)
	if err != nil {
		return config.TetrisConfig{}, "", err
	}

	cfg, err := config.LoadTetris(path)
	if err != nil {
		return config.TetrisConfig{}, "", err
	}

	config.ApplyTetrisPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.TetrisConfig{}, "", fmt.Errorf("difficulty %s: %w", preset, err)
	}

	return cfg, preset, nil
}
