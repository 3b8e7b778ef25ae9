package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var (
	flagLogFile string
	flagPlayer  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in this terminal",
	Long: `Start a game session in this terminal.

Controls:
  Left/H, Right/L   - Move
  Down/J            - Soft drop
  Space             - Hard drop
  Up/K/X            - Rotate clockwise
  Enter/S           - Start
  P/Esc             - Pause / resume
  R                 - Reset
  ?                 - Toggle full help
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slow start, gentle speed-up
  normal - 1000ms start, 100ms faster per level
  hard   - Fast start, steep speed-up
  fixed  - Speed never changes

Examples:
  blocks play
  blocks play --difficulty easy
  blocks play --config ./my-blocks.yaml
  blocks play --seed 42 --log-file /tmp/blocks.log --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is busy drawing)")
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Player name stored with results")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, preset, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "blocks")

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := flagPlayer
	if player == "" {
		player = "player"
	}

	logger.Info("session starting",
		"player", player,
		"difficulty", preset,
		"fixed_speed", config.IsFixedPreset(preset),
		"board", fmt.Sprintf("%dx%d", gameCfg.Board.Width, gameCfg.Board.Height),
	)

	status, err := tui.Run(tui.ModelOptions{
		Game: gameCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Difficulty: preset,
		Player:     player,
		Store:      store,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	logger.Info("session ended", "state", status.State, "score", status.Score, "lines", status.Lines, "level", status.Level)
	fmt.Printf("Score %d  Lines %d  Level %d\n", status.Score, status.Lines, status.Level)
	return nil
}
