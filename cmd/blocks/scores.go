package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var (
	flagScoresTUI    bool
	flagScoresPlayer string
	flagScoresLimit  int
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best finished games.

Examples:
  blocks scores
  blocks scores --player alice --limit 5
  blocks scores --tui
  blocks scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show this player's results")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all stored results")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Println("All scores cleared.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScores(store, flagScoresPlayer, width, height)
	}

	results, err := store.TopScores(flagScoresPlayer, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'blocks play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-5s  %-7s  %s\n", "Rank", "Player", "Score", "Lines", "Level", "Mode", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-5s  %-7s  %s\n", "----", "------", "-----", "-----", "-----", "----", "----")
	for i, r := range results {
		fmt.Printf("  %-4d  %-12s  %-8d  %-5d  %-5d  %-7s  %s\n",
			i+1, r.Player, r.Score, r.Lines, r.Level, r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats(flagScoresPlayer)
	if err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Average: %.0f  Lines: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalLines)
	}
	return nil
}
