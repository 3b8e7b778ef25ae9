// blocks is a falling-block stacking game for the terminal.
//
// Usage:
//
//	blocks play              - Play a game in this terminal
//	blocks serve             - Start SSH server for remote play
//	blocks scores            - Show high scores
//	blocks config            - Print the engine configuration
//
// Global flags:
//
//	--fps <rate>    - Set redraw rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible piece sequences
//	--db <path>     - Set database path (default: ~/.blocks/scores.db)
//	--debug         - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Blocks - stack falling pieces in your terminal",
	Long: `Blocks is a falling-block stacking game for the terminal.
Pieces fall under gravity; fill a row to clear it. Every ten lines the
level rises and pieces fall faster.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the engine configuration

Examples:
  blocks play
  blocks play --difficulty hard
  blocks serve --ssh :2222
  blocks scores --tui`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Redraw rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blocks/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a structured logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
