// studyquest is a gamified study tracker for the terminal: run countdown
// study timers, earn coins for studied minutes, and spend them on wager
// mini-games and cosmetic character items.
//
// Usage:
//
//	studyquest play             - Start a study session
//	studyquest serve            - Start SSH server for remote sessions
//	studyquest games            - List available mini-games
//	studyquest stats            - Show study and game history
//
// Global flags:
//
//	--db <path>      - Set history database path (default: ~/.studyquest/history.db)
//	--seed <value>   - Set RNG seed for reproducible game draws
//	--config <path>  - Path to custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/studyquest/internal/games/marblerace"
	_ "github.com/vovakirdan/studyquest/internal/games/numberguess"
	_ "github.com/vovakirdan/studyquest/internal/games/parity"
)

var (
	// Global flags
	flagDBPath string
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "studyquest",
	Short: "StudyQuest - Study, earn coins, play in your terminal",
	Long: `StudyQuest is a terminal study tracker: set a countdown timer,
earn coins for every studied minute, and spend them on mini-games
and cosmetic items for your character.

Available commands:
  play     - Start a study session
  serve    - Start SSH server for remote sessions
  games    - List available mini-games
  stats    - Show study and game history

Examples:
  studyquest play
  studyquest play --db ./history.db
  studyquest serve --ssh :2222
  studyquest stats`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.studyquest/history.db", "Path to history database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(statsCmd)
}
