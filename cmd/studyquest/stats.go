package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/studyquest/internal/economy"
	"github.com/vovakirdan/studyquest/internal/storage"
)

var flagStatsLimit int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study and game history",
	Long: `Display the logged study sessions, per-game betting results,
and shop purchases from the history database.

Examples:
  studyquest stats
  studyquest stats --limit 20`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Number of recent study sessions to show")
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	total, err := store.TotalStudyMinutes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("All-time study: %s\n", economy.FormatStudyTime(total))
	fmt.Println()

	sessions, err := store.StudySessions(flagStatsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
		os.Exit(1)
	}

	if len(sessions) == 0 {
		fmt.Println("No study sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'studyquest play' to start your first session!")
		return
	}

	fmt.Println("Recent study sessions:")
	fmt.Printf("  %-8s  %-8s  %s\n", "Minutes", "Earned", "Date")
	fmt.Printf("  %-8s  %-8s  %s\n", "-------", "------", "----")
	for _, s := range sessions {
		dateStr := s.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-8d  %-8d  %s\n", s.Minutes, s.Earned, dateStr)
	}

	stats, err := store.GameRoundStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
		os.Exit(1)
	}

	if len(stats) > 0 {
		fmt.Println()
		fmt.Println("Mini-game results:")
		fmt.Printf("  %-14s  %-8s  %-6s  %s\n", "Game", "Rounds", "Wins", "Net")
		fmt.Printf("  %-14s  %-8s  %-6s  %s\n", "----", "------", "----", "---")
		for _, g := range stats {
			fmt.Printf("  %-14s  %-8d  %-6d  %+d\n", g.GameID, g.Rounds, g.Wins, g.Net)
		}
	}

	purchases, err := store.Purchases()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
		os.Exit(1)
	}

	if len(purchases) > 0 {
		fmt.Println()
		fmt.Println("Purchases:")
		for _, p := range purchases {
			fmt.Printf("  %s %s (%d coins) at %s\n",
				p.Category, p.Item, p.Price, p.CreatedAt.Format("2006-01-02 15:04"))
		}
	}
}
