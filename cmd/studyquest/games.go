package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/studyquest/internal/games"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List all available mini-games",
	Long:  `Shows a list of all mini-games registered in StudyQuest.`,
	Run:   runGames,
}

func runGames(cmd *cobra.Command, args []string) {
	list := games.List()

	if len(list) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available mini-games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range list {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print games
	for _, g := range list {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'studyquest play' and open the games screen to play.")
}
