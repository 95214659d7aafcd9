package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/studyquest/internal/clock"
	"github.com/vovakirdan/studyquest/internal/config"
	"github.com/vovakirdan/studyquest/internal/platform/tui"
	"github.com/vovakirdan/studyquest/internal/session"
	"github.com/vovakirdan/studyquest/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a study session",
	Long: `Start an interactive study session.

From the home screen you can set a study timer, play mini-games with
your earned coins, or visit the character shop.

Controls:
  Up/Down/j/k   - Navigate
  Left/Right    - Adjust duration or bet
  Enter         - Select / confirm
  Esc/B         - Back
  Tab           - Stats (from home) / switch shop category
  Q/Ctrl+C      - Quit

Examples:
  studyquest play
  studyquest play --db ./history.db
  studyquest play --config ./my-config.yaml`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play requires an interactive terminal")
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open the history log
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		// Continue without history - the session still works
		store = nil
	}

	sess := session.New(cfg, clock.Real{}, flagSeed)

	runErr := tui.Run(sess, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
