// Package tui provides the Bubble Tea integration for the study
// tracker: the screen views, input mapping, the countdown tick loop,
// and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per second while the countdown screen is shown.
type TickMsg time.Time

// countdownCmd returns a command that re-samples the clock at a 1 Hz
// cadence. The command is only re-issued while the countdown screen is
// active, so navigating away abandons the loop instead of blocking.
func countdownCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
