package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/studyquest/internal/economy"
)

// openStats builds the stats overlay from the history log. With no
// store configured the overlay just says so.
func (m *SessionModel) openStats() {
	m.statsOpen = true
	m.statsText = ""

	if m.store == nil {
		m.statsText = "No history database configured."
		return
	}

	total, err := m.store.TotalStudyMinutes()
	if err != nil {
		m.statsText = fmt.Sprintf("Cannot read history: %v", err)
		return
	}
	m.statsText = fmt.Sprintf("All-time study: %s", economy.FormatStudyTime(total))

	stats, err := m.store.GameRoundStats()
	if err != nil {
		m.statsText = fmt.Sprintf("Cannot read history: %v", err)
		return
	}

	columns := []table.Column{
		{Title: "Game", Width: 16},
		{Title: "Rounds", Width: 8},
		{Title: "Wins", Width: 8},
		{Title: "Net", Width: 8},
	}

	rows := make([]table.Row, 0, len(stats))
	for _, g := range stats {
		rows = append(rows, table.Row{
			g.GameID,
			fmt.Sprintf("%d", g.Rounds),
			fmt.Sprintf("%d", g.Wins),
			fmt.Sprintf("%+d", g.Net),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(min(len(rows)+1, 12)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("212"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("212"))
	t.SetStyles(styles)

	m.statsTable = t
}

// handleStatsKey drives the stats overlay: back closes it, everything
// else scrolls the table.
func (m SessionModel) handleStatsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Tab) {
		m.statsOpen = false
		return m, nil
	}

	var cmd tea.Cmd
	m.statsTable, cmd = m.statsTable.Update(msg)
	return m, cmd
}

// viewStats renders the stats overlay.
func (m SessionModel) viewStats() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Your history"))
	b.WriteString("\n\n")
	b.WriteString(m.statsText)
	b.WriteString("\n\n")
	if m.store != nil {
		b.WriteString(m.statsTable.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("esc: back"))
	b.WriteString("\n")
	return b.String()
}
