package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/studyquest/internal/economy"
	"github.com/vovakirdan/studyquest/internal/inventory"
	"github.com/vovakirdan/studyquest/internal/session"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	faintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	winStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	loseStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	countdownText = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

// View renders the current screen. All state was mutated before this
// call; View only projects it.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.statsOpen {
		return m.viewStats()
	}

	var body string
	switch m.sess.Screen() {
	case session.ScreenHome:
		body = m.viewHome()
	case session.ScreenTimerSetup:
		body = m.viewTimerSetup()
	case session.ScreenTimerRunning:
		body = m.viewTimerRunning()
	case session.ScreenGame:
		body = m.viewGame()
	case session.ScreenShop:
		body = m.viewShop()
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString(body)
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// viewHeader shows the balance and cumulative study time on every screen.
func (m SessionModel) viewHeader() string {
	led := m.sess.Ledger()
	return fmt.Sprintf("%s   %s\n\n",
		titleStyle.Render("S T U D Y Q U E S T"),
		faintStyle.Render(fmt.Sprintf("%d coins | studied %s",
			led.Balance(), economy.FormatStudyTime(led.StudyMinutes()))),
	)
}

func (m SessionModel) viewHome() string {
	var b strings.Builder
	b.WriteString("Study hard, get rich!\n\n")

	for i, item := range homeItems {
		line := "  " + item
		if i == m.homeCursor {
			line = cursorStyle.Render("> " + item)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(faintStyle.Render("tab: stats"))
	b.WriteString("\n")
	return b.String()
}

func (m SessionModel) viewTimerSetup() string {
	var b strings.Builder
	b.WriteString("How long will you study?\n\n")
	b.WriteString(fmt.Sprintf("    %s minutes\n\n",
		cursorStyle.Render(fmt.Sprintf("%3d", m.duration))))
	b.WriteString(faintStyle.Render(fmt.Sprintf(
		"left/right: +/-1   up/down: +/-5   (1 minute = %d coins)",
		m.cfg.Economy.RewardPerMinute)))
	b.WriteString("\n\n")
	b.WriteString("enter: start studying   esc: back home\n")
	return b.String()
}

func (m SessionModel) viewTimerRunning() string {
	var b strings.Builder

	if m.sess.Timer().Active() {
		remaining := m.sess.Timer().Remaining()
		mins := int(remaining / time.Minute)
		secs := int(remaining/time.Second) % 60
		b.WriteString("Studying hard...\n\n")
		b.WriteString(fmt.Sprintf("    %s\n\n",
			countdownText.Render(fmt.Sprintf("%02d:%02d", mins, secs))))
		b.WriteString(faintStyle.Render("The reward unlocks when the timer runs out."))
		b.WriteString("\n")
		return b.String()
	}

	earned := m.sess.Timer().DurationMinutes() * m.cfg.Economy.RewardPerMinute
	b.WriteString(winStyle.Render("Time's up! Well done."))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Press enter to claim %d coins.\n", earned))
	return b.String()
}

func (m SessionModel) viewGame() string {
	switch m.phase {
	case phaseBet:
		return m.viewGameBet()
	case phaseResult:
		return m.viewGameResult()
	default:
		return m.viewGamePick()
	}
}

func (m SessionModel) viewGamePick() string {
	var b strings.Builder
	b.WriteString("Pick a mini-game:\n\n")

	for i, info := range m.gameList {
		line := "  " + info.Title
		if i == m.gameCursor {
			line = cursorStyle.Render("> " + info.Title)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("enter: play   esc: back home\n")
	return b.String()
}

func (m SessionModel) viewGameBet() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.curGame.Title()))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Your bet: %s coins  %s\n\n",
		cursorStyle.Render(fmt.Sprintf("%d", m.bet)),
		faintStyle.Render("(left/right to adjust)")))

	for i, c := range m.curGame.Choices() {
		line := "  " + c
		if i == m.choiceCursor {
			line = cursorStyle.Render("> " + c)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("enter: play!   esc: pick another game\n")
	return b.String()
}

func (m SessionModel) viewGameResult() string {
	round := m.lastRound
	if round == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("The result: %s\n\n", cursorStyle.Render(round.Outcome)))

	if round.Won {
		b.WriteString(winStyle.Render(fmt.Sprintf("You won %d coins!", round.Bet)))
	} else {
		b.WriteString(loseStyle.Render(fmt.Sprintf("You lost %d coins.", round.Bet)))
	}

	b.WriteString("\n\n")
	b.WriteString("enter: play again\n")
	return b.String()
}

func (m SessionModel) viewShop() string {
	inv := m.sess.Inventory()
	cat := inventory.Categories[m.shopCat]

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Your character: %s %s\n\n",
		inv.Visual(inventory.CategoryHat), inv.Visual(inventory.CategoryAccessory)))

	for i, c := range inventory.Categories {
		label := string(c)
		if i == m.shopCat {
			label = cursorStyle.Render("[" + label + "]")
		} else {
			label = faintStyle.Render(" " + label + " ")
		}
		b.WriteString(label)
		b.WriteString(" ")
	}
	b.WriteString(faintStyle.Render("  (tab to switch)"))
	b.WriteString("\n\n")

	for i, name := range m.shopRows(cat) {
		marker := "  "
		if i == m.shopCursor {
			marker = cursorStyle.Render("> ")
		}
		b.WriteString(marker)
		b.WriteString(m.shopItemLine(cat, name))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("enter: buy/equip   esc: back home\n")
	return b.String()
}

// shopItemLine formats one shop row with owned/equipped/price markers.
func (m SessionModel) shopItemLine(cat inventory.Category, name string) string {
	inv := m.sess.Inventory()

	if name == inventory.DefaultItem {
		line := name + " (free)"
		if inv.Equipped(cat) == name {
			line += " [equipped]"
		}
		return line
	}

	item, _ := inv.Catalog().Find(cat, name)
	line := fmt.Sprintf("%s %s", item.Glyph, item.Name)

	switch {
	case inv.Equipped(cat) == name:
		line += " [equipped]"
	case inv.Owns(cat, name):
		line += " [owned]"
	case item.Price > m.sess.Ledger().Balance():
		line += faintStyle.Render(fmt.Sprintf(" - %d coins (too expensive)", item.Price))
	default:
		line += fmt.Sprintf(" - %d coins", item.Price)
	}

	return line
}
