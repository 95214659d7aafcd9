package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/studyquest/internal/config"
	"github.com/vovakirdan/studyquest/internal/economy"
	"github.com/vovakirdan/studyquest/internal/games"
	"github.com/vovakirdan/studyquest/internal/inventory"
	"github.com/vovakirdan/studyquest/internal/session"
	"github.com/vovakirdan/studyquest/internal/storage"
	"github.com/vovakirdan/studyquest/internal/timer"
)

// gamePhase tracks the sub-state of the mini-game screen.
type gamePhase int

const (
	phasePickGame gamePhase = iota
	phaseBet
	phaseResult
)

// homeItems are the Home screen menu entries, in order.
var homeItems = []string{
	"Study timer",
	"Mini-games",
	"Character shop",
}

// SessionModel is the top-level Bubble Tea model. It holds one user's
// session and strictly follows the mutate-then-render contract: key
// handlers call into the session, View draws the result.
type SessionModel struct {
	sess  *session.Session
	store *storage.Store
	cfg   config.Config

	keys   KeyMap
	help   help.Model
	width  int
	height int

	homeCursor int
	status     string

	// Timer setup state
	duration int

	// Game screen state
	phase        gamePhase
	gameList     []games.Info
	gameCursor   int
	curGame      games.Game
	choiceCursor int
	bet          int
	lastRound    *games.Round

	// Shop screen state
	shopCat    int
	shopCursor int

	// Stats overlay
	statsOpen  bool
	statsTable table.Model
	statsText  string

	quitting bool
}

// NewSessionModel creates the top-level model for a session.
// The store may be nil; history logging is best-effort.
func NewSessionModel(sess *session.Session, store *storage.Store, cfg config.Config) SessionModel {
	return SessionModel{
		sess:     sess,
		store:    store,
		cfg:      cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		duration: cfg.Timer.DefaultMinutes,
		bet:      cfg.Economy.MinBet,
	}
}

// Init initializes the model.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick re-samples the countdown once per second. The tick is only
// re-armed while the countdown screen is shown and still running, so
// the loop cancels itself when the timer expires or the user leaves.
func (m SessionModel) handleTick() (tea.Model, tea.Cmd) {
	if m.sess.Screen() != session.ScreenTimerRunning {
		return m, nil
	}

	if m.sess.Timer().Remaining() == 0 {
		m.sess.Timer().Expire()
		return m, nil
	}

	return m, countdownCmd()
}

// handleKey routes keyboard input to the current screen.
func (m SessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.statsOpen {
		return m.handleStatsKey(msg)
	}

	m.status = ""

	switch m.sess.Screen() {
	case session.ScreenHome:
		return m.handleHomeKey(msg)
	case session.ScreenTimerSetup:
		return m.handleTimerSetupKey(msg)
	case session.ScreenTimerRunning:
		return m.handleTimerRunningKey(msg)
	case session.ScreenGame:
		return m.handleGameKey(msg)
	case session.ScreenShop:
		return m.handleShopKey(msg)
	}

	return m, nil
}

func (m SessionModel) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.homeCursor > 0 {
			m.homeCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.homeCursor < len(homeItems)-1 {
			m.homeCursor++
		}

	case key.Matches(msg, m.keys.Tab):
		m.openStats()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		switch m.homeCursor {
		case 0:
			if err := m.sess.Go(session.IntentStartTimerSetup); err == nil {
				m.duration = m.cfg.Timer.DefaultMinutes
			}
		case 1:
			err := m.sess.Go(session.IntentOpenGames)
			if errors.Is(err, economy.ErrInsufficientFunds) {
				m.status = fmt.Sprintf("You need at least %d coins to play. Study first!", m.cfg.Economy.MinBet)
				return m, nil
			}
			m.gameList = games.List()
			m.gameCursor = 0
			m.phase = phasePickGame
			m.lastRound = nil
		case 2:
			if err := m.sess.Go(session.IntentOpenShop); err == nil {
				m.shopCat = 0
				m.shopCursor = 0
			}
		}
	}

	return m, nil
}

func (m SessionModel) handleTimerSetupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := m.cfg.Timer

	switch {
	case key.Matches(msg, m.keys.Left):
		m.duration = clamp(m.duration-1, t.MinMinutes, t.MaxMinutes)

	case key.Matches(msg, m.keys.Right):
		m.duration = clamp(m.duration+1, t.MinMinutes, t.MaxMinutes)

	case key.Matches(msg, m.keys.Down):
		m.duration = clamp(m.duration-5, t.MinMinutes, t.MaxMinutes)

	case key.Matches(msg, m.keys.Up):
		m.duration = clamp(m.duration+5, t.MinMinutes, t.MaxMinutes)

	case key.Matches(msg, m.keys.Back):
		//nolint:errcheck // Cancel from setup is always a legal transition
		m.sess.Go(session.IntentCancel)

	case key.Matches(msg, m.keys.Select):
		if err := m.sess.BeginStudy(m.duration); err != nil {
			m.status = fmt.Sprintf("Cannot start: %v", err)
			return m, nil
		}
		return m, countdownCmd()
	}

	return m, nil
}

func (m SessionModel) handleTimerRunningKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Only the submit intent is legal here; everything else is ignored.
	if !key.Matches(msg, m.keys.Select) {
		return m, nil
	}

	earned, err := m.sess.SubmitReward()
	switch {
	case errors.Is(err, timer.ErrRewardPending):
		m.status = "Keep studying, the timer is still running."
	case err != nil:
		m.status = fmt.Sprintf("Cannot submit: %v", err)
	default:
		m.status = fmt.Sprintf("You earned %d coins for %d minutes of study!", earned, m.sess.Timer().DurationMinutes())
		if m.store != nil {
			//nolint:errcheck // Best-effort history logging
			m.store.LogStudySession(m.sess.Timer().DurationMinutes(), earned)
		}
	}

	return m, nil
}

func (m SessionModel) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phasePickGame:
		return m.handleGamePickKey(msg)
	case phaseBet:
		return m.handleGameBetKey(msg)
	case phaseResult:
		if key.Matches(msg, m.keys.Select) || key.Matches(msg, m.keys.Back) {
			m.phase = phasePickGame
			m.lastRound = nil
		}
	}
	return m, nil
}

func (m SessionModel) handleGamePickKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.gameCursor > 0 {
			m.gameCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.gameCursor < len(m.gameList)-1 {
			m.gameCursor++
		}

	case key.Matches(msg, m.keys.Back):
		//nolint:errcheck // ReturnHome from the game screen is always legal
		m.sess.Go(session.IntentReturnHome)

	case key.Matches(msg, m.keys.Select):
		if len(m.gameList) == 0 {
			return m, nil
		}
		g, err := games.Create(m.gameList[m.gameCursor].ID)
		if err != nil {
			m.status = fmt.Sprintf("Cannot open game: %v", err)
			return m, nil
		}
		m.curGame = g
		m.choiceCursor = 0
		m.bet = m.clampBet(m.bet)
		m.phase = phaseBet
	}

	return m, nil
}

func (m SessionModel) handleGameBetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	choices := m.curGame.Choices()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.choiceCursor > 0 {
			m.choiceCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.choiceCursor < len(choices)-1 {
			m.choiceCursor++
		}

	case key.Matches(msg, m.keys.Left):
		m.bet = m.clampBet(m.bet - m.cfg.Economy.BetStep)

	case key.Matches(msg, m.keys.Right):
		m.bet = m.clampBet(m.bet + m.cfg.Economy.BetStep)

	case key.Matches(msg, m.keys.Back):
		m.phase = phasePickGame

	case key.Matches(msg, m.keys.Select):
		round, err := m.sess.PlayRound(m.curGame.ID(), m.bet, choices[m.choiceCursor])
		if err != nil {
			m.status = fmt.Sprintf("Cannot play: %v", err)
			return m, nil
		}
		m.lastRound = &round
		m.phase = phaseResult
		m.bet = m.clampBet(m.bet)
		if m.store != nil {
			//nolint:errcheck // Best-effort history logging
			m.store.LogGameRound(round.GameID, round.Bet, round.Won, round.Delta)
		}
	}

	return m, nil
}

func (m SessionModel) handleShopKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cat := inventory.Categories[m.shopCat]
	rows := m.shopRows(cat)

	switch {
	case key.Matches(msg, m.keys.Tab):
		m.shopCat = (m.shopCat + 1) % len(inventory.Categories)
		m.shopCursor = 0

	case key.Matches(msg, m.keys.Up):
		if m.shopCursor > 0 {
			m.shopCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.shopCursor < len(rows)-1 {
			m.shopCursor++
		}

	case key.Matches(msg, m.keys.Back):
		//nolint:errcheck // ReturnHome from the shop is always legal
		m.sess.Go(session.IntentReturnHome)

	case key.Matches(msg, m.keys.Select):
		name := rows[m.shopCursor]
		if m.sess.Inventory().Owns(cat, name) {
			if err := m.sess.EquipItem(cat, name); err != nil {
				m.status = fmt.Sprintf("Cannot equip: %v", err)
				return m, nil
			}
			m.status = fmt.Sprintf("Equipped %s.", name)
			return m, nil
		}

		item, _ := m.sess.Inventory().Catalog().Find(cat, name)
		err := m.sess.Purchase(cat, name)
		switch {
		case errors.Is(err, economy.ErrInsufficientFunds):
			m.status = fmt.Sprintf("Not enough coins for %s (%d).", name, item.Price)
		case err != nil:
			m.status = fmt.Sprintf("Cannot buy: %v", err)
		default:
			m.status = fmt.Sprintf("Bought %s for %d coins!", name, item.Price)
			if m.store != nil {
				//nolint:errcheck // Best-effort history logging
				m.store.LogPurchase(string(cat), name, item.Price)
			}
		}
	}

	return m, nil
}

// shopRows returns the selectable item names for a shop category:
// the free default item first, then the catalog in order.
func (m SessionModel) shopRows(cat inventory.Category) []string {
	rows := []string{inventory.DefaultItem}
	for _, it := range m.sess.Inventory().Catalog().Items(cat) {
		rows = append(rows, it.Name)
	}
	return rows
}

// clampBet keeps the wager within the bet floor and the current balance.
func (m SessionModel) clampBet(bet int) int {
	if max := m.sess.Ledger().Balance(); bet > max {
		bet = max
	}
	if bet < m.cfg.Economy.MinBet {
		bet = m.cfg.Economy.MinBet
	}
	return bet
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Run starts the Bubble Tea program for a local session.
func Run(sess *session.Session, store *storage.Store, cfg config.Config) error {
	model := NewSessionModel(sess, store, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
