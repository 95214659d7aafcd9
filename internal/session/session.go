// Package session owns one user's full state: the current screen, the
// currency ledger, the study timer, and the cosmetic inventory. Every
// mutation goes through an intent-shaped operation here; the
// presentation layer only renders the result.
package session

import (
	"errors"
	"math/rand"
	"time"

	"github.com/vovakirdan/studyquest/internal/clock"
	"github.com/vovakirdan/studyquest/internal/config"
	"github.com/vovakirdan/studyquest/internal/economy"
	"github.com/vovakirdan/studyquest/internal/games"
	"github.com/vovakirdan/studyquest/internal/inventory"
	"github.com/vovakirdan/studyquest/internal/timer"
)

var (
	// ErrInvalidTransition is returned for an intent that is not legal
	// on the current screen. Non-fatal: the screen is unchanged and the
	// caller may ignore it.
	ErrInvalidTransition = errors.New("session: intent not valid for current screen")

	// ErrBetTooSmall is returned for a wager below the configured floor.
	ErrBetTooSmall = errors.New("session: bet below minimum")
)

// Session is one user's isolated state. Single-threaded by design: one
// intent is processed to completion before the next (per-connection
// serialization is the bubbletea event loop's job).
type Session struct {
	cfg    config.Config
	screen Screen

	ledger    *economy.Ledger
	timer     *timer.Engine
	inventory *inventory.Store
	rng       *rand.Rand

	lastRound *games.Round
}

// New creates a fresh session on the Home screen with an empty ledger.
// Seed 0 means seed from the current time.
func New(cfg config.Config, clk clock.Clock, seed int64) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Session{
		cfg:       cfg,
		screen:    ScreenHome,
		ledger:    economy.NewLedger(),
		timer:     timer.NewEngine(clk, cfg.Timer.MinMinutes, cfg.Timer.MaxMinutes, cfg.Economy.RewardPerMinute),
		inventory: inventory.NewStore(cfg.BuildCatalog()),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Screen returns the current screen.
func (s *Session) Screen() Screen {
	return s.screen
}

// Config returns the session configuration.
func (s *Session) Config() config.Config {
	return s.cfg
}

// Ledger returns the session's economy ledger.
func (s *Session) Ledger() *economy.Ledger {
	return s.ledger
}

// Timer returns the session's countdown engine.
func (s *Session) Timer() *timer.Engine {
	return s.timer
}

// Inventory returns the session's cosmetic inventory.
func (s *Session) Inventory() *inventory.Store {
	return s.inventory
}

// LastRound returns the most recent resolved game round, or nil.
func (s *Session) LastRound() *games.Round {
	return s.lastRound
}

// Go applies a navigation intent. Illegal intents return
// ErrInvalidTransition and leave the screen unchanged. Opening the
// games screen additionally requires a balance that can cover the
// minimum bet; otherwise the games are blocked.
func (s *Session) Go(intent Intent) error {
	target, ok := transitions[s.screen][intent]
	if !ok {
		return ErrInvalidTransition
	}
	if intent == IntentOpenGames && s.ledger.Balance() < s.cfg.Economy.MinBet {
		return economy.ErrInsufficientFunds
	}
	s.screen = target
	return nil
}

// BeginStudy starts the countdown and moves TimerSetup -> TimerRunning.
// An out-of-range duration is rejected at this boundary; the screen is
// unchanged on failure.
func (s *Session) BeginStudy(minutes int) error {
	if s.screen != ScreenTimerSetup {
		return ErrInvalidTransition
	}
	if err := s.timer.Start(minutes); err != nil {
		return err
	}
	s.screen = ScreenTimerRunning
	return nil
}

// SubmitReward claims the reward for an expired countdown and moves
// TimerRunning -> Home. Before expiry it returns timer.ErrRewardPending
// and stays put. A double claim cannot double-credit: the engine tracks
// a claim flag reset only by the next start.
func (s *Session) SubmitReward() (int, error) {
	if s.screen != ScreenTimerRunning {
		return 0, ErrInvalidTransition
	}
	s.timer.Expire()
	earned, err := s.timer.ClaimReward(s.ledger)
	if err != nil {
		return 0, err
	}
	s.screen = ScreenHome
	return earned, nil
}

// PlayRound resolves one wager on the Game screen as a single atomic
// step: validate the bet, draw, settle, apply the delta. The balance
// changes by exactly plus or minus the bet, never partially, and never
// below zero.
func (s *Session) PlayRound(gameID string, bet int, choice string) (games.Round, error) {
	if s.screen != ScreenGame {
		return games.Round{}, ErrInvalidTransition
	}
	if bet < s.cfg.Economy.MinBet {
		return games.Round{}, ErrBetTooSmall
	}
	if bet > s.ledger.Balance() {
		return games.Round{}, economy.ErrInsufficientFunds
	}

	g, err := games.Create(gameID)
	if err != nil {
		return games.Round{}, err
	}

	round := games.Play(g, bet, choice, s.rng)
	if err := s.ledger.Apply(round.Delta); err != nil {
		// Unreachable given the bet <= balance check, kept as the
		// ledger's own floor-at-zero guarantee.
		return games.Round{}, err
	}
	s.lastRound = &round
	return round, nil
}

// Purchase buys a catalog item on the Shop screen.
func (s *Session) Purchase(cat inventory.Category, name string) error {
	if s.screen != ScreenShop {
		return ErrInvalidTransition
	}
	return s.inventory.Purchase(cat, name, s.ledger)
}

// EquipItem equips an owned item on the Shop screen.
func (s *Session) EquipItem(cat inventory.Category, name string) error {
	if s.screen != ScreenShop {
		return ErrInvalidTransition
	}
	return s.inventory.Equip(cat, name)
}

// Snapshot is a read-only projection of the session for rendering.
type Snapshot struct {
	Screen          Screen
	Balance         int
	StudyMinutes    int
	TimerActive     bool
	TimerExpired    bool
	Remaining       time.Duration
	DurationMinutes int
}

// Snapshot captures the current session state. The core never renders;
// the presentation layer draws from this after each mutation.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Screen:          s.screen,
		Balance:         s.ledger.Balance(),
		StudyMinutes:    s.ledger.StudyMinutes(),
		TimerActive:     s.timer.Active(),
		TimerExpired:    s.timer.Expired(),
		Remaining:       s.timer.Remaining(),
		DurationMinutes: s.timer.DurationMinutes(),
	}
}
