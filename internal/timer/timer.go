// Package timer implements the countdown engine for study sessions:
// start, remaining-time queries, idempotent expiry, and a claim-once
// reward credit.
package timer

import (
	"errors"
	"time"

	"github.com/vovakirdan/studyquest/internal/clock"
	"github.com/vovakirdan/studyquest/internal/economy"
)

var (
	// ErrInvalidDuration is returned when a requested duration is
	// outside the configured bounds.
	ErrInvalidDuration = errors.New("timer: duration out of range")

	// ErrRewardPending is returned when a reward is claimed before the
	// countdown has run out, or before any countdown was started.
	ErrRewardPending = errors.New("timer: countdown still running")

	// ErrAlreadyClaimed is returned when the reward for the current
	// cycle was already credited.
	ErrAlreadyClaimed = errors.New("timer: reward already claimed")
)

// Engine tracks a single countdown cycle. A new Start overwrites any
// previous cycle, claimed or not.
type Engine struct {
	clk             clock.Clock
	minMinutes      int
	maxMinutes      int
	rewardPerMinute int

	durationMinutes int
	endAt           time.Time
	active          bool
	claimed         bool
}

// NewEngine creates a countdown engine with the given duration bounds
// (in minutes) and reward rate per studied minute.
func NewEngine(clk clock.Clock, minMinutes, maxMinutes, rewardPerMinute int) *Engine {
	return &Engine{
		clk:             clk,
		minMinutes:      minMinutes,
		maxMinutes:      maxMinutes,
		rewardPerMinute: rewardPerMinute,
	}
}

// Start begins a new countdown cycle of the given duration, replacing
// any previous cycle and re-arming the reward.
func (e *Engine) Start(durationMinutes int) error {
	if durationMinutes < e.minMinutes || durationMinutes > e.maxMinutes {
		return ErrInvalidDuration
	}
	e.durationMinutes = durationMinutes
	e.endAt = e.clk.Now().Add(time.Duration(durationMinutes) * time.Minute)
	e.active = true
	e.claimed = false
	return nil
}

// Remaining returns the time left on the current countdown, floored at
// zero. Pure query; scheduling the 1-second re-poll is the caller's job.
func (e *Engine) Remaining() time.Duration {
	if e.durationMinutes == 0 {
		return 0
	}
	r := e.endAt.Sub(e.clk.Now())
	if r < 0 {
		return 0
	}
	return r
}

// Expire deactivates the countdown once its remaining time has reached
// zero. Idempotent; calling it early or repeatedly has no effect.
func (e *Engine) Expire() {
	if !e.active {
		return
	}
	if e.Remaining() > 0 {
		return
	}
	e.active = false
}

// Active reports whether a countdown is currently running.
func (e *Engine) Active() bool {
	return e.active
}

// Expired reports whether the current cycle has run out and is awaiting
// its reward claim.
func (e *Engine) Expired() bool {
	return e.durationMinutes > 0 && !e.active
}

// DurationMinutes returns the duration of the current cycle, or zero if
// none was started.
func (e *Engine) DurationMinutes() int {
	return e.durationMinutes
}

// ClaimReward credits the reward for a completed cycle to the ledger:
// duration times the per-minute rate, plus the studied minutes counter.
// It can be called at most once per cycle; the claim flag is reset only
// by the next Start.
func (e *Engine) ClaimReward(ledger *economy.Ledger) (int, error) {
	if e.durationMinutes == 0 || e.active {
		return 0, ErrRewardPending
	}
	if e.claimed {
		return 0, ErrAlreadyClaimed
	}

	earned := e.durationMinutes * e.rewardPerMinute
	if err := ledger.Credit(earned); err != nil {
		return 0, err
	}
	if err := ledger.AddStudyMinutes(e.durationMinutes); err != nil {
		return 0, err
	}
	e.claimed = true
	return earned, nil
}
