// Package economy holds the session currency balance and the cumulative
// study-time counter, with the invariants every mutation must respect.
package economy

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientFunds is returned when a debit or negative delta
	// would take the balance below zero.
	ErrInsufficientFunds = errors.New("economy: insufficient funds")

	// ErrInvalidAmount is returned for zero or negative amounts where a
	// positive amount is required.
	ErrInvalidAmount = errors.New("economy: amount must be positive")
)

// Ledger tracks the currency balance and cumulative study minutes for
// one session. Balance never goes negative; study minutes only grow.
type Ledger struct {
	balance      int
	studyMinutes int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Balance returns the current currency balance.
func (l *Ledger) Balance() int {
	return l.balance
}

// StudyMinutes returns the cumulative studied minutes.
func (l *Ledger) StudyMinutes() int {
	return l.studyMinutes
}

// Credit adds amount to the balance. Amount must be positive.
func (l *Ledger) Credit(amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	l.balance += amount
	return nil
}

// Debit removes amount from the balance. Amount must be positive and
// must not exceed the balance.
func (l *Ledger) Debit(amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return l.Apply(-amount)
}

// Apply adds a signed delta to the balance. A delta that would leave
// the balance negative is rejected and the ledger is unchanged.
func (l *Ledger) Apply(delta int) error {
	if l.balance+delta < 0 {
		return ErrInsufficientFunds
	}
	l.balance += delta
	return nil
}

// AddStudyMinutes adds m studied minutes. M must be positive; the
// counter is monotonically non-decreasing.
func (l *Ledger) AddStudyMinutes(m int) error {
	if m <= 0 {
		return ErrInvalidAmount
	}
	l.studyMinutes += m
	return nil
}

// FormatStudyTime renders a minute count as "Xh Ym" for display.
func FormatStudyTime(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
