// Package parity implements the odd/even wager: the computer draws a
// number in [1,100] and the player bets on its parity.
package parity

import (
	"math/rand"
	"strconv"

	"github.com/vovakirdan/studyquest/internal/games"
)

const (
	// ChoiceOdd and ChoiceEven are the two selectable outcomes.
	ChoiceOdd  = "odd"
	ChoiceEven = "even"
)

// Game implements the parity wager.
type Game struct{}

// New creates a parity game.
func New() *Game {
	return &Game{}
}

func init() {
	games.Register("parity", func() games.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "parity"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Odd or Even"
}

// Choices returns the parity options.
func (g *Game) Choices() []string {
	return []string{ChoiceOdd, ChoiceEven}
}

// Draw picks a number uniformly in [1,100], returned as its decimal string.
func (g *Game) Draw(rng *rand.Rand) string {
	return strconv.Itoa(rng.Intn(100) + 1)
}

// Settle resolves a round: the player wins when the drawn number's
// parity matches their choice. Delta is +bet on a win, -bet on a loss.
func (g *Game) Settle(bet int, choice, outcome string) games.Round {
	n, _ := strconv.Atoi(outcome)
	result := ChoiceEven
	if n%2 != 0 {
		result = ChoiceOdd
	}

	won := choice == result
	delta := -bet
	if won {
		delta = bet
	}

	return games.Round{
		GameID:  g.ID(),
		Bet:     bet,
		Choice:  choice,
		Outcome: outcome + " (" + result + ")",
		Won:     won,
		Delta:   delta,
	}
}
