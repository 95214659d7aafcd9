// Package marblerace implements the marble-race wager: three marbles
// race, one wins uniformly at random, and the player bets on the winner.
package marblerace

import (
	"math/rand"

	"github.com/vovakirdan/studyquest/internal/games"
)

// Marble labels, in display order.
const (
	MarbleRed   = "red"
	MarbleBlue  = "blue"
	MarbleGreen = "green"
)

var marbles = []string{MarbleRed, MarbleBlue, MarbleGreen}

// Game implements the marble-race wager.
type Game struct{}

// New creates a marble-race game.
func New() *Game {
	return &Game{}
}

func init() {
	games.Register("marblerace", func() games.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "marblerace"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Marble Race"
}

// Choices returns the three marble labels.
func (g *Game) Choices() []string {
	out := make([]string, len(marbles))
	copy(out, marbles)
	return out
}

// Draw picks the winning marble uniformly.
func (g *Game) Draw(rng *rand.Rand) string {
	return marbles[rng.Intn(len(marbles))]
}

// Settle resolves a round: picking the winning marble wins. Delta is
// +bet on a win, -bet on a loss.
func (g *Game) Settle(bet int, choice, outcome string) games.Round {
	won := choice == outcome
	delta := -bet
	if won {
		delta = bet
	}

	return games.Round{
		GameID:  g.ID(),
		Bet:     bet,
		Choice:  choice,
		Outcome: outcome,
		Won:     won,
		Delta:   delta,
	}
}
