// Package numberguess implements the number-guess wager: the player
// picks a number in [1,10] and wins if the computer draws the same one.
package numberguess

import (
	"math/rand"
	"strconv"

	"github.com/vovakirdan/studyquest/internal/games"
)

// Game implements the number-guess wager.
type Game struct{}

// New creates a number-guess game.
func New() *Game {
	return &Game{}
}

func init() {
	games.Register("numberguess", func() games.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "numberguess"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Number Guess"
}

// Choices returns "1" through "10" in order.
func (g *Game) Choices() []string {
	choices := make([]string, 10)
	for i := range choices {
		choices[i] = strconv.Itoa(i + 1)
	}
	return choices
}

// Draw picks a number uniformly in [1,10], returned as its decimal string.
func (g *Game) Draw(rng *rand.Rand) string {
	return strconv.Itoa(rng.Intn(10) + 1)
}

// Settle resolves a round: exact match wins. Delta is +bet on a win,
// -bet on a loss.
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
