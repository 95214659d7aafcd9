// Package games defines the wager mini-game interface and a global
// registry of game factories. Games register themselves in init()
// functions, so the platform discovers them without hardcoded imports.
package games

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
)

// Round is the result of one resolved wager: the draw, whether the
// player won, and the signed balance delta (always +bet or -bet).
type Round struct {
	GameID  string
	Bet     int
	Choice  string
	Outcome string
	Won     bool
	Delta   int
}

// Game is one wager variant. Draw and Settle are split so the outcome
// comparison stays a pure function that tests can feed fixed draws.
// Bet validation (floor and balance) is the caller's responsibility.
type Game interface {
	// ID returns a unique identifier (e.g. "parity").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Choices returns the options the player picks from, in display order.
	Choices() []string

	// Draw produces the RNG outcome token for one round.
	Draw(rng *rand.Rand) string

	// Settle resolves a round from a bet, player choice, and draw.
	// Pure: no state, no RNG, no balance access.
	Settle(bet int, choice, outcome string) Round
}

// Play draws and settles one round as a single step.
func Play(g Game, bet int, choice string, rng *rand.Rand) Round {
	return g.Settle(bet, choice, g.Draw(rng))
}

// Info contains metadata about a registered game.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry. Typically called from a
// game's init() function. Panics if the ID is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("games: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("games: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
