package marblerace

import (
	"math/rand"
	"testing"
)

func TestDrawIsAlwaysAMarble(t *testing.T) {
	g := New()
	rng := rand.New(rand.NewSource(3))

	valid := map[string]bool{MarbleRed: true, MarbleBlue: true, MarbleGreen: true}
	seen := map[string]bool{}

	for i := 0; i < 300; i++ {
		outcome := g.Draw(rng)
		if !valid[outcome] {
			t.Fatalf("Draw() = %q, not a known marble", outcome)
		}
		seen[outcome] = true
	}
	if len(seen) != 3 {
		t.Errorf("300 draws hit %d marbles, want all 3", len(seen))
	}
}

func TestChoicesAreACopy(t *testing.T) {
	g := New()

	choices := g.Choices()
	choices[0] = "purple"
	if g.Choices()[0] != MarbleRed {
		t.Error("mutating the returned slice must not change the game's marbles")
	}
}

func TestSettle(t *testing.T) {
	g := New()

	win := g.Settle(20, MarbleBlue, MarbleBlue)
	if !win.Won || win.Delta != 20 {
		t.Errorf("winning bet: won=%v delta=%d, want true, +20", win.Won, win.Delta)
	}

	lose := g.Settle(20, MarbleBlue, MarbleGreen)
	if lose.Won || lose.Delta != -20 {
		t.Errorf("losing bet: won=%v delta=%d, want false, -20", lose.Won, lose.Delta)
	}
}
