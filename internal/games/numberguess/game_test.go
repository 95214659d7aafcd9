package numberguess

import (
	"math/rand"
	"strconv"
	"testing"
)

func TestChoices(t *testing.T) {
	g := New()

	choices := g.Choices()
	if len(choices) != 10 {
		t.Fatalf("len(Choices()) = %d, want 10", len(choices))
	}
	for i, c := range choices {
		if c != strconv.Itoa(i+1) {
			t.Errorf("Choices()[%d] = %q, want %q", i, c, strconv.Itoa(i+1))
		}
	}
}

func TestDrawRange(t *testing.T) {
	g := New()
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 200; i++ {
		outcome := g.Draw(rng)
		n, err := strconv.Atoi(outcome)
		if err != nil {
			t.Fatalf("Draw() returned non-numeric outcome %q", outcome)
		}
		if n < 1 || n > 10 {
			t.Fatalf("Draw() = %d, want in [1,10]", n)
		}
	}
}

func TestSettleExactMatchWins(t *testing.T) {
	g := New()

	round := g.Settle(40, "7", "7")
	if !round.Won {
		t.Error("matching guess should win")
	}
	if round.Delta != 40 {
		t.Errorf("Delta = %d, want +40", round.Delta)
	}
}

func TestSettleMissLoses(t *testing.T) {
	g := New()

	round := g.Settle(40, "7", "3")
	if round.Won {
		t.Error("mismatched guess should lose")
	}
	if round.Delta != -40 {
		t.Errorf("Delta = %d, want -40", round.Delta)
	}
	if round.Outcome != "3" {
		t.Errorf("Outcome = %q, want the drawn number", round.Outcome)
	}
}
