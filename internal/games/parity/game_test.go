package parity

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

func TestDrawRange(t *testing.T) {
	g := New()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		outcome := g.Draw(rng)
		n, err := strconv.Atoi(outcome)
		if err != nil {
			t.Fatalf("Draw() returned non-numeric outcome %q", outcome)
		}
		if n < 1 || n > 100 {
			t.Fatalf("Draw() = %d, want in [1,100]", n)
		}
	}
}

func TestSettleWin(t *testing.T) {
	g := New()

	round := g.Settle(50, ChoiceOdd, "57")
	if !round.Won {
		t.Error("Odd choice against draw 57 should win")
	}
	if round.Delta != 50 {
		t.Errorf("Delta = %d, want +50", round.Delta)
	}
}

func TestSettleLose(t *testing.T) {
	g := New()

	// Draw 4 is even: an odd bet loses exactly the stake
	round := g.Settle(10, ChoiceOdd, "4")
	if round.Won {
		t.Error("Odd choice against draw 4 should lose")
	}
	if round.Delta != -10 {
		t.Errorf("Delta = %d, want -10", round.Delta)
	}
}

func TestSettleDeltaIsExactlyBet(t *testing.T) {
	g := New()

	for _, tt := range []struct {
		choice  string
		outcome string
	}{
		{ChoiceOdd, "1"},
		{ChoiceOdd, "2"},
		{ChoiceEven, "99"},
		{ChoiceEven, "100"},
	} {
		round := g.Settle(30, tt.choice, tt.outcome)
		if round.Delta != 30 && round.Delta != -30 {
			t.Errorf("Settle(%s vs %s) delta = %d, want +30 or -30", tt.choice, tt.outcome, round.Delta)
		}
		if round.Won != (round.Delta > 0) {
			t.Errorf("Settle(%s vs %s): won=%v but delta=%d", tt.choice, tt.outcome, round.Won, round.Delta)
		}
	}
}

func TestSettleOutcomeNamesParity(t *testing.T) {
	g := New()

	round := g.Settle(10, ChoiceEven, "42")
	if !strings.Contains(round.Outcome, "42") || !strings.Contains(round.Outcome, ChoiceEven) {
		t.Errorf("Outcome %q should mention the draw and its parity", round.Outcome)
	}
}
