package storage

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	store.Close()
}

func TestLogAndListStudySessions(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.LogStudySession(25, 250); err != nil {
		t.Fatalf("LogStudySession() error: %v", err)
	}
	if _, err := store.LogStudySession(50, 500); err != nil {
		t.Fatal(err)
	}

	entries, err := store.StudySessions(10)
	if err != nil {
		t.Fatalf("StudySessions() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	// Newest first.
	if entries[0].Minutes != 50 || entries[0].Earned != 500 {
		t.Errorf("entries[0] = %+v, want the 50-minute session", entries[0])
	}
	if entries[1].Minutes != 25 || entries[1].Earned != 250 {
		t.Errorf("entries[1] = %+v, want the 25-minute session", entries[1])
	}
}

func TestStudySessionsLimit(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.LogStudySession(10, 100); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := store.StudySessions(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("got %d entries, want 3", len(entries))
	}
}

func TestTotalStudyMinutes(t *testing.T) {
	store := newTestStore(t)

	total, err := store.TotalStudyMinutes()
	if err != nil {
		t.Fatal(err)
	}
	if total != 0 {
		t.Errorf("empty log total = %d, want 0", total)
	}

	if _, err := store.LogStudySession(25, 250); err != nil {
		t.Fatal(err)
	}
	if _, err := store.LogStudySession(30, 300); err != nil {
		t.Fatal(err)
	}

	total, err = store.TotalStudyMinutes()
	if err != nil {
		t.Fatal(err)
	}
	if total != 55 {
		t.Errorf("total = %d, want 55", total)
	}
}

func TestGameRoundStats(t *testing.T) {
	store := newTestStore(t)

	rounds := []struct {
		game  string
		bet   int
		won   bool
		delta int
	}{
		{"parity", 10, true, 10},
		{"parity", 20, false, -20},
		{"parity", 30, true, 30},
		{"marblerace", 50, false, -50},
	}
	for _, r := range rounds {
		if _, err := store.LogGameRound(r.game, r.bet, r.won, r.delta); err != nil {
			t.Fatalf("LogGameRound() error: %v", err)
		}
	}

	stats, err := store.GameRoundStats()
	if err != nil {
		t.Fatalf("GameRoundStats() error: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d games, want 2", len(stats))
	}
	// Ordered by game ID.
	if stats[0].GameID != "marblerace" || stats[0].Rounds != 1 || stats[0].Wins != 0 || stats[0].Net != -50 {
		t.Errorf("stats[0] = %+v, want marblerace 1/0/-50", stats[0])
	}
	if stats[1].GameID != "parity" || stats[1].Rounds != 3 || stats[1].Wins != 2 || stats[1].Net != 20 {
		t.Errorf("stats[1] = %+v, want parity 3/2/+20", stats[1])
	}
}

func TestLogAndListPurchases(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.LogPurchase("hat", "Cap", 100); err != nil {
		t.Fatalf("LogPurchase() error: %v", err)
	}
	if _, err := store.LogPurchase("accessory", "Glasses", 80); err != nil {
		t.Fatal(err)
	}

	entries, err := store.Purchases()
	if err != nil {
		t.Fatalf("Purchases() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Item != "Glasses" || entries[0].Category != "accessory" || entries[0].Price != 80 {
		t.Errorf("entries[0] = %+v, want the Glasses purchase", entries[0])
	}
}
