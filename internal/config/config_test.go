package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/studyquest/internal/inventory"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	// Whatever file on disk wins, the result must still be valid and
	// carry the core economy settings.
	if err := cfg.Validate(); err != nil {
		t.Fatalf("loaded config invalid: %v", err)
	}
	if cfg.Economy.RewardPerMinute <= 0 || cfg.Economy.MinBet <= 0 {
		t.Errorf("economy = %+v, want positive reward and min bet", cfg.Economy)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
economy:
  reward_per_minute: 5
  min_bet: 20
  bet_step: 5
timer:
  min_minutes: 1
  max_minutes: 60
  default_minutes: 15
catalog:
  hats:
    - name: Beret
      glyph: "B"
      price: 75
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Economy.RewardPerMinute != 5 || cfg.Economy.MinBet != 20 {
		t.Errorf("economy = %+v, want reward 5, min bet 20", cfg.Economy)
	}
	if cfg.Timer.DefaultMinutes != 15 {
		t.Errorf("default_minutes = %d, want 15", cfg.Timer.DefaultMinutes)
	}
	if len(cfg.Catalog.Hats) != 1 || cfg.Catalog.Hats[0].Name != "Beret" {
		t.Errorf("hats = %+v, want the single Beret", cfg.Catalog.Hats)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() of a missing explicit path should fail")
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("economy:\n  reward_per_minute: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of an invalid explicit config should fail")
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero reward", func(c *Config) { c.Economy.RewardPerMinute = 0 }, "reward_per_minute"},
		{"zero min bet", func(c *Config) { c.Economy.MinBet = 0 }, "min_bet"},
		{"zero bet step", func(c *Config) { c.Economy.BetStep = 0 }, "bet_step"},
		{"zero min minutes", func(c *Config) { c.Timer.MinMinutes = 0 }, "min_minutes"},
		{"max below min", func(c *Config) { c.Timer.MaxMinutes = 0 }, "max_minutes"},
		{"default out of range", func(c *Config) { c.Timer.DefaultMinutes = 999 }, "default_minutes"},
		{"nameless item", func(c *Config) { c.Catalog.Hats[0].Name = "" }, "empty name"},
		{"reserved item name", func(c *Config) { c.Catalog.Hats[0].Name = inventory.DefaultItem }, "implicit"},
		{"free item", func(c *Config) { c.Catalog.Accessories[0].Price = 0 }, "price"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() accepted a broken config")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestBuildCatalog(t *testing.T) {
	cat := Default().BuildCatalog()

	hats := cat.Items(inventory.CategoryHat)
	if len(hats) != 3 {
		t.Fatalf("got %d hats, want 3", len(hats))
	}
	if hats[0].Name != "Cap" || hats[0].Price != 100 {
		t.Errorf("hats[0] = %+v, want Cap at 100", hats[0])
	}

	item, ok := cat.Find(inventory.CategoryAccessory, "Medal")
	if !ok || item.Price != 400 {
		t.Errorf("Find(Medal) = %+v %v, want the 400-coin medal", item, ok)
	}
}
