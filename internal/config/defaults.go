package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// Default returns the hardcoded default configuration, used as the
// final fallback when no config file is found and the embedded YAML
// cannot be parsed.
func Default() Config {
	return Config{
		Economy: EconomyConfig{
			RewardPerMinute: 10,
			MinBet:          10,
			BetStep:         10,
		},
		Timer: TimerConfig{
			MinMinutes:     1,
			MaxMinutes:     180,
			DefaultMinutes: 25,
		},
		Catalog: CatalogConfig{
			Hats: []ItemConfig{
				{Name: "Cap", Glyph: "🧢", Price: 100},
				{Name: "Wizard Hat", Glyph: "🎩", Price: 250},
				{Name: "Crown", Glyph: "👑", Price: 500},
			},
			Accessories: []ItemConfig{
				{Name: "Glasses", Glyph: "👓", Price: 80},
				{Name: "Scarf", Glyph: "🧣", Price: 150},
				{Name: "Medal", Glyph: "🏅", Price: 400},
			},
		},
	}
}
