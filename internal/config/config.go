// Package config provides YAML-based settings for the study tracker:
// reward rates, bet limits, timer bounds, and the cosmetic item catalog.
package config

import (
	"fmt"

	"github.com/vovakirdan/studyquest/internal/inventory"
)

// Config is the full application configuration.
type Config struct {
	Economy EconomyConfig `yaml:"economy"`
	Timer   TimerConfig   `yaml:"timer"`
	Catalog CatalogConfig `yaml:"catalog"`
}

// EconomyConfig defines the reward and betting parameters.
type EconomyConfig struct {
	RewardPerMinute int `yaml:"reward_per_minute"` // Currency earned per studied minute
	MinBet          int `yaml:"min_bet"`           // Smallest allowed wager
	BetStep         int `yaml:"bet_step"`          // Increment for bet adjustment in the UI
}

// TimerConfig defines the study countdown bounds in minutes.
type TimerConfig struct {
	MinMinutes     int `yaml:"min_minutes"`
	MaxMinutes     int `yaml:"max_minutes"`
	DefaultMinutes int `yaml:"default_minutes"`
}

// CatalogConfig lists the purchasable cosmetics per category.
type CatalogConfig struct {
	Hats        []ItemConfig `yaml:"hats"`
	Accessories []ItemConfig `yaml:"accessories"`
}

// ItemConfig is one catalog entry.
type ItemConfig struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Price int    `yaml:"price"`
}

// Validate checks the configuration for values the engines rely on.
func (c Config) Validate() error {
	if c.Economy.RewardPerMinute <= 0 {
		return fmt.Errorf("config: reward_per_minute must be positive, got %d", c.Economy.RewardPerMinute)
	}
	if c.Economy.MinBet <= 0 {
		return fmt.Errorf("config: min_bet must be positive, got %d", c.Economy.MinBet)
	}
	if c.Economy.BetStep <= 0 {
		return fmt.Errorf("config: bet_step must be positive, got %d", c.Economy.BetStep)
	}
	if c.Timer.MinMinutes < 1 {
		return fmt.Errorf("config: min_minutes must be at least 1, got %d", c.Timer.MinMinutes)
	}
	if c.Timer.MaxMinutes < c.Timer.MinMinutes {
		return fmt.Errorf("config: max_minutes %d below min_minutes %d", c.Timer.MaxMinutes, c.Timer.MinMinutes)
	}
	if c.Timer.DefaultMinutes < c.Timer.MinMinutes || c.Timer.DefaultMinutes > c.Timer.MaxMinutes {
		return fmt.Errorf("config: default_minutes %d outside [%d,%d]", c.Timer.DefaultMinutes, c.Timer.MinMinutes, c.Timer.MaxMinutes)
	}
	for _, items := range [][]ItemConfig{c.Catalog.Hats, c.Catalog.Accessories} {
		for _, it := range items {
			if it.Name == "" {
				return fmt.Errorf("config: catalog item with empty name")
			}
			if it.Name == inventory.DefaultItem {
				return fmt.Errorf("config: catalog must not list the implicit %q item", inventory.DefaultItem)
			}
			if it.Price <= 0 {
				return fmt.Errorf("config: item %q price must be positive, got %d", it.Name, it.Price)
			}
		}
	}
	return nil
}

// BuildCatalog converts the catalog settings into the inventory catalog.
func (c Config) BuildCatalog() inventory.Catalog {
	cat := make(inventory.Catalog, 2)
	for _, ic := range c.Catalog.Hats {
		cat[inventory.CategoryHat] = append(cat[inventory.CategoryHat], inventory.Item{
			Name:  ic.Name,
			Glyph: ic.Glyph,
			Price: ic.Price,
		})
	}
	for _, ic := range c.Catalog.Accessories {
		cat[inventory.CategoryAccessory] = append(cat[inventory.CategoryAccessory], inventory.Item{
			Name:  ic.Name,
			Glyph: ic.Glyph,
			Price: ic.Price,
		})
	}
	return cat
}
