// Package config loads the optional HCL configuration file for a
// blackjack session: game settings plus custom table rulesets.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjack/internal/game"
)

// DefaultFilename is read when no --config flag is given
const DefaultFilename = "blackjack.hcl"

// Config represents the complete configuration file
type Config struct {
	Game     *GameSettings   `hcl:"game,block"`
	Rulesets []RulesetConfig `hcl:"ruleset,block"`
}

// GameSettings contains session-level configuration
type GameSettings struct {
	Ruleset       string `hcl:"ruleset,optional"`
	StartingChips int    `hcl:"starting_chips,optional"`
	DealerName    string `hcl:"dealer_name,optional"`
	Seed          int64  `hcl:"seed,optional"`
	DealerPauseMS int    `hcl:"dealer_pause_ms,optional"`
	LogLevel      string `hcl:"log_level,optional"`
	LogFile       string `hcl:"log_file,optional"`
}

// RulesetConfig defines a custom table ruleset
type RulesetConfig struct {
	Name            string `hcl:"name,label"`
	MaxPlayers      int    `hcl:"max_players,optional"`
	Decks           int    `hcl:"decks,optional"`
	AutoShuffle     bool   `hcl:"auto_shuffle,optional"`
	MinimumWager    int    `hcl:"minimum_wager,optional"`
	DealerHoleCard  bool   `hcl:"dealer_hole_card,optional"`
	RevealBlackjack bool   `hcl:"reveal_blackjack,optional"`
	BlackjackPayout string `hcl:"blackjack_payout,optional"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		Game: &GameSettings{
			Ruleset:       game.DefaultRuleset,
			StartingChips: game.DefaultStartingChips,
			LogLevel:      "warn",
		},
	}
}

// LoadConfig loads configuration from an HCL file. A missing file is not an
// error and yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	if c.Game.Ruleset == "" {
		c.Game.Ruleset = game.DefaultRuleset
	}
	if c.Game.StartingChips == 0 {
		c.Game.StartingChips = game.DefaultStartingChips
	}
	if c.Game.LogLevel == "" {
		c.Game.LogLevel = "warn"
	}

	for i := range c.Rulesets {
		if c.Rulesets[i].MaxPlayers == 0 {
			c.Rulesets[i].MaxPlayers = 1
		}
		if c.Rulesets[i].Decks == 0 {
			c.Rulesets[i].Decks = 1
		}
		if c.Rulesets[i].MinimumWager == 0 {
			c.Rulesets[i].MinimumWager = 1
		}
		if c.Rulesets[i].BlackjackPayout == "" {
			c.Rulesets[i].BlackjackPayout = "3:2"
		}
	}
}

// Validate validates the configuration, including that the selected
// ruleset exists once custom rulesets are registered
func (c *Config) Validate() error {
	if c.Game.StartingChips <= 0 {
		return fmt.Errorf("starting chips must be positive, got %d", c.Game.StartingChips)
	}
	if c.Game.DealerPauseMS < 0 {
		return fmt.Errorf("dealer pause must not be negative, got %dms", c.Game.DealerPauseMS)
	}

	registry, err := c.Registry()
	if err != nil {
		return err
	}
	if _, err := registry.Lookup(c.Game.Ruleset); err != nil {
		return err
	}
	return nil
}

// Registry returns the built-in rulesets plus every custom ruleset
func (c *Config) Registry() (*game.Registry, error) {
	registry := game.NewRegistry()
	seen := make(map[string]bool)
	for _, rc := range c.Rulesets {
		if seen[rc.Name] {
			return nil, fmt.Errorf("ruleset %s: defined more than once", rc.Name)
		}
		seen[rc.Name] = true

		rs, err := rc.Ruleset()
		if err != nil {
			return nil, err
		}
		if err := registry.Register(rs); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// Ruleset converts the block into a game ruleset
func (rc RulesetConfig) Ruleset() (game.Ruleset, error) {
	payout, err := game.ParseRatio(rc.BlackjackPayout)
	if err != nil {
		return game.Ruleset{}, fmt.Errorf("ruleset %s: blackjack payout: %w", rc.Name, err)
	}
	return game.Ruleset{
		Name:            rc.Name,
		MaxPlayers:      rc.MaxPlayers,
		Decks:           rc.Decks,
		AutoShuffle:     rc.AutoShuffle,
		MinimumWager:    rc.MinimumWager,
		DealerHoleCard:  rc.DealerHoleCard,
		RevealBlackjack: rc.DealerHoleCard && rc.RevealBlackjack,
		BlackjackPayout: payout,
	}, nil
}

// DealerPause returns the pause between the dealer's draws
func (c *Config) DealerPause() time.Duration {
	return time.Duration(c.Game.DealerPauseMS) * time.Millisecond
}
