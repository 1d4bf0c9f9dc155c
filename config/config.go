// Package config loads game setup from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PlayerSpec describes one seat: a display name and either a bot profile
// or a human slot.
type PlayerSpec struct {
	Name    string `yaml:"name"`
	Bot     bool   `yaml:"bot"`
	Profile string `yaml:"profile"`
}

// Config is the game runner setup.
type Config struct {
	// Seed fixes the board layout and bot choices; 0 means randomize.
	Seed uint64 `yaml:"seed"`

	// SavesPath is the sqlite save database; empty disables saving.
	SavesPath string `yaml:"saves_path"`

	// BotDelayMs is the simulated thinking delay per bot decision.
	BotDelayMs int `yaml:"bot_delay_ms"`

	Players []PlayerSpec `yaml:"players"`
}

// Default returns a three-bot setup with no delay and no saving.
func Default() *Config {
	return &Config{
		Players: []PlayerSpec{
			{Name: "Hal", Bot: true, Profile: "aggressive"},
			{Name: "Sal", Bot: true, Profile: "friendly"},
			{Name: "Cal", Bot: true, Profile: "aggressive"},
		},
	}
}

// Load reads a config file over the defaults. A missing file is an error;
// call Default directly for a zero-config run.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the roster shape. Profile names are validated later by
// the strategy factory, which owns the known set.
func (c *Config) Validate() error {
	if len(c.Players) != 3 {
		return fmt.Errorf("need exactly 3 players, have %d", len(c.Players))
	}
	for i, p := range c.Players {
		if p.Name == "" {
			return fmt.Errorf("player %d has no name", i)
		}
		if p.Bot && p.Profile == "" {
			return fmt.Errorf("bot player %q has no profile", p.Name)
		}
	}
	if c.BotDelayMs < 0 {
		return fmt.Errorf("bot_delay_ms must not be negative")
	}
	return nil
}
