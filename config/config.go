package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/blockfall/constants"
)

// Config holds the user-tunable game settings.
type Config struct {
	ArenaWidth  int    `toml:"arena_width"`
	ArenaHeight int    `toml:"arena_height"`
	GravityMs   int    `toml:"gravity_ms"`
	Audio       bool   `toml:"audio"`
	Keymap      string `toml:"keymap"` // path to a TOML keymap override file
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		ArenaWidth:  constants.DefaultArenaWidth,
		ArenaHeight: constants.DefaultArenaHeight,
		GravityMs:   int(constants.DefaultGravityInterval / time.Millisecond),
		Audio:       true,
	}
}

// Load reads a TOML config file over the defaults, so a partial file
// only overrides what it names.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config read: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot run with.
func (c *Config) Validate() error {
	if c.ArenaWidth < 6 {
		return fmt.Errorf("config: arena_width %d below minimum 6", c.ArenaWidth)
	}
	if c.ArenaHeight < 10 {
		return fmt.Errorf("config: arena_height %d below minimum 10", c.ArenaHeight)
	}
	if c.GravityMs <= 0 {
		return fmt.Errorf("config: gravity_ms must be positive, got %d", c.GravityMs)
	}
	return nil
}

// GravityInterval returns the drop period as a duration.
func (c *Config) GravityInterval() time.Duration {
	return time.Duration(c.GravityMs) * time.Millisecond
}
