package game

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/treasurehunter/internal/gamedata"
)

// DefaultHunterName is used when no name is configured or typed.
const DefaultHunterName = "hunter"

// Config holds the options chosen once at session start. Nothing changes it afterwards.
type Config struct {
	// HunterName is the player's name. Empty means ask on the title screen.
	HunterName string `env:"TREASURE_HUNTER_NAME"`
	// Mode is a mode ID ("normal") or menu key ("n") from modes.json.
	Mode string `env:"TREASURE_HUNTER_MODE" envDefault:"normal"`
	// Seed for random number generation. Used for reproducible hunts.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `env:"TREASURE_HUNTER_SEED"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ResolveMode looks the configured mode up in the mode table.
func (c Config) ResolveMode(modes *gamedata.ModeRegistry) (*gamedata.ModeDef, error) {
	mode, err := modes.Lookup(c.Mode)
	if err != nil {
		return nil, fmt.Errorf("resolve mode: %w", err)
	}
	return mode, nil
}

// Name returns the hunter's name, lowercased, falling back to DefaultHunterName.
func (c Config) Name() string {
	name := strings.ToLower(strings.TrimSpace(c.HunterName))
	if name == "" {
		return DefaultHunterName
	}
	return name
}
