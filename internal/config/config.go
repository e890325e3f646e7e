// Package config loads runtime settings from environment variables.
// Command-line flags, where present, take precedence over these.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings the game reads from the environment.
type Config struct {
	// DBPath overrides where the progress database lives. Empty means
	// the per-user default under the XDG data directory.
	DBPath string `env:"ECONAUTS_DB"`

	// ContentPack points at a JSON world/level pack to load instead of
	// the built-in worlds.
	ContentPack string `env:"ECONAUTS_CONTENT_PACK"`

	// PlayerName pre-fills the explorer name on first launch.
	PlayerName string `env:"ECONAUTS_PLAYER"`

	// NoUpdateCheck disables the background check for new releases.
	NoUpdateCheck bool `env:"ECONAUTS_NO_UPDATE_CHECK" envDefault:"false"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
