package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// DefaultAccessCode unlocks the full bank when no code is configured.
const DefaultAccessCode = "parkgolf"

// Config holds runtime configuration. Every field can be set from the
// environment; CLI flags override after Load.
type Config struct {
	Env string `env:"PARKGOLF_ENV" envDefault:"development"`

	// DBPath overrides the default SQLite location.
	DBPath string `env:"PARKGOLF_DB"`

	// BankPath loads the question bank from a JSON file instead of the
	// embedded one.
	BankPath string `env:"PARKGOLF_BANK"`

	AccessCode string `env:"PARKGOLF_ACCESS_CODE" envDefault:"parkgolf"`

	Log Log

	// CardDelay is how long the study screen waits before showing the next
	// card, so the flip-back can finish.
	CardDelay time.Duration `env:"PARKGOLF_CARD_DELAY" envDefault:"200ms"`
}

// Log configures the zerolog logger.
type Log struct {
	Level string `env:"PARKGOLF_LOG_LEVEL" envDefault:"info"`
	File  string `env:"PARKGOLF_LOG_FILE"`
}

// Load reads an optional .env file, then parses the environment.
func Load(dotenvPaths ...string) (*Config, error) {
	if len(dotenvPaths) == 0 {
		dotenvPaths = []string{".env"}
	}
	for _, p := range dotenvPaths {
		// godotenv never overrides variables already set in the environment.
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", p, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.AccessCode == "" {
		cfg.AccessCode = DefaultAccessCode
	}
	if cfg.CardDelay < 0 {
		cfg.CardDelay = 0
	}
	return cfg, nil
}
