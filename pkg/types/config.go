package types

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// GameConfig holds per-session runtime configuration. Environment variables
// (optionally from a .env file) fill it first; command-line flags override.
type GameConfig struct {
	// Seed for the shuffle source. Zero means seed from OS entropy.
	Seed    int64 `env:"BLACKJACK_SEED"`
	Rounds  int   `env:"BLACKJACK_ROUNDS"` // 0 = keep dealing until the user declines
	Verbose bool  `env:"BLACKJACK_VERBOSE"`
	Color   bool  `env:"BLACKJACK_COLOR" envDefault:"true"`
	// Stack, when set, rigs every round's deck with these card literals
	// (comma separated, last one dealt first). Debugging only.
	Stack string `env:"BLACKJACK_STACK"`
}

const (
	EnvSeed    = "BLACKJACK_SEED"
	EnvRounds  = "BLACKJACK_ROUNDS"
	EnvVerbose = "BLACKJACK_VERBOSE"
	EnvColor   = "BLACKJACK_COLOR"
	EnvStack   = "BLACKJACK_STACK"
)

func DefaultConfig() GameConfig {
	return GameConfig{Color: true}
}

// LoadConfig reads the optional env files into the process environment (not
// overriding variables already set) and builds a GameConfig from it. A missing
// default ".env" is not an error; a missing explicitly named file is.
func LoadConfig(files ...string) (GameConfig, error) {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return GameConfig{}, fmt.Errorf("load .env: %w", err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return GameConfig{}, fmt.Errorf("load env %s: %w", strings.Join(files, ","), err)
	}
	return FromEnv(nil)
}

// FromEnv parses a config from environ, or from the process environment when
// environ is nil. Empty values leave the default in place.
func FromEnv(environ map[string]string) (GameConfig, error) {
	var cfg GameConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return DefaultConfig(), fmt.Errorf("parse env: %w", err)
	}
	if cfg.Rounds < 0 {
		return DefaultConfig(), fmt.Errorf("%s: must be >= 0, got %d", EnvRounds, cfg.Rounds)
	}
	return cfg, nil
}
