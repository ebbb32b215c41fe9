package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// DefaultVerifyURL points at a public HMAC calculator for checking a round by hand.
const DefaultVerifyURL = "https://www.freeformatter.com/hmac-generator.html"

// Config holds the runtime settings of the fairplay binary.
type Config struct {
	LogLevel  string `env:"FAIRPLAY_LOG_LEVEL" envDefault:"info"`
	NoColor   bool   `env:"FAIRPLAY_NO_COLOR" envDefault:"false"`
	VerifyURL string `env:"FAIRPLAY_VERIFY_URL" envDefault:"https://www.freeformatter.com/hmac-generator.html"`
	// MaxRounds caps the rounds of a session, 0 means unlimited.
	MaxRounds int `env:"FAIRPLAY_MAX_ROUNDS" envDefault:"0"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates a Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}
	if cfg.MaxRounds < 0 {
		return Config{}, fmt.Errorf("max rounds must not be negative, got %d", cfg.MaxRounds)
	}
	return cfg, nil
}
