package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config drives the demo league run.
type Config struct {
	Clubs          []string `toml:"clubs"`
	SquadSize      int      `toml:"squad_size"`
	StallThreshold int      `toml:"stall_threshold"`
	TurnsPerMatch  int      `toml:"turns_per_match"`
	Seed           int64    `toml:"seed"`
	LogLevel       string   `toml:"log_level"`
}

// defaultConfig returns the built-in league setup: eight synthetic clubs,
// full squads, the standard optimization and match budgets.
func defaultConfig() Config {
	return Config{
		Clubs: []string{
			"Alverton", "Beckworth", "Calderley", "Dunsfield",
			"Eastmoor", "Farrowgate", "Granthorpe", "Heywick",
		},
		SquadSize:      11,
		StallThreshold: 100,
		TurnsPerMatch:  100,
		Seed:           0, // 0 means seed from the clock
		LogLevel:       "info",
	}
}

// loadConfig merges a TOML file (when given) on top of the defaults, then
// applies MARKOVBALL_* environment overrides.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)

	if len(cfg.Clubs) < 2 {
		return Config{}, fmt.Errorf("config needs at least two clubs, got %d", len(cfg.Clubs))
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	setStr(&cfg.LogLevel, "MARKOVBALL_LOG_LEVEL")
	setInt64(&cfg.Seed, "MARKOVBALL_SEED")
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}
