package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Game GameConfig
}

// GameConfig holds run-level game settings
type GameConfig struct {
	// Seed seeds the shared random source. Zero seeds from the clock.
	Seed int64

	// DefaultMissions is used when the player accepts the default at the
	// mission-count prompt. Must be within [1,10].
	DefaultMissions int

	// TextDelayMS is the per-character narration delay. Zero disables
	// the slow-print pacing entirely.
	TextDelayMS int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Game: GameConfig{
			Seed:            getEnvAsInt64OrDefault("WARTRAIL_SEED", 0),
			DefaultMissions: getEnvAsIntOrDefault("WARTRAIL_MISSIONS", 3),
			TextDelayMS:     getEnvAsIntOrDefault("WARTRAIL_TEXT_DELAY_MS", 10),
		},
	}

	// Validate required ranges
	if cfg.Game.DefaultMissions < 1 || cfg.Game.DefaultMissions > 10 {
		return nil, fmt.Errorf("WARTRAIL_MISSIONS must be between 1 and 10, got %d", cfg.Game.DefaultMissions)
	}
	if cfg.Game.TextDelayMS < 0 {
		return nil, fmt.Errorf("WARTRAIL_TEXT_DELAY_MS must not be negative, got %d", cfg.Game.TextDelayMS)
	}

	return cfg, nil
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
