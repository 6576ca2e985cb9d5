package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultSongs is the playlist used when PLAYLIST_SONGS is not set
const DefaultSongs = "A:2,B:1,C:5,D:1,E:2,F:1,G:5,H:1"

// Config holds all application configuration
type Config struct {
	// Playlist
	Songs     string
	PlayCount int

	// Randomness
	RandomSeed uint64
	HasSeed    bool

	// Logging
	LogLevel  string
	LogFormat string

	// Metrics
	MetricsAddr string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		Songs:       getEnvOrDefault("PLAYLIST_SONGS", DefaultSongs),
		PlayCount:   getEnvInt("PLAY_COUNT", 3),
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "text"),
		MetricsAddr: os.Getenv("METRICS_ADDR"),
	}

	if cfg.PlayCount < 0 {
		return nil, fmt.Errorf("PLAY_COUNT must not be negative, got %d", cfg.PlayCount)
	}

	if value := os.Getenv("RANDOM_SEED"); value != "" {
		seed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RANDOM_SEED %q: %w", value, err)
		}
		cfg.RandomSeed = seed
		cfg.HasSeed = true
	}

	return cfg, nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
