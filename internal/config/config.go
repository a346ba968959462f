package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Environment variables holding provider credentials. They are read on every
// request so a rotated key takes effect without a restart.
const (
	ClaudeKeyEnv = "CLAUDE_API_KEY"
	GeminiKeyEnv = "GEMINI_API_KEY"
)

// Feedback store backends
const (
	StoreNone   = ""
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

type Config struct {
	Port    string
	GinMode string

	ClaudeAPIURL string
	ClaudeModel  string
	GeminiAPIURL string
	GeminiModel  string

	// ProviderTimeout bounds each outbound provider call; zero means no limit
	ProviderTimeout time.Duration

	FeedbackStore string
	RedisURL      string
	SQLitePath    string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       os.Getenv("GIN_MODE"),
		ClaudeAPIURL:  strings.TrimRight(getEnv("CLAUDE_API_URL", "https://api.anthropic.com"), "/"),
		ClaudeModel:   getEnv("CLAUDE_MODEL", "claude-3-5-sonnet-20241022"),
		GeminiAPIURL:  strings.TrimRight(getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com"), "/"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-1.5-flash-latest"),
		FeedbackStore: strings.ToLower(strings.TrimSpace(os.Getenv("FEEDBACK_STORE"))),
		RedisURL:      getEnv("REDIS_URL", os.Getenv("KV_URL")),
		SQLitePath:    getEnv("SQLITE_PATH", "data/feedback.db"),
	}

	if v := os.Getenv("PROVIDER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PROVIDER_TIMEOUT %q: %w", v, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("PROVIDER_TIMEOUT must not be negative, got %s", v)
		}
		cfg.ProviderTimeout = d
	}

	switch cfg.GinMode {
	case "", "debug", "release", "test":
	default:
		return nil, fmt.Errorf("unsupported GIN_MODE: %s. Supported: debug, release, test", cfg.GinMode)
	}

	switch cfg.FeedbackStore {
	case StoreNone, StoreMemory, StoreSQLite:
	case StoreRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("FEEDBACK_STORE=redis requires REDIS_URL (or KV_URL)")
		}
	default:
		return nil, fmt.Errorf("unsupported FEEDBACK_STORE: %s. Supported: memory, redis, sqlite", cfg.FeedbackStore)
	}

	// Provider keys are optional: a missing key is reported per provider
	// by the chat and health endpoints.

	return cfg, nil
}

// ClaudeAPIKey returns the current Claude credential, empty when unset
func ClaudeAPIKey() string {
	return strings.TrimSpace(os.Getenv(ClaudeKeyEnv))
}

// GeminiAPIKey returns the current Gemini credential, empty when unset
func GeminiAPIKey() string {
	return strings.TrimSpace(os.Getenv(GeminiKeyEnv))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
