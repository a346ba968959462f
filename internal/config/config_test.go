package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "GIN_MODE", "CLAUDE_API_URL", "CLAUDE_MODEL", "GEMINI_API_URL", "GEMINI_MODEL",
		"PROVIDER_TIMEOUT", "FEEDBACK_STORE", "REDIS_URL", "KV_URL", "SQLITE_PATH",
		ClaudeKeyEnv, GeminiKeyEnv,
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://api.anthropic.com", cfg.ClaudeAPIURL)
	assert.Equal(t, "gemini-1.5-flash-latest", cfg.GeminiModel)
	assert.Equal(t, StoreNone, cfg.FeedbackStore)
	assert.Zero(t, cfg.ProviderTimeout)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("GEMINI_API_URL", "http://localhost:4000/")
	t.Setenv("PROVIDER_TIMEOUT", "15s")
	t.Setenv("FEEDBACK_STORE", "Redis")
	t.Setenv("KV_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "http://localhost:4000", cfg.GeminiAPIURL)
	assert.Equal(t, 15*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, StoreRedis, cfg.FeedbackStore)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]map[string]string{
		"bad timeout":       {"PROVIDER_TIMEOUT": "soon"},
		"negative timeout":  {"PROVIDER_TIMEOUT": "-1s"},
		"unknown store":     {"FEEDBACK_STORE": "dynamo"},
		"redis without url": {"FEEDBACK_STORE": "redis"},
		"unknown gin mode":  {"GIN_MODE": "verbose"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestAPIKeysReadAtCallTime(t *testing.T) {
	clearEnv(t)
	assert.Empty(t, ClaudeAPIKey())

	t.Setenv(ClaudeKeyEnv, " sk-ant-test ")
	t.Setenv(GeminiKeyEnv, "AIza-test")
	assert.Equal(t, "sk-ant-test", ClaudeAPIKey())
	assert.Equal(t, "AIza-test", GeminiAPIKey())
}
