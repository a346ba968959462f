package llm

import (
	"log"
	"net/http"

	"mrkgnao/internal/config"
)

// CreateProviders builds the Claude and Gemini providers from configuration.
// Both share one HTTP client; credentials are looked up per call.
func CreateProviders(cfg *config.Config) (claude, gemini Provider) {
	client := &http.Client{Timeout: cfg.ProviderTimeout}
	if cfg.ProviderTimeout > 0 {
		log.Printf("[LLM Factory] Provider timeout: %s", cfg.ProviderTimeout)
	}

	if config.ClaudeAPIKey() == "" {
		log.Printf("[LLM Factory] %s not set, Claude will report not configured", config.ClaudeKeyEnv)
	}
	if config.GeminiAPIKey() == "" {
		log.Printf("[LLM Factory] %s not set, Gemini will report not configured", config.GeminiKeyEnv)
	}

	log.Printf("[LLM Factory] Creating Claude provider (model: %s)", cfg.ClaudeModel)
	claude = NewClaudeProvider(cfg.ClaudeAPIURL, cfg.ClaudeModel, config.ClaudeAPIKey, client)

	log.Printf("[LLM Factory] Creating Gemini provider (model: %s)", cfg.GeminiModel)
	gemini = NewGeminiProvider(cfg.GeminiAPIURL, cfg.GeminiModel, config.GeminiAPIKey, client)

	return claude, gemini
}
