package llm

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

const claudeVersion = "2023-06-01"

// ClaudeProvider calls the Anthropic Messages API
type ClaudeProvider struct {
	baseURL    string
	model      string
	apiKey     func() string
	httpClient *http.Client
}

// NewClaudeProvider creates a Claude provider. apiKey is consulted on every
// call; an empty result means the provider is not configured.
func NewClaudeProvider(baseURL, model string, apiKey func() string, httpClient *http.Client) *ClaudeProvider {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ClaudeProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Name returns the provider name
func (p *ClaudeProvider) Name() string {
	return "Claude API"
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ClaudeRequest represents a Messages API request
type ClaudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	System    string          `json:"system,omitempty"`
	Messages  []claudeMessage `json:"messages"`
}

// ClaudeResponse represents the part of a Messages API response we read
type ClaudeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// Generate asks Claude for an onomatopoeia
func (p *ClaudeProvider) Generate(ctx context.Context, message string) (string, error) {
	key := p.apiKey()
	if key == "" {
		return "", &Error{Provider: p.Name(), Kind: KindNotConfigured}
	}

	status, body, err := p.send(ctx, key, ClaudeRequest{
		Model:     p.model,
		MaxTokens: MaxOutputTokens,
		System:    SystemPrompt,
		Messages:  []claudeMessage{{Role: "user", Content: message}},
	})
	if err != nil {
		log.Printf("[Claude] API call failed: %v", err)
		return "", &Error{Provider: p.Name(), Kind: KindTransport, Err: err}
	}

	if status < 200 || status > 299 {
		log.Printf("[Claude] API error: Status %d, Body: %s", status, preview(body))
		return "", &Error{Provider: p.Name(), Kind: KindStatus, StatusCode: status}
	}

	var resp ClaudeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		log.Printf("[Claude] Failed to parse response: %v. Raw body: %s", err, preview(body))
		return "", &Error{Provider: p.Name(), Kind: KindInvalidResponse, Err: err}
	}
	if len(resp.Content) == 0 || resp.Content[0].Text == "" {
		log.Printf("[Claude] No text content in response: %s", preview(body))
		return "", &Error{Provider: p.Name(), Kind: KindInvalidResponse}
	}

	text := strings.TrimSpace(resp.Content[0].Text)
	log.Printf("[Claude] Generation successful: length=%d", len(text))
	return text, nil
}

// Ping sends a tiny request without the system prompt
func (p *ClaudeProvider) Ping(ctx context.Context) (int, error) {
	key := p.apiKey()
	if key == "" {
		return 0, &Error{Provider: p.Name(), Kind: KindNotConfigured}
	}

	status, _, err := p.send(ctx, key, ClaudeRequest{
		Model:     p.model,
		MaxTokens: probeMaxTokens,
		Messages:  []claudeMessage{{Role: "user", Content: probePrompt}},
	})
	if err != nil {
		log.Printf("[Claude] Health check failed: %v", err)
		return status, &Error{Provider: p.Name(), Kind: KindTransport, Err: err}
	}
	return status, nil
}

func (p *ClaudeProvider) send(ctx context.Context, key string, body ClaudeRequest) (int, []byte, error) {
	return postJSON(ctx, p.httpClient, reqConfig{
		URL: p.baseURL + "/v1/messages",
		Headers: map[string]string{
			"x-api-key":         key,
			"anthropic-version": claudeVersion,
		},
		Body: body,
	})
}
