package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
)

// GeminiProvider calls the Gemini generateContent REST endpoint with an API key
type GeminiProvider struct {
	baseURL    string
	model      string
	apiKey     func() string
	httpClient *http.Client
}

// NewGeminiProvider creates a Gemini provider. apiKey is consulted on every call.
func NewGeminiProvider(baseURL, model string, apiKey func() string, httpClient *http.Client) *GeminiProvider {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GeminiProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "Gemini API"
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

// GeminiGenerationConfig bounds the generated output
type GeminiGenerationConfig struct {
	MaxOutputTokens int      `json:"maxOutputTokens"`
	Temperature     *float64 `json:"temperature,omitempty"`
}

// GeminiRequest represents a generateContent request
type GeminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig GeminiGenerationConfig `json:"generationConfig"`
}

// GeminiResponse represents the part of a generateContent response we read
type GeminiResponse struct {
	Candidates []struct {
		Content *geminiContent `json:"content"`
	} `json:"candidates"`
}

// Generate asks Gemini for an onomatopoeia. Gemini has no separate system
// field on this endpoint, so the instruction is prepended to the message.
func (p *GeminiProvider) Generate(ctx context.Context, message string) (string, error) {
	key := p.apiKey()
	if key == "" {
		return "", &Error{Provider: p.Name(), Kind: KindNotConfigured}
	}

	temperature := geminiTemperature
	status, body, err := p.send(ctx, key, GeminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: SystemPrompt + "\n\nUser: " + message}}}},
		GenerationConfig: GeminiGenerationConfig{
			MaxOutputTokens: MaxOutputTokens,
			Temperature:     &temperature,
		},
	})
	if err != nil {
		log.Printf("[Gemini] API call failed: %v", err)
		return "", &Error{Provider: p.Name(), Kind: KindTransport, Err: err}
	}

	if status < 200 || status > 299 {
		log.Printf("[Gemini] API error: Status %d, Body: %s", status, preview(body))
		return "", &Error{Provider: p.Name(), Kind: KindStatus, StatusCode: status}
	}

	var resp GeminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		log.Printf("[Gemini] Failed to parse response: %v. Raw body: %s", err, preview(body))
		return "", &Error{Provider: p.Name(), Kind: KindInvalidResponse, Err: err}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 || resp.Candidates[0].Content.Parts[0].Text == "" {
		log.Printf("[Gemini] No candidate text in response: %s", preview(body))
		return "", &Error{Provider: p.Name(), Kind: KindInvalidResponse}
	}

	text := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	log.Printf("[Gemini] Generation successful: length=%d", len(text))
	return text, nil
}

// Ping sends a tiny request with a small output cap
func (p *GeminiProvider) Ping(ctx context.Context) (int, error) {
	key := p.apiKey()
	if key == "" {
		return 0, &Error{Provider: p.Name(), Kind: KindNotConfigured}
	}

	status, _, err := p.send(ctx, key, GeminiRequest{
		Contents:         []geminiContent{{Parts: []geminiPart{{Text: probePrompt}}}},
		GenerationConfig: GeminiGenerationConfig{MaxOutputTokens: probeMaxTokens},
	})
	if err != nil {
		log.Printf("[Gemini] Health check failed: %v", err)
		return status, &Error{Provider: p.Name(), Kind: KindTransport, Err: err}
	}
	return status, nil
}

func (p *GeminiProvider) send(ctx context.Context, key string, body GeminiRequest) (int, []byte, error) {
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		p.baseURL, url.PathEscape(p.model), url.QueryEscape(key))
	return postJSON(ctx, p.httpClient, reqConfig{URL: endpoint, Body: body})
}
