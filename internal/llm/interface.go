package llm

import "context"

// Provider defines the interface for the language-model providers being compared
type Provider interface {
	// Name returns the label used in outcome messages (e.g., "Claude API")
	Name() string

	// Generate sends the user message together with SystemPrompt and returns
	// the trimmed generated text. Failures are *Error values.
	Generate(ctx context.Context, message string) (string, error)

	// Ping issues a minimal low-cost request and returns the HTTP status code.
	// A missing credential is reported as a KindNotConfigured *Error without
	// any network call.
	Ping(ctx context.Context) (int, error)
}
