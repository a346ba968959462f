package compare

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"mrkgnao/internal/llm"
	"mrkgnao/internal/model"
)

// MaxMessageLen is the longest prompt accepted, in characters
const MaxMessageLen = 500

var (
	ErrMessageRequired = errors.New("Message is required")
	ErrMessageTooLong  = errors.New("Message too long")
)

// Result holds both providers' outcomes; both are always set
type Result struct {
	Claude llm.Outcome `json:"claude"`
	Gemini llm.Outcome `json:"gemini"`
}

// Health reports whether each provider answered a probe with HTTP 200
type Health struct {
	Claude    bool   `json:"claude"`
	Gemini    bool   `json:"gemini"`
	Timestamp string `json:"timestamp"`
}

// Comparator sends one prompt to Claude and Gemini side by side
type Comparator struct {
	claude llm.Provider
	gemini llm.Provider
	now    func() time.Time
}

func New(claude, gemini llm.Provider) *Comparator {
	return &Comparator{claude: claude, gemini: gemini, now: time.Now}
}

// ValidateMessage checks a prompt before any provider is called. The length
// limit applies to the message as sent, not the trimmed form.
func ValidateMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrMessageRequired
	}
	if utf8.RuneCountInString(message) > MaxMessageLen {
		return ErrMessageTooLong
	}
	return nil
}

// Compare validates message and then queries both providers concurrently.
// Provider failures are reported inside the Result, never as an error.
func (c *Comparator) Compare(ctx context.Context, message string) (*Result, error) {
	if err := ValidateMessage(message); err != nil {
		return nil, err
	}

	start := c.now()
	outcomes := llm.GenerateAll(ctx, message, c.claude, c.gemini)
	result := &Result{Claude: outcomes[0], Gemini: outcomes[1]}

	log.Printf("[Compare] Completed in %v (claude success=%t, gemini success=%t)",
		c.now().Sub(start), result.Claude.Success, result.Gemini.Success)
	return result, nil
}

// Probe checks both providers concurrently
func (c *Comparator) Probe(ctx context.Context) *Health {
	working := llm.PingAll(ctx, c.claude, c.gemini)
	return &Health{
		Claude:    working[0],
		Gemini:    working[1],
		Timestamp: model.ISOTime(c.now()),
	}
}
