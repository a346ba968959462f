package model

import (
	"fmt"
	"time"
)

const (
	// FeedbackKey is the list holding JSON-encoded feedback records, newest first
	FeedbackKey = "feedback"

	// FeedbackTTL is the rolling expiry refreshed on every append
	FeedbackTTL = 30 * 24 * time.Hour

	MaxUserMessageLen = 500
	MaxResponseLen    = 200

	MinRating     = 1
	MaxRating     = 7
	NeutralRating = 4

	// UnknownSession is stored when the caller sent no X-Forwarded-For header
	UnknownSession = "unknown"
)

// Counter names, shared by every feedback store
const (
	CounterTotal        = "analytics:total_feedback"
	CounterPreferClaude = "analytics:prefer_claude"
	CounterPreferGemini = "analytics:prefer_gemini"
	CounterNeutral      = "analytics:neutral"
)

// FeedbackRecord represents one preference rating comparing the two providers
type FeedbackRecord struct {
	ID               string  `json:"id"`
	Timestamp        string  `json:"timestamp"`
	UserMessage      string  `json:"user_message"`
	ClaudeResponse   *string `json:"claude_response"`
	GeminiResponse   *string `json:"gemini_response"`
	PreferenceRating int     `json:"preference_rating"`
	SessionID        string  `json:"session_id"`
}

// RatingCounter returns the per-rating counter name, e.g. analytics:rating_4
func RatingCounter(rating int) string {
	return fmt.Sprintf("analytics:rating_%d", rating)
}

// PreferenceCounter returns the bucket a rating falls into
func PreferenceCounter(rating int) string {
	switch {
	case rating < NeutralRating:
		return CounterPreferClaude
	case rating > NeutralRating:
		return CounterPreferGemini
	default:
		return CounterNeutral
	}
}

// CountersFor lists every counter a single rating increments, in increment order
func CountersFor(rating int) []string {
	return []string{CounterTotal, RatingCounter(rating), PreferenceCounter(rating)}
}

// CounterNames lists every aggregate counter the recorder maintains
func CounterNames() []string {
	names := []string{CounterTotal}
	for r := MinRating; r <= MaxRating; r++ {
		names = append(names, RatingCounter(r))
	}
	return append(names, CounterPreferClaude, CounterPreferGemini, CounterNeutral)
}

// ISOTime formats t the way JavaScript's Date.toISOString does
func ISOTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
