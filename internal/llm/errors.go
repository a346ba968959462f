package llm

import (
	"errors"
	"fmt"
)

// Kind classifies why a provider call failed
type Kind int

const (
	KindNotConfigured Kind = iota + 1
	KindTransport
	KindStatus
	KindInvalidResponse
)

// Error is returned by Provider implementations. Its message is the
// user-facing diagnostic placed in a failed Outcome.
type Error struct {
	Provider   string
	Kind       Kind
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotConfigured:
		return e.Provider + " key not configured"
	case KindTransport:
		return "Failed to connect to " + e.Provider
	case KindStatus:
		return fmt.Sprintf("%s error: %d", e.Provider, e.StatusCode)
	case KindInvalidResponse:
		return "Invalid response from " + e.Provider
	default:
		return e.Provider + " failed"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotConfigured reports whether err means the provider has no credential
func IsNotConfigured(err error) bool {
	var perr *Error
	return errors.As(err, &perr) && perr.Kind == KindNotConfigured
}
