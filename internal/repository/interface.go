package repository

import (
	"context"

	"mrkgnao/internal/model"
)

// FeedbackRepository defines the storage operations used by the feedback
// recorder. Each call is expected to be atomic on its own; callers do not
// rely on ordering between calls.
type FeedbackRepository interface {
	// Append pushes a record onto the head of the feedback list and refreshes
	// the list's 30-day expiry
	Append(ctx context.Context, rec *model.FeedbackRecord) error

	// Incr increments a named counter by one
	Incr(ctx context.Context, name string) error

	// Counters reads the named counters; missing counters read as zero
	Counters(ctx context.Context, names []string) (map[string]int64, error)

	Close() error
}
