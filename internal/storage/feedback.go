package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"mrkgnao/internal/model"
)

// FeedbackStore keeps feedback and counters in process memory. It mirrors
// the Redis layout: one list with a rolling expiry plus plain counters.
type FeedbackStore struct {
	mu        sync.Mutex
	records   [][]byte // oldest first
	expiresAt time.Time
	counters  map[string]int64
	now       func() time.Time
}

func NewFeedbackStore() *FeedbackStore {
	return &FeedbackStore{
		counters: make(map[string]int64),
		now:      time.Now,
	}
}

// Append pushes rec to the head of the list and refreshes its expiry
func (s *FeedbackStore) Append(_ context.Context, rec *model.FeedbackRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal feedback: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireLocked()
	s.records = append(s.records, data)
	s.expiresAt = s.now().Add(model.FeedbackTTL)
	return nil
}

// Incr increments a counter by one
func (s *FeedbackStore) Incr(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[name]++
	return nil
}

// Counters returns the current value of each named counter, zero if unset
func (s *FeedbackStore) Counters(_ context.Context, names []string) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int64, len(names))
	for _, name := range names {
		out[name] = s.counters[name]
	}
	return out, nil
}

// Records returns copies of the stored records, newest first
func (s *FeedbackStore) Records() ([]model.FeedbackRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireLocked()
	out := make([]model.FeedbackRecord, 0, len(s.records))
	for i := len(s.records) - 1; i >= 0; i-- {
		data := s.records[i]
		var rec model.FeedbackRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal feedback: %w", err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *FeedbackStore) Close() error {
	return nil
}

func (s *FeedbackStore) expireLocked() {
	if !s.expiresAt.IsZero() && !s.now().Before(s.expiresAt) {
		s.records = nil
		s.expiresAt = time.Time{}
	}
}
