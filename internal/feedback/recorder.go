package feedback

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"mrkgnao/internal/model"
	"mrkgnao/internal/repository"

	"github.com/google/uuid"
)

// Input is a validated feedback submission
type Input struct {
	UserMessage      string
	ClaudeResponse   *string
	GeminiResponse   *string
	PreferenceRating int
	SessionID        string
}

// Recorder turns submissions into records and persists them. Storage is
// best effort: every store call is attempted even if an earlier one failed,
// and failures are logged rather than returned.
type Recorder struct {
	repo  repository.FeedbackRepository
	now   func() time.Time
	newID func() string
}

// NewRecorder creates a recorder; repo may be nil, in which case records are
// only logged
func NewRecorder(repo repository.FeedbackRepository) *Recorder {
	return &Recorder{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Record builds a FeedbackRecord from in, appends it and bumps the counters.
// in must already satisfy ValidRating.
func (r *Recorder) Record(ctx context.Context, in Input) *model.FeedbackRecord {
	rec := r.build(in)

	if r.repo == nil {
		log.Printf("[Feedback] Feedback received: %s", encode(rec))
		return rec
	}

	if err := r.repo.Append(ctx, rec); err != nil {
		log.Printf("[Feedback] Storage failed (%v), logging feedback: %s", err, encode(rec))
	}

	for _, name := range model.CountersFor(rec.PreferenceRating) {
		if err := r.repo.Incr(ctx, name); err != nil {
			log.Printf("[Feedback] Analytics update failed for %s: %v", name, err)
		}
	}

	log.Printf("[Feedback] Recorded %s (rating %d)", rec.ID, rec.PreferenceRating)
	return rec
}

// Counters returns every aggregate counter. Without a store all counters read zero.
func (r *Recorder) Counters(ctx context.Context) (map[string]int64, error) {
	names := model.CounterNames()
	if r.repo == nil {
		out := make(map[string]int64, len(names))
		for _, name := range names {
			out[name] = 0
		}
		return out, nil
	}
	return r.repo.Counters(ctx, names)
}

func (r *Recorder) build(in Input) *model.FeedbackRecord {
	session := in.SessionID
	if session == "" {
		session = model.UnknownSession
	}
	return &model.FeedbackRecord{
		ID:               r.newID(),
		Timestamp:        model.ISOTime(r.now()),
		UserMessage:      truncate(in.UserMessage, model.MaxUserMessageLen),
		ClaudeResponse:   optional(in.ClaudeResponse, model.MaxResponseLen),
		GeminiResponse:   optional(in.GeminiResponse, model.MaxResponseLen),
		PreferenceRating: in.PreferenceRating,
		SessionID:        session,
	}
}

// ValidRating reports whether rating is on the 1..7 scale
func ValidRating(rating int) bool {
	return rating >= model.MinRating && rating <= model.MaxRating
}

// truncate keeps at most n characters of s
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// optional truncates a response; absent and empty responses become nil
func optional(s *string, n int) *string {
	if s == nil || *s == "" {
		return nil
	}
	t := truncate(*s, n)
	return &t
}

func encode(rec *model.FeedbackRecord) string {
	data, err := json.Marshal(rec)
	if err != nil {
		return rec.ID
	}
	return string(data)
}
