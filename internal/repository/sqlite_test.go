package repository

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"mrkgnao/internal/db"
	"mrkgnao/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteRepo(t *testing.T) *sqliteRepository {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "feedback.db"))
	require.NoError(t, err)
	repo := NewSQLiteRepository(database).(*sqliteRepository)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func storedIDs(t *testing.T, repo *sqliteRepository) []string {
	t.Helper()
	rows, err := repo.db.Query(`SELECT value FROM feedback WHERE list_key = ? ORDER BY position DESC`, model.FeedbackKey)
	require.NoError(t, err)
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var value string
		require.NoError(t, rows.Scan(&value))
		var rec model.FeedbackRecord
		require.NoError(t, json.Unmarshal([]byte(value), &rec))
		ids = append(ids, rec.ID)
	}
	require.NoError(t, rows.Err())
	return ids
}

func TestSQLiteAppend(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, &model.FeedbackRecord{ID: "one", PreferenceRating: 1}))
	require.NoError(t, repo.Append(ctx, &model.FeedbackRecord{ID: "two", PreferenceRating: 7}))
	assert.Equal(t, []string{"two", "one"}, storedIDs(t, repo))
}

func TestSQLiteAppendAfterExpiry(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	require.NoError(t, repo.Append(ctx, &model.FeedbackRecord{ID: "old"}))
	now = now.Add(29 * 24 * time.Hour)
	require.NoError(t, repo.Append(ctx, &model.FeedbackRecord{ID: "kept"}))
	assert.Equal(t, []string{"kept", "old"}, storedIDs(t, repo))

	now = now.Add(31 * 24 * time.Hour)
	require.NoError(t, repo.Append(ctx, &model.FeedbackRecord{ID: "fresh"}))
	assert.Equal(t, []string{"fresh"}, storedIDs(t, repo))
}

func TestSQLiteCounters(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	for _, rating := range []int{4, 4, 2} {
		for _, name := range model.CountersFor(rating) {
			require.NoError(t, repo.Incr(ctx, name))
		}
	}

	got, err := repo.Counters(ctx, model.CounterNames())
	require.NoError(t, err)
	assert.EqualValues(t, 3, got[model.CounterTotal])
	assert.EqualValues(t, 2, got[model.CounterNeutral])
	assert.EqualValues(t, 1, got[model.CounterPreferClaude])
	assert.EqualValues(t, 2, got["analytics:rating_4"])
	assert.EqualValues(t, 0, got["analytics:rating_7"])
}
