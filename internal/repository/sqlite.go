package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"mrkgnao/internal/model"
)

type sqliteRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteRepository creates a feedback repository on a database opened by db.Open
func NewSQLiteRepository(database *sql.DB) FeedbackRepository {
	return &sqliteRepository{db: database, now: time.Now}
}

// Append inserts the record and refreshes the list expiry in one transaction.
// An already expired list is cleared first, matching Redis key expiry.
func (r *sqliteRepository) Append(ctx context.Context, rec *model.FeedbackRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal feedback: %w", err)
	}

	now := r.now()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM feedback WHERE list_key = ? AND EXISTS (
			SELECT 1 FROM key_expiry WHERE list_key = ? AND expires_at <= ?
		)`,
		model.FeedbackKey, model.FeedbackKey, now.Unix(),
	); err != nil {
		return fmt.Errorf("failed to purge expired feedback: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO feedback (list_key, value) VALUES (?, ?)`,
		model.FeedbackKey, string(data),
	); err != nil {
		return fmt.Errorf("failed to insert feedback: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO key_expiry (list_key, expires_at) VALUES (?, ?)
		 ON CONFLICT(list_key) DO UPDATE SET expires_at = excluded.expires_at`,
		model.FeedbackKey, now.Add(model.FeedbackTTL).Unix(),
	); err != nil {
		return fmt.Errorf("failed to set feedback expiry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit feedback: %w", err)
	}
	return nil
}

// Incr increments a counter, creating it at 1
func (r *sqliteRepository) Incr(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO counters (name, value) VALUES (?, 1)
		 ON CONFLICT(name) DO UPDATE SET value = value + 1`,
		name,
	)
	if err != nil {
		return fmt.Errorf("failed to increment %s: %w", name, err)
	}
	return nil
}

// Counters reads the named counters in one query
func (r *sqliteRepository) Counters(ctx context.Context, names []string) (map[string]int64, error) {
	out := make(map[string]int64, len(names))
	if len(names) == 0 {
		return out, nil
	}

	args := make([]any, len(names))
	for i, name := range names {
		args[i] = name
		out[name] = 0
	}

	query := `SELECT name, value FROM counters WHERE name IN (?` + strings.Repeat(", ?", len(names)-1) + `)`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query counters: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var value int64
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("failed to scan counter: %w", err)
		}
		out[name] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating counters: %w", err)
	}
	return out, nil
}

func (r *sqliteRepository) Close() error {
	return r.db.Close()
}
