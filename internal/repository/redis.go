package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"mrkgnao/internal/model"

	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *redis.Client
}

// NewRedisRepository creates a feedback repository backed by Redis (or any
// Redis-protocol KV such as Vercel KV / Upstash)
func NewRedisRepository(client *redis.Client) FeedbackRepository {
	return &redisRepository{client: client}
}

// Append runs LPUSH and EXPIRE in one MULTI block
func (r *redisRepository) Append(ctx context.Context, rec *model.FeedbackRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal feedback: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, model.FeedbackKey, data)
		pipe.Expire(ctx, model.FeedbackKey, model.FeedbackTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append feedback: %w", err)
	}
	return nil
}

// Incr increments a counter
func (r *redisRepository) Incr(ctx context.Context, name string) error {
	if err := r.client.Incr(ctx, name).Err(); err != nil {
		return fmt.Errorf("failed to increment %s: %w", name, err)
	}
	return nil
}

// Counters reads all counters with a single MGET
func (r *redisRepository) Counters(ctx context.Context, names []string) (map[string]int64, error) {
	out := make(map[string]int64, len(names))
	if len(names) == 0 {
		return out, nil
	}

	vals, err := r.client.MGet(ctx, names...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read counters: %w", err)
	}

	for i, name := range names {
		s, ok := vals[i].(string)
		if !ok {
			out[name] = 0
			continue
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("counter %s is not an integer: %w", name, err)
		}
		out[name] = n
	}
	return out, nil
}

func (r *redisRepository) Close() error {
	return r.client.Close()
}
