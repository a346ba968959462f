package repository

import (
	"fmt"
	"log"

	"mrkgnao/internal/config"
	"mrkgnao/internal/db"
	"mrkgnao/internal/storage"

	"github.com/redis/go-redis/v9"
)

// Open creates the feedback repository selected by FEEDBACK_STORE.
// It returns a nil repository when no store is configured; feedback is then
// only written to the log.
func Open(cfg *config.Config) (FeedbackRepository, error) {
	switch cfg.FeedbackStore {
	case config.StoreNone:
		log.Printf("[Repository] FEEDBACK_STORE not set, feedback will only be logged")
		return nil, nil
	case config.StoreMemory:
		log.Printf("[Repository] Using in-memory feedback store")
		return storage.NewFeedbackStore(), nil
	case config.StoreRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis URL: %w", err)
		}
		log.Printf("[Repository] Using Redis feedback store at %s", opts.Addr)
		return NewRedisRepository(redis.NewClient(opts)), nil
	case config.StoreSQLite:
		database, err := db.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Printf("[Repository] Using SQLite feedback store at %s", cfg.SQLitePath)
		return NewSQLiteRepository(database), nil
	default:
		return nil, fmt.Errorf("unsupported feedback store: %s", cfg.FeedbackStore)
	}
}
