package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// IRedis defines the interface for the Redis operations this service uses.
// Implementations are safe for concurrent use.
type IRedis interface {
	Ping(ctx context.Context) error
	// IncrWithTTL increments the counter at key and sets its expiry on first
	// increment. Returns the counter value after incrementing.
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
	Close() error
}

// NewRedis creates a new Redis client.
func NewRedis(cfg RedisConfig) (IRedis, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("redis: host is required")
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &redisImpl{client: client}, nil
}
