package redis

import (
	"context"
	"fmt"
	"time"
)

// Ping checks the connection.
func (r *redisImpl) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// IncrWithTTL increments key and applies ttl when the counter is created.
// Used for fixed-window rate limiting on public endpoints.
func (r *redisImpl) IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis incr: %w", err)
	}
	if count == 1 {
		if err := r.client.Expire(ctx, key, ttl).Err(); err != nil {
			return count, fmt.Errorf("redis expire: %w", err)
		}
	}
	return count, nil
}

// Close closes the underlying connection.
func (r *redisImpl) Close() error {
	return r.client.Close()
}
