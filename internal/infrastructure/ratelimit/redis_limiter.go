package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// RedisLimiter is a fixed-window counter shared by every server instance
// pointing at the same Redis. It owns the client and closes it on Close.
type RedisLimiter struct {
	rdb    redis.UniversalClient
	limit  int64
	window time.Duration
}

func NewRedisLimiter(rdb redis.UniversalClient, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, limit: int64(limit), window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	k := keyPrefix + key
	count, err := l.rdb.Incr(ctx, k).Result()
	if err != nil {
		return false, 0, fmt.Errorf("rate limit counter: %w", err)
	}

	ttl, err := l.rdb.TTL(ctx, k).Result()
	if err != nil {
		return false, 0, fmt.Errorf("rate limit ttl: %w", err)
	}
	// A key without expiry would block the client forever.
	if count == 1 || ttl < 0 {
		if err := l.rdb.Expire(ctx, k, l.window).Err(); err != nil {
			return false, 0, fmt.Errorf("rate limit expire: %w", err)
		}
		ttl = l.window
	}

	if count > l.limit {
		return false, ttl, nil
	}
	return true, 0, nil
}

func (l *RedisLimiter) Close() error {
	if err := l.rdb.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}
	return nil
}
