package ratelimit

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Limiter decides whether a request identified by key may proceed. When it
// may not, retryAfter tells the caller how long to wait. Close releases the
// backing connection, if any.
type Limiter interface {
	io.Closer
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}

// New returns a Redis backed limiter when settings.RedisAddr is set and an
// in-memory one otherwise.
func New(ctx context.Context, settings config.RateLimitSettings, logger logger.Logger) (Limiter, error) {
	if settings.RedisAddr == "" {
		logger.Info("Using in-memory rate limiter")
		return NewMemoryLimiter(settings.RequestsPerMinute, settings.Burst), nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     settings.RedisAddr,
		Password: settings.RedisPassword,
		DB:       settings.RedisDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", settings.RedisAddr, err)
	}

	logger.Info("Using redis rate limiter at ", settings.RedisAddr)
	return NewRedisLimiter(rdb, settings.RequestsPerMinute+settings.Burst, time.Minute), nil
}
