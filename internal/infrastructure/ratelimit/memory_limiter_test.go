//go:build unit
// +build unit

package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_BurstThenReject(t *testing.T) {
	l := NewMemoryLimiter(60, 3)
	now := time.Now()
	l.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		ok, _, err := l.Allow(context.Background(), "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok, "request %d should pass", i)
	}

	ok, retry, err := l.Allow(context.Background(), "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Greater(t, retry, time.Duration(0))
	assert.LessOrEqual(t, retry, time.Second)

	// Another client has its own bucket.
	ok, _, err = l.Allow(context.Background(), "5.6.7.8")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLimiter_Refill(t *testing.T) {
	l := NewMemoryLimiter(60, 1)
	now := time.Now()
	l.now = func() time.Time { return now }

	ok, _, _ := l.Allow(context.Background(), "k")
	assert.True(t, ok)
	ok, _, _ = l.Allow(context.Background(), "k")
	assert.False(t, ok)

	now = now.Add(time.Second)
	ok, _, _ = l.Allow(context.Background(), "k")
	assert.True(t, ok)
}

func TestMemoryLimiter_SweepsIdleVisitors(t *testing.T) {
	l := NewMemoryLimiter(60, 1)
	now := time.Now()
	l.now = func() time.Time { return now }

	_, _, _ = l.Allow(context.Background(), "a")
	_, _, _ = l.Allow(context.Background(), "b")
	assert.Equal(t, 2, l.size())

	now = now.Add(idleTTL + time.Minute)
	_, _, _ = l.Allow(context.Background(), "c")
	assert.Equal(t, 1, l.size())
}

func TestNew_WithoutRedisUsesMemory(t *testing.T) {
	lim, err := New(context.Background(), config.RateLimitSettings{RequestsPerMinute: 10, Burst: 2}, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	assert.IsType(t, &MemoryLimiter{}, lim)
	assert.NoError(t, lim.Close())

	// Closing does not stop an in-memory limiter.
	ok, _, err := lim.Allow(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
}
