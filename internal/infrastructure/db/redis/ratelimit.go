package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window request counter backed by Redis.
// Key format: ratelimit:<scope>:<id>:<window_start_unix>
type RateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	clock  clockwork.Clock
}

// NewRateLimiter allows limit hits per id within each window.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration, clock clockwork.Clock) *RateLimiter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &RateLimiter{client: client, limit: int64(limit), window: window, clock: clock}
}

// Allow records a hit for id under scope and reports whether it is within the
// limit. The returned duration is how long until the current window resets.
func (l *RateLimiter) Allow(ctx context.Context, scope, id string) (bool, time.Duration, error) {
	now := l.clock.Now()
	start := now.Truncate(l.window)
	key := fmt.Sprintf("ratelimit:%s:%s:%d", scope, id, start.Unix())

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, l.window)
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("rate limit: %w", err)
	}

	reset := start.Add(l.window).Sub(now)
	return incr.Val() <= l.limit, reset, nil
}
