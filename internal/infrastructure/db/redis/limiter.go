package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const windowSize = time.Minute

// Limiter implements a fixed-window request counter backed by Redis.
// Key format: ratelimit:<key>:<window_start_unix>
type Limiter struct {
	client *redis.Client
}

// NewLimiter creates a Limiter wrapping the given Redis client.
func NewLimiter(client *redis.Client) *Limiter {
	return &Limiter{client: client}
}

// Allow increments the counter for key in the current window and reports
// whether the count stays within max.
func (l *Limiter) Allow(ctx context.Context, key string, max int) (bool, error) {
	redisKey := l.key(key, time.Now())

	n, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		// first hit in this window sets the expiry
		if err := l.client.Expire(ctx, redisKey, windowSize).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}

	return n <= int64(max), nil
}

func (l *Limiter) key(key string, now time.Time) string {
	window := now.Unix() - now.Unix()%int64(windowSize.Seconds())
	return fmt.Sprintf("ratelimit:%s:%d", key, window)
}
