// Package ratelimit provides a Redis-backed sliding-window rate limiter,
// used to slow down credential guessing on the auth endpoints.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limit is a per-key request budget over a window.
type Limit struct {
	Requests int
	Window   time.Duration
}

type RedisRateLimiter struct {
	client *redis.Client
	prefix string
}

func NewRedisRateLimiter(client *redis.Client) *RedisRateLimiter {
	return &RedisRateLimiter{client: client, prefix: "ratelimit:"}
}

// Allow records one hit for key and reports whether it stays within the
// limit. The window slides: hits older than the window are discarded first.
func (l *RedisRateLimiter) Allow(ctx context.Context, key string, limit Limit) (bool, error) {
	now := time.Now()
	redisKey := fmt.Sprintf("%s%s:%d", l.prefix, key, int64(limit.Window.Seconds()))
	windowStart := now.Add(-limit.Window).UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart))
	zcard := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixNano()), Member: now.UnixNano()})
	pipe.Expire(ctx, redisKey, limit.Window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute rate limit pipeline: %w", err)
	}

	return zcard.Val() < int64(limit.Requests), nil
}

// Reset clears the window for key.
func (l *RedisRateLimiter) Reset(ctx context.Context, key string, limit Limit) error {
	redisKey := fmt.Sprintf("%s%s:%d", l.prefix, key, int64(limit.Window.Seconds()))
	if err := l.client.Del(ctx, redisKey).Err(); err != nil {
		return fmt.Errorf("failed to reset rate limit: %w", err)
	}
	return nil
}
