// Package cache holds the advisory, redis-backed capabilities: a per-client
// request counter for rate limiting and a short-TTL response cache. Neither is
// a source of truth; both degrade to no-ops when redis is not configured.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter answers whether a client may make another request in the
// current window.
type RateLimiter interface {
	Allow(ctx context.Context, clientKey string) (bool, error)
}

// ResponseCache stores rendered GET response bodies for a short TTL.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, body []byte)
}

type redisRateLimiter struct {
	rdb    *redis.Client
	window time.Duration
	max    int64
}

// NewRateLimiter counts requests per client in fixed windows of the given
// size. A nil client allows everything.
func NewRateLimiter(rdb *redis.Client, window time.Duration, max int64) RateLimiter {
	return &redisRateLimiter{rdb: rdb, window: window, max: max}
}

func (l *redisRateLimiter) Allow(ctx context.Context, clientKey string) (bool, error) {
	if l.rdb == nil {
		return true, nil
	}

	key := fmt.Sprintf("rate_limit:client:%s", clientKey)

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to count request in redis: %w", err)
	}

	// First hit in the window starts the clock.
	if count == 1 {
		if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	return count <= l.max, nil
}

type redisResponseCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewResponseCache caches response bodies keyed by method+path. A nil client
// never hits.
func NewResponseCache(rdb *redis.Client, ttl time.Duration) ResponseCache {
	return &redisResponseCache{rdb: rdb, ttl: ttl}
}

func (c *redisResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c.rdb == nil {
		return nil, false
	}

	body, err := c.rdb.Get(ctx, "response_cache:"+key).Bytes()
	if err != nil {
		return nil, false
	}
	return body, true
}

func (c *redisResponseCache) Set(ctx context.Context, key string, body []byte) {
	if c.rdb == nil {
		return
	}
	c.rdb.SetEx(ctx, "response_cache:"+key, body, c.ttl)
}
