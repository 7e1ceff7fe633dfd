// Package cache holds the Redis lookaside used to resolve users on the
// exercise and log endpoints without a Postgres round trip. The tier is
// optional: when no Redis URL is configured the services skip it.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps a Redis client. Access goes through typed methods
// (GetUser, SetUser); the raw client is not exposed.
type Cache struct {
	client *redis.Client
}

// New parses redisURL, connects, and verifies connectivity with a ping
// before returning.
func New(ctx context.Context, redisURL string) (*Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	// The cache only serves small hash reads on the log path; a modest
	// pool covers it.
	opt.PoolSize = 8
	opt.MinIdleConns = 1
	opt.PoolTimeout = 3 * time.Second
	opt.ConnMaxIdleTime = 10 * time.Minute

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Cache{client: client}, nil
}

// Ping checks Redis connectivity, for readiness probes.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the client's connection pool.
func (c *Cache) Close() error {
	return c.client.Close()
}
