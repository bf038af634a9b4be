// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// redisSummaryCache implements the adapter.SummaryCache interface on Redis.
type redisSummaryCache struct {
	client *redis.Client
}

// NewRedisSummaryCache creates a summary cache backed by the given Redis client.
func NewRedisSummaryCache(client *redis.Client) adapter.SummaryCache {
	return &redisSummaryCache{
		client: client,
	}
}

// Get returns the cached payload for the key, or ok=false on a miss.
func (c *redisSummaryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}
	return payload, true, nil
}

// Set stores a payload under the key with a TTL.
func (c *redisSummaryCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return nil
}

// Invalidate removes every cached summary for a user.
func (c *redisSummaryCache) Invalidate(ctx context.Context, userID string) error {
	pattern := fmt.Sprintf("summary:%s:*", userID)
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cache key %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys for user %s: %w", userID, err)
	}
	return nil
}
