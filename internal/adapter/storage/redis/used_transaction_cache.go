package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// UsedTransactionCache implements ports.UsedTransactionCache.
// It only ever answers "known used"; a miss falls through to PostgreSQL.
type UsedTransactionCache struct {
	client *goredis.Client
	prefix string
}

// NewUsedTransactionCache creates a Redis-backed used-transaction cache.
func NewUsedTransactionCache(client *goredis.Client) *UsedTransactionCache {
	return &UsedTransactionCache{
		client: client,
		prefix: "used_tx:",
	}
}

// IsUsed reports whether key was marked used and has not expired.
func (c *UsedTransactionCache) IsUsed(ctx context.Context, key string) (bool, error) {
	err := c.client.Get(ctx, c.prefix+key).Err()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis used tx get: %w", err)
	}
	return true, nil
}

// MarkUsed records key as consumed for ttl.
func (c *UsedTransactionCache) MarkUsed(ctx context.Context, key string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis used tx set: %w", err)
	}
	return nil
}

// Forget drops key after an administrative release.
func (c *UsedTransactionCache) Forget(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis used tx del: %w", err)
	}
	return nil
}
