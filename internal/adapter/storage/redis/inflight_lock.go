package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// InflightLock implements ports.InflightLock using Redis SET NX.
// The TTL bounds how long a crashed holder can block the key.
type InflightLock struct {
	client *goredis.Client
	prefix string
}

// NewInflightLock creates a new Redis-backed in-flight lock.
func NewInflightLock(client *goredis.Client) *InflightLock {
	return &InflightLock{
		client: client,
		prefix: "inflight:",
	}
}

// Acquire claims key. It returns false if another request holds it.
func (l *InflightLock) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := l.client.SetArgs(ctx, l.prefix+key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis inflight acquire: %w", err)
	}
	return result == "OK", nil
}

// Release frees key.
func (l *InflightLock) Release(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis inflight release: %w", err)
	}
	return nil
}
