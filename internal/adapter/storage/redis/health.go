package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const healthKey = "verifier:health"

// HealthCheck implements ports.HealthChecker for Redis. It writes a short-lived
// key, so a read-only replica (where SET NX claims would fail) reports unhealthy.
type HealthCheck struct {
	client *goredis.Client
}

// NewHealthCheck creates a Redis health checker.
func NewHealthCheck(client *goredis.Client) *HealthCheck {
	return &HealthCheck{client: client}
}

// Ping performs a write round trip.
func (h *HealthCheck) Ping(ctx context.Context) error {
	stamp := strconv.FormatInt(time.Now().UnixNano(), 10)
	if err := h.client.Set(ctx, healthKey, stamp, 10*time.Second).Err(); err != nil {
		return fmt.Errorf("redis write check: %w", err)
	}
	return nil
}

func (h *HealthCheck) Name() string { return "redis" }
