package postgres

import (
	"context"
	"errors"
	"fmt"
)

// errSchemaMissing means the database answers but migrations have not run.
var errSchemaMissing = errors.New("used_transactions table missing, run migrations")

// HealthCheck implements ports.HealthChecker for PostgreSQL. Beyond
// connectivity it requires the idempotency table to exist.
type HealthCheck struct {
	pool Pool
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping checks connectivity and schema presence.
func (h *HealthCheck) Ping(ctx context.Context) error {
	var present bool
	if err := h.pool.QueryRow(ctx, `SELECT to_regclass('used_transactions') IS NOT NULL`).Scan(&present); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}
	if !present {
		return errSchemaMissing
	}
	return nil
}

func (h *HealthCheck) Name() string { return "postgresql" }
