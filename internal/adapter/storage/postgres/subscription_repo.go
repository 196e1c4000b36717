package postgres

import (
	"context"
	"errors"
	"fmt"

	"usdt-pay-verifier/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SubscriptionRepo implements ports.SubscriptionRepository.
type SubscriptionRepo struct {
	pool Pool
}

// NewSubscriptionRepo creates a new SubscriptionRepo.
func NewSubscriptionRepo(pool Pool) *SubscriptionRepo {
	return &SubscriptionRepo{pool: pool}
}

// GetActive returns the newest active subscription row (expired or not by date).
func (r *SubscriptionRepo) GetActive(ctx context.Context, merchantID uuid.UUID) (*domain.Subscription, error) {
	query := `SELECT id, merchant_id, status, expires_at, created_at, updated_at
		FROM subscriptions WHERE merchant_id = $1 AND status = 'active'
		ORDER BY expires_at DESC LIMIT 1`

	s := &domain.Subscription{}
	err := r.pool.QueryRow(ctx, query, merchantID).Scan(
		&s.ID, &s.MerchantID, &s.Status, &s.ExpiresAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active subscription: %w", err)
	}
	return s, nil
}

// MarkExpired flips an active subscription to expired within tx.
func (r *SubscriptionRepo) MarkExpired(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	query := `UPDATE subscriptions SET status = 'expired', updated_at = NOW()
		WHERE id = $1 AND status = 'active'`

	if _, err := tx.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("mark subscription expired: %w", err)
	}
	return nil
}
