package postgres

import (
	"context"
	"errors"
	"fmt"

	"usdt-pay-verifier/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MerchantRepo implements ports.MerchantRepository.
type MerchantRepo struct {
	pool Pool
}

// NewMerchantRepo creates a new MerchantRepo.
func NewMerchantRepo(pool Pool) *MerchantRepo {
	return &MerchantRepo{pool: pool}
}

// GetByID fetches a merchant by its UUID.
func (r *MerchantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error) {
	query := `SELECT id, name, status, created_at, updated_at FROM merchants WHERE id = $1`

	m := &domain.Merchant{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get merchant by id: %w", err)
	}
	return m, nil
}

// AccessTokenRepo implements ports.AccessTokenRepository.
type AccessTokenRepo struct {
	pool Pool
}

// NewAccessTokenRepo creates a new AccessTokenRepo.
func NewAccessTokenRepo(pool Pool) *AccessTokenRepo {
	return &AccessTokenRepo{pool: pool}
}

// GetByHash fetches a token by its SHA-256 digest, active or not.
func (r *AccessTokenRepo) GetByHash(ctx context.Context, tokenHash string) (*domain.AccessToken, error) {
	query := `SELECT id, merchant_id, token_hash, active, created_at, revoked_at
		FROM access_tokens WHERE token_hash = $1`

	t := &domain.AccessToken{}
	err := r.pool.QueryRow(ctx, query, tokenHash).Scan(
		&t.ID, &t.MerchantID, &t.TokenHash, &t.Active, &t.CreatedAt, &t.RevokedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get access token by hash: %w", err)
	}
	return t, nil
}

// DeactivateByMerchant revokes all active tokens of a merchant within tx.
func (r *AccessTokenRepo) DeactivateByMerchant(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID) (int64, error) {
	query := `UPDATE access_tokens SET active = FALSE, revoked_at = NOW()
		WHERE merchant_id = $1 AND active = TRUE`

	tag, err := tx.Exec(ctx, query, merchantID)
	if err != nil {
		return 0, fmt.Errorf("deactivate access tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
