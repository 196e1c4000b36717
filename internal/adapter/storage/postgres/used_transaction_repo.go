package postgres

import (
	"context"
	"fmt"

	"usdt-pay-verifier/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UsedTransactionRepo implements ports.UsedTransactionRepository.
type UsedTransactionRepo struct {
	pool Pool
}

// NewUsedTransactionRepo creates a new UsedTransactionRepo.
func NewUsedTransactionRepo(pool Pool) *UsedTransactionRepo {
	return &UsedTransactionRepo{pool: pool}
}

// Exists reports whether the pair has already been consumed.
func (r *UsedTransactionRepo) Exists(ctx context.Context, merchantID uuid.UUID, transactionID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM used_transactions WHERE merchant_id = $1 AND transaction_id = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, merchantID, transactionID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check used transaction: %w", err)
	}
	return exists, nil
}

// Insert consumes the pair. It returns false without error when a concurrent
// request already inserted it; the primary key is the linearization point.
func (r *UsedTransactionRepo) Insert(ctx context.Context, tx pgx.Tx, used *domain.UsedTransaction) (bool, error) {
	query := `INSERT INTO used_transactions (merchant_id, transaction_id, payment_type, amount, verified_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (merchant_id, transaction_id) DO NOTHING`

	tag, err := tx.Exec(ctx, query,
		used.MerchantID, used.TransactionID, used.PaymentType, used.Amount, used.VerifiedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert used transaction: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Delete removes the pair, reopening it for verification.
func (r *UsedTransactionRepo) Delete(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, transactionID string) (bool, error) {
	query := `DELETE FROM used_transactions WHERE merchant_id = $1 AND transaction_id = $2`

	tag, err := tx.Exec(ctx, query, merchantID, transactionID)
	if err != nil {
		return false, fmt.Errorf("delete used transaction: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
