package ports

import (
	"context"
	"time"

	"usdt-pay-verifier/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MerchantRepository defines read access to merchants.
type MerchantRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error)
}

// AccessTokenRepository resolves and revokes merchant API tokens.
type AccessTokenRepository interface {
	GetByHash(ctx context.Context, tokenHash string) (*domain.AccessToken, error)
	// DeactivateByMerchant revokes every active token of the merchant inside tx.
	DeactivateByMerchant(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID) (int64, error)
}

// SubscriptionRepository defines licensing persistence.
type SubscriptionRepository interface {
	// GetActive returns the merchant's newest row with status=active, or nil.
	GetActive(ctx context.Context, merchantID uuid.UUID) (*domain.Subscription, error)
	MarkExpired(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

// PaymentConfigRepository loads a merchant's payment setup.
type PaymentConfigRepository interface {
	GetByMerchantID(ctx context.Context, merchantID uuid.UUID) (*domain.PaymentConfig, error)
}

// UsedTransactionRepository is the durable idempotency store.
type UsedTransactionRepository interface {
	Exists(ctx context.Context, merchantID uuid.UUID, transactionID string) (bool, error)
	// Insert reports false when the pair was already present.
	Insert(ctx context.Context, tx pgx.Tx, used *domain.UsedTransaction) (bool, error)
	Delete(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, transactionID string) (bool, error)
}

// VerificationLogRepository is the append-only verification audit.
type VerificationLogRepository interface {
	Create(ctx context.Context, log *domain.VerificationLog) error
	CreateTx(ctx context.Context, tx pgx.Tx, log *domain.VerificationLog) error
	DeleteByTransaction(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, transactionID string) (int64, error)
	PurgeBefore(ctx context.Context, before time.Time) (int64, error)
	ListByMerchant(ctx context.Context, params VerificationLogListParams) ([]domain.VerificationLog, int64, error)
}

// VerificationLogListParams holds filter + pagination for listing logs.
type VerificationLogListParams struct {
	MerchantID    uuid.UUID
	TransactionID *string
	Status        *domain.VerificationStatus
	Page          int
	PageSize      int
}

// WebhookRepository records webhook delivery attempts.
type WebhookRepository interface {
	Create(ctx context.Context, delivery *domain.WebhookDelivery) error
}

// AuditRepository persists admin audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
