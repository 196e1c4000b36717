package ports

import (
	"context"
	"time"

	"usdt-pay-verifier/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles admin JWT operations.
type TokenService interface {
	Generate(subject string, role string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
	Role    string
}

// RoleAdmin is the only role accepted on the admin API.
const RoleAdmin = "admin"

// UsedTransactionCache is the Redis fast path in front of the idempotency store.
type UsedTransactionCache interface {
	IsUsed(ctx context.Context, key string) (bool, error)
	MarkUsed(ctx context.Context, key string, ttl time.Duration) error
	Forget(ctx context.Context, key string) error
}

// InflightLock claims a key for the duration of one verification.
type InflightLock interface {
	// Acquire returns false when another holder already owns the key.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// LedgerClient fetches upstream records through the relay.
type LedgerClient interface {
	FetchPayTransactions(ctx context.Context, creds domain.Credentials, limit int) ([]domain.PayTransaction, error)
	// FetchOnChainTransfer returns nil, nil when the hash is unknown to the explorer.
	FetchOnChainTransfer(ctx context.Context, txHash string) (*domain.OnChainTransfer, error)
	FetchDeposits(ctx context.Context, creds domain.Credentials, since time.Time) ([]domain.Deposit, error)
}

// BinancePayVerifier decides a Binance Pay claim.
type BinancePayVerifier interface {
	Verify(ctx context.Context, creds domain.Credentials, transactionID string, expected decimal.Decimal, window time.Duration) domain.VerificationResult
}

// BEP20Verifier decides a BSC token transfer claim.
type BEP20Verifier interface {
	Verify(ctx context.Context, creds domain.Credentials, wallet string, transactionID string, expected decimal.Decimal, window time.Duration) domain.VerificationResult
}

// VerificationMetrics observes orchestrator outcomes.
type VerificationMetrics interface {
	ObserveVerification(paymentType domain.PaymentType, outcome string, elapsed time.Duration)
}

// --- Service Ports (Business Logic) ---

// MerchantAuthService resolves callers to merchants.
type MerchantAuthService interface {
	AuthenticateToken(ctx context.Context, rawToken string) (*domain.Merchant, error)
	ResolvePublicMerchant(ctx context.Context, merchantID uuid.UUID) (*domain.Merchant, error)
}

// VerificationService runs the verification state machine for a resolved merchant.
type VerificationService interface {
	Verify(ctx context.Context, cmd VerifyCommand) (*domain.VerificationResult, error)
}

// VerifyCommand holds validated input for a verification.
type VerifyCommand struct {
	MerchantID     uuid.UUID
	TransactionID  string
	PaymentType    domain.PaymentType
	ExpectedAmount decimal.Decimal
	OrderID        *string
	RequestIP      string
}

// PaymentConfigService serves the public payment details of a merchant.
type PaymentConfigService interface {
	GetPublicConfig(ctx context.Context, merchantID uuid.UUID) (*domain.PublicPaymentConfig, error)
}

// AdminService covers the privileged out-of-band operations.
type AdminService interface {
	Login(ctx context.Context, username, password string) (string, time.Time, error)
	ReleaseTransaction(ctx context.Context, merchantID uuid.UUID, transactionID string) (*ReleaseResult, error)
	ListVerificationLogs(ctx context.Context, params VerificationLogListParams) ([]domain.VerificationLog, int64, error)
	PurgeVerificationLogs(ctx context.Context, before time.Time) (int64, error)
}

// ReleaseResult reports what a release removed.
type ReleaseResult struct {
	MerchantID    uuid.UUID
	TransactionID string
	LogsDeleted   int64
}

// WebhookNotifier delivers the verified event out of band.
type WebhookNotifier interface {
	NotifyVerified(merchantID uuid.UUID, webhookURL string, event domain.VerifiedEvent)
}

// AuditService records admin actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
