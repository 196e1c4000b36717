package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentType selects the ledger a transaction is checked against.
type PaymentType string

const (
	PaymentTypeBinancePay PaymentType = "binance_pay"
	PaymentTypeBEP20      PaymentType = "bep20"
)

// Valid reports whether t is a known payment type.
func (t PaymentType) Valid() bool {
	return t == PaymentTypeBinancePay || t == PaymentTypeBEP20
}

// CurrencyUSDT is the only settlement currency accepted.
const CurrencyUSDT = "USDT"

// AmountTolerance is the exclusive bound on |actual - expected|.
var AmountTolerance = decimal.New(1, -2)

// WithinTolerance reports |actual - expected| < AmountTolerance.
func WithinTolerance(actual, expected decimal.Decimal) bool {
	return actual.Sub(expected).Abs().LessThan(AmountTolerance)
}

// NormalizeTransactionID canonicalises an identifier for idempotency keys.
// Chain hashes are hex and compared case-insensitively; Binance Pay ids are opaque.
func NormalizeTransactionID(t PaymentType, id string) string {
	id = strings.TrimSpace(id)
	if t == PaymentTypeBEP20 {
		return strings.ToLower(id)
	}
	return id
}

// IsChainTxHash reports whether id looks like a BSC transaction hash (0x + 64 hex).
func IsChainTxHash(id string) bool {
	if len(id) != 66 || (id[:2] != "0x" && id[:2] != "0X") {
		return false
	}
	for _, r := range id[2:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// VerificationResult is the verdict of one verifier run.
// Detail is internal diagnostic text and is never returned to callers.
type VerificationResult struct {
	Verified bool
	Amount   *decimal.Decimal
	Error    string
	Detail   string
}

// Accepted builds a positive result.
func Accepted(amount decimal.Decimal) VerificationResult {
	return VerificationResult{Verified: true, Amount: &amount}
}

// Rejected builds a negative result. amount may be nil.
func Rejected(msg string, amount *decimal.Decimal) VerificationResult {
	return VerificationResult{Error: msg, Amount: amount}
}

// AmountFloat renders Amount for JSON output.
func (r VerificationResult) AmountFloat() *float64 {
	if r.Amount == nil {
		return nil
	}
	f := r.Amount.InexactFloat64()
	return &f
}

// InternalMessage is what goes into the audit row: detail when present, else the public error.
func (r VerificationResult) InternalMessage() string {
	if r.Detail != "" {
		return r.Detail
	}
	return r.Error
}

// VerificationStatus is the audit outcome.
type VerificationStatus string

const (
	VerificationStatusSuccess VerificationStatus = "success"
	VerificationStatusFailed  VerificationStatus = "failed"
)

// VerificationLog is one append-only audit row per adjudicated attempt.
type VerificationLog struct {
	ID             uuid.UUID          `json:"id"`
	MerchantID     uuid.UUID          `json:"merchant_id"`
	TransactionID  string             `json:"transaction_id"`
	PaymentType    PaymentType        `json:"payment_type"`
	ExpectedAmount decimal.Decimal    `json:"expected_amount"`
	ActualAmount   *decimal.Decimal   `json:"actual_amount,omitempty"`
	Status         VerificationStatus `json:"status"`
	ErrorMessage   *string            `json:"error_message,omitempty"`
	OrderID        *string            `json:"order_id,omitempty"`
	RequestIP      string             `json:"request_ip"`
	CreatedAt      time.Time          `json:"created_at"`
}

// UsedTransaction marks a (merchant, transaction) pair as consumed.
type UsedTransaction struct {
	MerchantID    uuid.UUID       `json:"merchant_id"`
	TransactionID string          `json:"transaction_id"`
	PaymentType   PaymentType     `json:"payment_type"`
	Amount        decimal.Decimal `json:"amount"`
	VerifiedAt    time.Time       `json:"verified_at"`
}

// UsedTransactionKey is the cache/lock key for a pair.
func UsedTransactionKey(merchantID uuid.UUID, transactionID string) string {
	return merchantID.String() + ":" + transactionID
}
