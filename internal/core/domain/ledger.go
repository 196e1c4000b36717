package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PayTransaction is a normalised Binance Pay history entry.
// OrderID is the highest-priority identifier; IDs holds every distinct alias.
type PayTransaction struct {
	OrderID   string
	IDs       []string
	Amount    decimal.Decimal
	Currency  string
	Timestamp time.Time
}

// Matches reports whether id equals any of the entry's identifiers.
func (t PayTransaction) Matches(id string) bool {
	if id == "" {
		return false
	}
	if t.OrderID == id {
		return true
	}
	for _, alias := range t.IDs {
		if alias == id {
			return true
		}
	}
	return false
}

// OnChainTransfer is a normalised explorer lookup: the token recipient and
// amount, whether read from transfer call data or the native value.
// Token is the called contract for token transfers and empty for native value.
type OnChainTransfer struct {
	Hash      string
	Token     string
	Recipient string
	Amount    decimal.Decimal
}

// Deposit is a normalised exchange deposit-history record.
type Deposit struct {
	TxHash     string
	Amount     decimal.Decimal
	Coin       string
	Network    string
	InsertTime time.Time
}

// LedgerErrorKind classifies upstream failures.
type LedgerErrorKind string

const (
	LedgerUnreachable   LedgerErrorKind = "unreachable"
	LedgerMalformed     LedgerErrorKind = "malformed"
	LedgerRejected      LedgerErrorKind = "rejected"
	LedgerGeoRestricted LedgerErrorKind = "geo_restricted"
)

var ledgerSafeMessages = map[LedgerErrorKind]string{
	LedgerUnreachable:   "Unable to reach payment provider",
	LedgerMalformed:     "Invalid response from payment provider",
	LedgerRejected:      "Payment provider rejected the request",
	LedgerGeoRestricted: "Payment provider is unavailable from this region",
}

// LedgerError is any failure talking to the relay or the upstream ledger.
// Detail may carry raw upstream text and stays internal.
type LedgerError struct {
	Kind   LedgerErrorKind
	Detail string
}

func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger %s: %s", e.Kind, e.Detail)
}

// SafeMessage is the caller-facing text for this failure.
func (e *LedgerError) SafeMessage() string {
	if msg, ok := ledgerSafeMessages[e.Kind]; ok {
		return msg
	}
	return "Unable to verify transaction at this time"
}
