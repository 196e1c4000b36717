package service

import (
	"context"
	"fmt"
	"time"

	"usdt-pay-verifier/internal/core/domain"
	"usdt-pay-verifier/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	msgOrderNotFound   = "Order ID not found in recent Binance Pay history"
	msgUnknownTxTime   = "Transaction time could not be determined"
	defaultHistorySize = 50
)

// BinancePayVerifierImpl implements ports.BinancePayVerifier.
type BinancePayVerifierImpl struct {
	ledger       ports.LedgerClient
	historyLimit int
	now          func() time.Time
	log          zerolog.Logger
}

// NewBinancePayVerifier creates a verifier scanning the last historyLimit entries.
func NewBinancePayVerifier(ledger ports.LedgerClient, historyLimit int, log zerolog.Logger) *BinancePayVerifierImpl {
	if historyLimit <= 0 {
		historyLimit = defaultHistorySize
	}
	return &BinancePayVerifierImpl{
		ledger:       ledger,
		historyLimit: historyLimit,
		now:          time.Now,
		log:          log,
	}
}

// Verify scans recent Pay history for transactionID. First match wins.
func (v *BinancePayVerifierImpl) Verify(
	ctx context.Context,
	creds domain.Credentials,
	transactionID string,
	expected decimal.Decimal,
	window time.Duration,
) domain.VerificationResult {
	txns, err := v.ledger.FetchPayTransactions(ctx, creds, v.historyLimit)
	if err != nil {
		v.log.Warn().Err(err).Str("transaction_id", transactionID).Msg("binance pay history unavailable")
		return ledgerFailure(err)
	}

	for _, tx := range txns {
		if !tx.Matches(transactionID) {
			continue
		}
		amount := tx.Amount

		if tx.Timestamp.IsZero() {
			return domain.Rejected(msgUnknownTxTime, &amount)
		}
		if age := v.now().Sub(tx.Timestamp); age > window {
			return domain.Rejected(fmt.Sprintf("Transaction is too old: made %s ago, window is %s",
				age.Truncate(time.Second), window), &amount)
		}
		if tx.Currency != domain.CurrencyUSDT {
			return domain.Rejected(fmt.Sprintf("Currency mismatch: expected %s, got %s",
				domain.CurrencyUSDT, tx.Currency), &amount)
		}
		if !domain.WithinTolerance(amount, expected) {
			return domain.Rejected(fmt.Sprintf("Amount mismatch: expected %s %s, got %s %s",
				expected.StringFixed(2), domain.CurrencyUSDT, amount.String(), tx.Currency), &amount)
		}
		return domain.Accepted(amount)
	}

	return domain.Rejected(msgOrderNotFound, nil)
}
