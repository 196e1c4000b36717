package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"usdt-pay-verifier/internal/adapter/chain"
	"usdt-pay-verifier/internal/core/domain"
	"usdt-pay-verifier/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	msgNotOnChain         = "Transaction not found on-chain"
	msgTxNotFound         = "Transaction not found"
	msgRecipientMismatch  = "Recipient address does not match merchant wallet"
	msgNotTokenTransfer   = "Transaction is not a USDT transfer"
	msgDepositCoinInvalid = "Deposit is not USDT"
)

// BEP20VerifierImpl implements ports.BEP20Verifier.
// Tier 1 reads the chain; tier 2 falls back to the merchant's deposit history.
type BEP20VerifierImpl struct {
	ledger        ports.LedgerClient
	tokenContract string
	now           func() time.Time
	log           zerolog.Logger
}

// NewBEP20Verifier creates a verifier. tokenContract, when set, must be the
// called contract of on-chain token transfers.
func NewBEP20Verifier(ledger ports.LedgerClient, tokenContract string, log zerolog.Logger) *BEP20VerifierImpl {
	return &BEP20VerifierImpl{
		ledger:        ledger,
		tokenContract: tokenContract,
		now:           time.Now,
		log:           log,
	}
}

// Verify decides transactionID against wallet.
func (v *BEP20VerifierImpl) Verify(
	ctx context.Context,
	creds domain.Credentials,
	wallet string,
	transactionID string,
	expected decimal.Decimal,
	window time.Duration,
) domain.VerificationResult {
	transfer, err := v.ledger.FetchOnChainTransfer(ctx, transactionID)
	if err != nil {
		// Inconclusive; the deposit tier decides.
		v.log.Debug().Err(err).Str("transaction_id", transactionID).Msg("on-chain lookup failed, trying deposit history")
		transfer = nil
	}
	if transfer != nil {
		return v.decideOnChain(transfer, wallet, expected)
	}

	if !creds.Complete() {
		return domain.Rejected(msgNotOnChain, nil)
	}

	deposits, err := v.ledger.FetchDeposits(ctx, creds, v.now().Add(-window))
	if err != nil {
		v.log.Warn().Err(err).Str("transaction_id", transactionID).Msg("deposit history unavailable")
		return ledgerFailure(err)
	}

	for _, d := range deposits {
		if !strings.EqualFold(d.TxHash, transactionID) {
			continue
		}
		amount := d.Amount
		if d.Coin != "" && d.Coin != domain.CurrencyUSDT {
			return domain.Rejected(msgDepositCoinInvalid, &amount)
		}
		if !domain.WithinTolerance(amount, expected) {
			return amountMismatch(expected, amount)
		}
		return domain.Accepted(amount)
	}
	return domain.Rejected(msgTxNotFound, nil)
}

// decideOnChain applies no time window: the chain record is immutable proof.
func (v *BEP20VerifierImpl) decideOnChain(transfer *domain.OnChainTransfer, wallet string, expected decimal.Decimal) domain.VerificationResult {
	amount := transfer.Amount
	if transfer.Token != "" && v.tokenContract != "" && !chain.SameAddress(transfer.Token, v.tokenContract) {
		return domain.VerificationResult{
			Error:  msgNotTokenTransfer,
			Detail: fmt.Sprintf("%s: token contract %s", msgNotTokenTransfer, transfer.Token),
		}
	}
	if !chain.SameAddress(transfer.Recipient, wallet) {
		return domain.Rejected(msgRecipientMismatch, &amount)
	}
	if !domain.WithinTolerance(amount, expected) {
		return amountMismatch(expected, amount)
	}
	return domain.Accepted(amount)
}

func amountMismatch(expected, actual decimal.Decimal) domain.VerificationResult {
	return domain.Rejected(fmt.Sprintf("Amount mismatch: expected %s %s, got %s %s",
		expected.StringFixed(2), domain.CurrencyUSDT, actual.String(), domain.CurrencyUSDT), &actual)
}
