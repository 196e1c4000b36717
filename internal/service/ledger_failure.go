package service

import (
	"errors"

	"usdt-pay-verifier/internal/core/domain"
)

const genericLedgerFailure = "Unable to verify transaction at this time"

// ledgerFailure turns a relay or upstream error into a rejected result. The
// caller sees only the safe message; the raw error is kept as Detail for the log.
func ledgerFailure(err error) domain.VerificationResult {
	var le *domain.LedgerError
	if errors.As(err, &le) {
		return domain.VerificationResult{Error: le.SafeMessage(), Detail: le.Error()}
	}
	return domain.VerificationResult{Error: genericLedgerFailure, Detail: err.Error()}
}
