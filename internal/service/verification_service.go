package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"usdt-pay-verifier/config"
	"usdt-pay-verifier/internal/core/domain"
	"usdt-pay-verifier/internal/core/ports"
	"usdt-pay-verifier/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Metric outcomes.
const (
	OutcomeVerified   = "verified"
	OutcomeRejected   = "rejected"
	OutcomeUsed       = "already_used"
	OutcomeInProgress = "in_progress"
	OutcomeUnlicensed = "unlicensed"
	OutcomeNoConfig   = "not_configured"
	OutcomeError      = "error"
)

// VerificationDeps groups everything the orchestrator talks to.
type VerificationDeps struct {
	Subscriptions ports.SubscriptionRepository
	Tokens        ports.AccessTokenRepository
	Configs       ports.PaymentConfigRepository
	Used          ports.UsedTransactionRepository
	Logs          ports.VerificationLogRepository
	UsedCache     ports.UsedTransactionCache
	Inflight      ports.InflightLock
	Transactor    ports.DBTransactor
	Encryption    ports.EncryptionService
	BinancePay    ports.BinancePayVerifier
	BEP20         ports.BEP20Verifier
	Notifier      ports.WebhookNotifier
	Metrics       ports.VerificationMetrics
	Config        config.VerificationConfig
}

// VerificationServiceImpl implements ports.VerificationService.
type VerificationServiceImpl struct {
	subs       ports.SubscriptionRepository
	tokens     ports.AccessTokenRepository
	configs    ports.PaymentConfigRepository
	used       ports.UsedTransactionRepository
	logs       ports.VerificationLogRepository
	usedCache  ports.UsedTransactionCache
	inflight   ports.InflightLock
	transactor ports.DBTransactor
	encSvc     ports.EncryptionService
	binancePay ports.BinancePayVerifier
	bep20      ports.BEP20Verifier
	notifier   ports.WebhookNotifier
	metrics    ports.VerificationMetrics
	cfg        config.VerificationConfig
	now        func() time.Time
	log        zerolog.Logger
}

// NewVerificationService creates a new VerificationServiceImpl.
func NewVerificationService(deps VerificationDeps, log zerolog.Logger) *VerificationServiceImpl {
	return &VerificationServiceImpl{
		subs:       deps.Subscriptions,
		tokens:     deps.Tokens,
		configs:    deps.Configs,
		used:       deps.Used,
		logs:       deps.Logs,
		usedCache:  deps.UsedCache,
		inflight:   deps.Inflight,
		transactor: deps.Transactor,
		encSvc:     deps.Encryption,
		binancePay: deps.BinancePay,
		bep20:      deps.BEP20,
		notifier:   deps.Notifier,
		metrics:    deps.Metrics,
		cfg:        deps.Config,
		now:        time.Now,
		log:        log,
	}
}

// Verify runs license, config, idempotency, dispatch and audit in that order.
// A nil error means the attempt was adjudicated; the result says how.
func (s *VerificationServiceImpl) Verify(ctx context.Context, cmd ports.VerifyCommand) (*domain.VerificationResult, error) {
	start := s.now()
	cmd.TransactionID = domain.NormalizeTransactionID(cmd.PaymentType, cmd.TransactionID)

	res, outcome, err := s.verify(ctx, cmd)
	if s.metrics != nil {
		s.metrics.ObserveVerification(cmd.PaymentType, outcome, s.now().Sub(start))
	}
	return res, err
}

func (s *VerificationServiceImpl) verify(ctx context.Context, cmd ports.VerifyCommand) (*domain.VerificationResult, string, error) {
	if err := s.checkLicense(ctx, cmd.MerchantID); err != nil {
		return nil, OutcomeUnlicensed, err
	}

	pc, err := s.configs.GetByMerchantID(ctx, cmd.MerchantID)
	if err != nil {
		return nil, OutcomeError, apperror.InternalError(fmt.Errorf("load payment config: %w", err))
	}
	if pc == nil || !pc.SupportsPaymentType(cmd.PaymentType) {
		return nil, OutcomeNoConfig, apperror.ErrNotConfigured()
	}

	key := domain.UsedTransactionKey(cmd.MerchantID, cmd.TransactionID)
	if used, err := s.alreadyUsed(ctx, cmd.MerchantID, cmd.TransactionID, key); err != nil {
		return nil, OutcomeError, err
	} else if used {
		return nil, OutcomeUsed, apperror.ErrTransactionUsed()
	}

	acquired, err := s.inflight.Acquire(ctx, key, s.cfg.InflightTTL)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("inflight lock unavailable, continuing without it")
		acquired = true
	} else if acquired {
		defer func() {
			if err := s.inflight.Release(context.WithoutCancel(ctx), key); err != nil {
				s.log.Warn().Err(err).Str("key", key).Msg("failed to release inflight lock")
			}
		}()
	}
	if !acquired {
		return nil, OutcomeInProgress, apperror.ErrVerificationInProgress()
	}

	creds := domain.Credentials{APIKey: pc.APIKey}
	if pc.APISecretEnc != "" {
		secret, err := s.encSvc.Decrypt(pc.APISecretEnc)
		if err != nil {
			return nil, OutcomeError, apperror.ErrEncryptionFailure(fmt.Errorf("decrypt api secret: %w", err))
		}
		creds.APISecret = secret
	}

	window := pc.TimeWindow(s.cfg.DefaultTimeWindow)
	var res domain.VerificationResult
	switch cmd.PaymentType {
	case domain.PaymentTypeBinancePay:
		res = s.binancePay.Verify(ctx, creds, cmd.TransactionID, cmd.ExpectedAmount, window)
	case domain.PaymentTypeBEP20:
		res = s.bep20.Verify(ctx, creds, pc.BEP20Wallet, cmd.TransactionID, cmd.ExpectedAmount, window)
	default:
		return nil, OutcomeNoConfig, apperror.ErrNotConfigured()
	}

	entry := s.newLogEntry(cmd, res)

	if !res.Verified {
		if err := s.logs.Create(ctx, entry); err != nil {
			return nil, OutcomeError, apperror.InternalError(fmt.Errorf("write verification log: %w", err))
		}
		s.log.Info().
			Str("merchant_id", cmd.MerchantID.String()).
			Str("transaction_id", cmd.TransactionID).
			Str("payment_type", string(cmd.PaymentType)).
			Str("status", string(domain.VerificationStatusFailed)).
			Str("reason", res.InternalMessage()).
			Msg("verification rejected")
		public := domain.Rejected(res.Error, res.Amount)
		return &public, OutcomeRejected, nil
	}

	if err := s.commitSuccess(ctx, cmd, res, entry); err != nil {
		if errors.Is(err, apperror.ErrTransactionUsed()) {
			return nil, OutcomeUsed, err
		}
		return nil, OutcomeError, err
	}

	if err := s.usedCache.MarkUsed(ctx, key, s.cfg.UsedCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to cache used transaction")
	}

	if pc.WebhookURL != nil && *pc.WebhookURL != "" && s.notifier != nil {
		s.notifier.NotifyVerified(cmd.MerchantID, *pc.WebhookURL, domain.VerifiedEvent{
			Event:         domain.EventPaymentVerified,
			OrderID:       cmd.OrderID,
			TransactionID: cmd.TransactionID,
			Amount:        res.Amount.InexactFloat64(),
			Currency:      domain.CurrencyUSDT,
			PaymentType:   cmd.PaymentType,
		})
	}

	s.log.Info().
		Str("merchant_id", cmd.MerchantID.String()).
		Str("transaction_id", cmd.TransactionID).
		Str("payment_type", string(cmd.PaymentType)).
		Str("status", string(domain.VerificationStatusSuccess)).
		Str("amount", res.Amount.String()).
		Msg("verification succeeded")

	return &res, OutcomeVerified, nil
}

// checkLicense enforces an active, unexpired subscription. On expiry the
// subscription is flipped and the merchant's tokens revoked atomically.
func (s *VerificationServiceImpl) checkLicense(ctx context.Context, merchantID uuid.UUID) error {
	sub, err := s.subs.GetActive(ctx, merchantID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load subscription: %w", err))
	}
	if sub == nil {
		return apperror.ErrNoActiveSubscription()
	}
	if !sub.ExpiredAt(s.now()) {
		return nil
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.subs.MarkExpired(ctx, dbTx, sub.ID); err != nil {
		return apperror.InternalError(fmt.Errorf("expire subscription: %w", err))
	}
	revoked, err := s.tokens.DeactivateByMerchant(ctx, dbTx, merchantID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("revoke access tokens: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("merchant_id", merchantID.String()).
		Int64("tokens_revoked", revoked).
		Msg("subscription expired")
	return apperror.ErrSubscriptionExpired()
}

func (s *VerificationServiceImpl) alreadyUsed(ctx context.Context, merchantID uuid.UUID, transactionID, key string) (bool, error) {
	cached, err := s.usedCache.IsUsed(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("redis used-transaction check failed, falling through to DB")
	}
	if cached {
		return true, nil
	}

	used, err := s.used.Exists(ctx, merchantID, transactionID)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("db used-transaction check: %w", err))
	}
	return used, nil
}

// commitSuccess records the used marker and the success row in one transaction.
// The insert decides races: a conflicting row means someone else got there first.
func (s *VerificationServiceImpl) commitSuccess(ctx context.Context, cmd ports.VerifyCommand, res domain.VerificationResult, entry *domain.VerificationLog) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	inserted, err := s.used.Insert(ctx, dbTx, &domain.UsedTransaction{
		MerchantID:    cmd.MerchantID,
		TransactionID: cmd.TransactionID,
		PaymentType:   cmd.PaymentType,
		Amount:        *res.Amount,
		VerifiedAt:    entry.CreatedAt,
	})
	if err != nil {
		return apperror.InternalError(fmt.Errorf("insert used transaction: %w", err))
	}
	if !inserted {
		return apperror.ErrTransactionUsed()
	}

	if err := s.logs.CreateTx(ctx, dbTx, entry); err != nil {
		return apperror.InternalError(fmt.Errorf("write verification log: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

func (s *VerificationServiceImpl) newLogEntry(cmd ports.VerifyCommand, res domain.VerificationResult) *domain.VerificationLog {
	entry := &domain.VerificationLog{
		ID:             uuid.New(),
		MerchantID:     cmd.MerchantID,
		TransactionID:  cmd.TransactionID,
		PaymentType:    cmd.PaymentType,
		ExpectedAmount: cmd.ExpectedAmount,
		ActualAmount:   res.Amount,
		Status:         domain.VerificationStatusSuccess,
		OrderID:        cmd.OrderID,
		RequestIP:      cmd.RequestIP,
		CreatedAt:      s.now().UTC(),
	}
	if !res.Verified {
		msg := res.InternalMessage()
		entry.Status = domain.VerificationStatusFailed
		entry.ErrorMessage = &msg
	}
	return entry
}
