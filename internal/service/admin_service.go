package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"usdt-pay-verifier/config"
	"usdt-pay-verifier/internal/core/domain"
	"usdt-pay-verifier/internal/core/ports"
	"usdt-pay-verifier/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// AdminDeps groups the admin service collaborators.
type AdminDeps struct {
	Users      []config.AdminUser
	Hash       ports.HashService
	Tokens     ports.TokenService
	Used       ports.UsedTransactionRepository
	Logs       ports.VerificationLogRepository
	UsedCache  ports.UsedTransactionCache
	Transactor ports.DBTransactor
}

// AdminServiceImpl implements ports.AdminService.
type AdminServiceImpl struct {
	users      map[string]string // username -> argon2id hash
	hashSvc    ports.HashService
	tokenSvc   ports.TokenService
	used       ports.UsedTransactionRepository
	logs       ports.VerificationLogRepository
	usedCache  ports.UsedTransactionCache
	transactor ports.DBTransactor
	now        func() time.Time
	log        zerolog.Logger
}

// NewAdminService creates a new AdminServiceImpl.
func NewAdminService(deps AdminDeps, log zerolog.Logger) *AdminServiceImpl {
	users := make(map[string]string, len(deps.Users))
	for _, u := range deps.Users {
		if u.Username != "" && u.PasswordHash != "" {
			users[u.Username] = u.PasswordHash
		}
	}
	return &AdminServiceImpl{
		users:      users,
		hashSvc:    deps.Hash,
		tokenSvc:   deps.Tokens,
		used:       deps.Used,
		logs:       deps.Logs,
		usedCache:  deps.UsedCache,
		transactor: deps.Transactor,
		now:        time.Now,
		log:        log,
	}
}

// Login checks operator credentials and issues an admin JWT.
func (s *AdminServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	hash, ok := s.users[username]
	if !ok {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	match, err := s.hashSvc.Verify(password, hash)
	if err != nil {
		s.log.Error().Err(err).Str("username", username).Msg("admin password hash unreadable")
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}
	if !match {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiresAt, err := s.tokenSvc.Generate(username, ports.RoleAdmin)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate admin token: %w", err))
	}
	return token, expiresAt, nil
}

// ReleaseTransaction lets a consumed transaction id be verified again by
// deleting its used marker and verification history in one transaction.
func (s *AdminServiceImpl) ReleaseTransaction(ctx context.Context, merchantID uuid.UUID, transactionID string) (*ports.ReleaseResult, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return nil, apperror.Validation("transaction_id is required")
	}

	// BEP20 hashes are stored lowercased; Binance Pay ids are case-sensitive.
	candidates := []string{transactionID}
	if lower := strings.ToLower(transactionID); lower != transactionID && domain.IsChainTxHash(transactionID) {
		candidates = append(candidates, lower)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	result := &ports.ReleaseResult{MerchantID: merchantID}
	var released []string
	for _, id := range candidates {
		removed, err := s.used.Delete(ctx, dbTx, merchantID, id)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("delete used transaction: %w", err))
		}
		n, err := s.logs.DeleteByTransaction(ctx, dbTx, merchantID, id)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("delete verification logs: %w", err))
		}
		if removed || n > 0 {
			released = append(released, id)
			result.LogsDeleted += n
		}
	}
	if len(released) == 0 {
		return nil, apperror.ErrNotFound("transaction")
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	for _, id := range released {
		if err := s.usedCache.Forget(ctx, domain.UsedTransactionKey(merchantID, id)); err != nil {
			s.log.Warn().Err(err).Str("transaction_id", id).Msg("failed to evict used-transaction cache")
		}
	}

	result.TransactionID = released[0]
	s.log.Info().
		Str("merchant_id", merchantID.String()).
		Str("transaction_id", result.TransactionID).
		Int64("logs_deleted", result.LogsDeleted).
		Msg("transaction released")
	return result, nil
}

// ListVerificationLogs returns a page of a merchant's verification history.
func (s *AdminServiceImpl) ListVerificationLogs(ctx context.Context, params ports.VerificationLogListParams) ([]domain.VerificationLog, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = defaultPageSize
	}
	if params.PageSize > maxPageSize {
		params.PageSize = maxPageSize
	}

	logs, total, err := s.logs.ListByMerchant(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list verification logs: %w", err))
	}
	return logs, total, nil
}

// PurgeVerificationLogs deletes log rows created before the cutoff.
func (s *AdminServiceImpl) PurgeVerificationLogs(ctx context.Context, before time.Time) (int64, error) {
	if before.IsZero() {
		return 0, apperror.Validation("before is required")
	}
	if before.After(s.now()) {
		return 0, apperror.Validation("before must not be in the future")
	}

	n, err := s.logs.PurgeBefore(ctx, before)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("purge verification logs: %w", err))
	}
	s.log.Info().Time("before", before).Int64("deleted", n).Msg("verification logs purged")
	return n, nil
}
