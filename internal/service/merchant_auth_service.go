package service

import (
	"context"
	"fmt"

	"usdt-pay-verifier/internal/core/domain"
	"usdt-pay-verifier/internal/core/ports"
	"usdt-pay-verifier/pkg/apperror"

	"github.com/google/uuid"
)

// MerchantAuthServiceImpl implements ports.MerchantAuthService.
type MerchantAuthServiceImpl struct {
	tokenRepo    ports.AccessTokenRepository
	merchantRepo ports.MerchantRepository
}

// NewMerchantAuthService creates a new MerchantAuthServiceImpl.
func NewMerchantAuthService(tokenRepo ports.AccessTokenRepository, merchantRepo ports.MerchantRepository) *MerchantAuthServiceImpl {
	return &MerchantAuthServiceImpl{tokenRepo: tokenRepo, merchantRepo: merchantRepo}
}

// AuthenticateToken resolves a raw X-API-Key value to its active merchant.
func (s *MerchantAuthServiceImpl) AuthenticateToken(ctx context.Context, rawToken string) (*domain.Merchant, error) {
	if rawToken == "" {
		return nil, apperror.ErrInvalidAccessToken()
	}

	tok, err := s.tokenRepo.GetByHash(ctx, domain.HashAccessToken(rawToken))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup access token: %w", err))
	}
	if tok == nil || !tok.Active {
		return nil, apperror.ErrInvalidAccessToken()
	}

	return s.activeMerchant(ctx, tok.MerchantID)
}

// ResolvePublicMerchant loads the merchant named in a public checkout path.
// Unknown and inactive merchants are indistinguishable to the caller.
func (s *MerchantAuthServiceImpl) ResolvePublicMerchant(ctx context.Context, merchantID uuid.UUID) (*domain.Merchant, error) {
	return s.activeMerchant(ctx, merchantID)
}

func (s *MerchantAuthServiceImpl) activeMerchant(ctx context.Context, id uuid.UUID) (*domain.Merchant, error) {
	m, err := s.merchantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get merchant: %w", err))
	}
	if m == nil {
		return nil, apperror.ErrInvalidAccessToken()
	}
	if !m.IsActive() {
		return nil, apperror.ErrMerchantInactive()
	}
	return m, nil
}
