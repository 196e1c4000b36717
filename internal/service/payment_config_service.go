package service

import (
	"context"
	"fmt"

	"usdt-pay-verifier/internal/core/domain"
	"usdt-pay-verifier/internal/core/ports"
	"usdt-pay-verifier/pkg/apperror"

	"github.com/google/uuid"
)

// PaymentConfigServiceImpl implements ports.PaymentConfigService.
type PaymentConfigServiceImpl struct {
	repo ports.PaymentConfigRepository
}

// NewPaymentConfigService creates a new PaymentConfigServiceImpl.
func NewPaymentConfigService(repo ports.PaymentConfigRepository) *PaymentConfigServiceImpl {
	return &PaymentConfigServiceImpl{repo: repo}
}

// GetPublicConfig returns the payable identifiers of a merchant without key material.
func (s *PaymentConfigServiceImpl) GetPublicConfig(ctx context.Context, merchantID uuid.UUID) (*domain.PublicPaymentConfig, error) {
	pc, err := s.repo.GetByMerchantID(ctx, merchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load payment config: %w", err))
	}
	if pc == nil {
		return nil, apperror.ErrNotConfigured()
	}

	out := &domain.PublicPaymentConfig{
		MerchantID:   merchantID,
		PaymentTypes: []string{},
	}
	if pc.SupportsPaymentType(domain.PaymentTypeBinancePay) {
		out.BinancePayID = pc.BinancePayID
		out.BinancePayQRURL = pc.BinancePayQRURL
		out.PaymentTypes = append(out.PaymentTypes, string(domain.PaymentTypeBinancePay))
	}
	if pc.SupportsPaymentType(domain.PaymentTypeBEP20) {
		out.BEP20Wallet = pc.BEP20Wallet
		out.BEP20QRURL = pc.BEP20QRURL
		out.PaymentTypes = append(out.PaymentTypes, string(domain.PaymentTypeBEP20))
	}
	return out, nil
}
