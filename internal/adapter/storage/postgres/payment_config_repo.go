package postgres

import (
	"context"
	"errors"
	"fmt"

	"usdt-pay-verifier/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PaymentConfigRepo implements ports.PaymentConfigRepository.
type PaymentConfigRepo struct {
	pool Pool
}

// NewPaymentConfigRepo creates a new PaymentConfigRepo.
func NewPaymentConfigRepo(pool Pool) *PaymentConfigRepo {
	return &PaymentConfigRepo{pool: pool}
}

// GetByMerchantID fetches the merchant's payment configuration.
func (r *PaymentConfigRepo) GetByMerchantID(ctx context.Context, merchantID uuid.UUID) (*domain.PaymentConfig, error) {
	query := `SELECT merchant_id, api_key, api_secret_enc, binance_pay_id, bep20_wallet, webhook_url,
		time_window_seconds, binance_pay_qr_url, bep20_qr_url, created_at, updated_at
		FROM payment_configs WHERE merchant_id = $1`

	p := &domain.PaymentConfig{}
	err := r.pool.QueryRow(ctx, query, merchantID).Scan(
		&p.MerchantID, &p.APIKey, &p.APISecretEnc, &p.BinancePayID, &p.BEP20Wallet, &p.WebhookURL,
		&p.TimeWindowSeconds, &p.BinancePayQRURL, &p.BEP20QRURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment config: %w", err)
	}
	return p, nil
}
