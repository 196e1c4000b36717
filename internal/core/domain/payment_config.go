package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentConfig is the merchant's payment setup. APISecretEnc is AES-GCM
// ciphertext; the plaintext only ever lives in Credentials.
type PaymentConfig struct {
	MerchantID        uuid.UUID `json:"merchant_id"`
	APIKey            string    `json:"-"`
	APISecretEnc      string    `json:"-"`
	BinancePayID      string    `json:"binance_pay_id"`
	BEP20Wallet       string    `json:"bep20_wallet"`
	WebhookURL        *string   `json:"webhook_url,omitempty"`
	TimeWindowSeconds *int      `json:"time_window_seconds,omitempty"`
	BinancePayQRURL   *string   `json:"binance_pay_qr_url,omitempty"`
	BEP20QRURL        *string   `json:"bep20_qr_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// HasExchangeKeys reports whether API key material is on file.
func (p *PaymentConfig) HasExchangeKeys() bool {
	return p.APIKey != "" && p.APISecretEnc != ""
}

// SupportsPaymentType reports whether the config carries what the given rail needs.
func (p *PaymentConfig) SupportsPaymentType(t PaymentType) bool {
	switch t {
	case PaymentTypeBinancePay:
		return p.HasExchangeKeys()
	case PaymentTypeBEP20:
		return p.BEP20Wallet != ""
	}
	return false
}

// TimeWindow returns the merchant override or fallback.
func (p *PaymentConfig) TimeWindow(fallback time.Duration) time.Duration {
	if p.TimeWindowSeconds != nil && *p.TimeWindowSeconds > 0 {
		return time.Duration(*p.TimeWindowSeconds) * time.Second
	}
	return fallback
}

// Credentials is the decrypted exchange key pair handed to the verifiers.
type Credentials struct {
	APIKey    string
	APISecret string
}

// Complete reports whether both halves are present.
func (c Credentials) Complete() bool {
	return c.APIKey != "" && c.APISecret != ""
}

// PublicPaymentConfig is what integrators may see. It never carries key material.
type PublicPaymentConfig struct {
	MerchantID      uuid.UUID `json:"merchant_id"`
	BinancePayID    string    `json:"binance_pay_id,omitempty"`
	BEP20Wallet     string    `json:"bep20_wallet,omitempty"`
	BinancePayQRURL *string   `json:"binance_pay_qr_url,omitempty"`
	BEP20QRURL      *string   `json:"bep20_qr_url,omitempty"`
	PaymentTypes    []string  `json:"payment_types"`
}
