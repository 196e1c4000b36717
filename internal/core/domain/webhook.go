package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventPaymentVerified is the only webhook event emitted.
const EventPaymentVerified = "payment.verified"

// WebhookStatus represents the delivery state of a webhook.
type WebhookStatus string

const (
	WebhookStatusDelivered WebhookStatus = "DELIVERED"
	WebhookStatusFailed    WebhookStatus = "FAILED"
)

// VerifiedEvent is the body POSTed to the merchant webhook.
type VerifiedEvent struct {
	Event         string      `json:"event"`
	OrderID       *string     `json:"order_id"`
	TransactionID string      `json:"transaction_id"`
	Amount        float64     `json:"amount"`
	Currency      string      `json:"currency"`
	PaymentType   PaymentType `json:"payment_type"`
}

// WebhookDelivery records the single delivery attempt for a verified event.
type WebhookDelivery struct {
	ID            uuid.UUID     `json:"id"`
	MerchantID    uuid.UUID     `json:"merchant_id"`
	TransactionID string        `json:"transaction_id"`
	WebhookURL    string        `json:"webhook_url"`
	Payload       string        `json:"payload"`
	HTTPStatus    *int          `json:"http_status"`
	Status        WebhookStatus `json:"status"`
	LastError     *string       `json:"last_error"`
	CreatedAt     time.Time     `json:"created_at"`
}
