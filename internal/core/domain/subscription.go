package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus represents a merchant's licensing state.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// Subscription gates access to verification.
type Subscription struct {
	ID         uuid.UUID          `json:"id"`
	MerchantID uuid.UUID          `json:"merchant_id"`
	Status     SubscriptionStatus `json:"status"`
	ExpiresAt  time.Time          `json:"expires_at"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// IsActive reports whether the row is marked active, regardless of expiry.
func (s *Subscription) IsActive() bool {
	return s.Status == SubscriptionStatusActive
}

// ExpiredAt reports whether expires_at is not in the future relative to now.
func (s *Subscription) ExpiredAt(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
