package dto

import (
	"encoding/json"
	"time"

	"usdt-pay-verifier/internal/core/domain"
)

// VerifyRequest is the body of both verify endpoints.
type VerifyRequest struct {
	TransactionID  string      `json:"transaction_id" binding:"required,max=128,safe_id"`
	PaymentType    string      `json:"payment_type" binding:"required,oneof=binance_pay bep20"`
	ExpectedAmount json.Number `json:"expected_amount" binding:"required,positive_amount"`
	OrderID        *string     `json:"order_id,omitempty" binding:"omitempty,max=128,safe_id"`
}

// PublicVerifyRequest adds the optional checkout session start (unix s or ms).
type PublicVerifyRequest struct {
	VerifyRequest
	SessionStartedAt *json.Number `json:"session_started_at,omitempty"`
}

// AdminLoginRequest is the operator login body.
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Password string `json:"password" binding:"required,max=256"`
}

// AdminLoginResponse carries the admin JWT.
type AdminLoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"` // Unix timestamp
}

// ReleaseResponse reports a transaction release.
type ReleaseResponse struct {
	MerchantID    string `json:"merchant_id"`
	TransactionID string `json:"transaction_id"`
	LogsDeleted   int64  `json:"logs_deleted"`
}

// VerificationLogQuery filters the admin log listing.
type VerificationLogQuery struct {
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PageSize      int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Status        string `form:"status" binding:"omitempty,oneof=success failed"`
	TransactionID string `form:"transaction_id" binding:"omitempty,max=128,safe_id"`
}

// PurgeQuery is the cutoff for log purges.
type PurgeQuery struct {
	Before time.Time `form:"before" time_format:"2006-01-02T15:04:05Z07:00"`
}

// PurgeResponse reports how many log rows were removed.
type PurgeResponse struct {
	Deleted int64 `json:"deleted"`
}

// VerificationLogResponse is one admin-visible log row.
type VerificationLogResponse struct {
	ID             string   `json:"id"`
	TransactionID  string   `json:"transaction_id"`
	PaymentType    string   `json:"payment_type"`
	ExpectedAmount float64  `json:"expected_amount"`
	ActualAmount   *float64 `json:"actual_amount"`
	Status         string   `json:"status"`
	ErrorMessage   *string  `json:"error_message"`
	OrderID        *string  `json:"order_id"`
	RequestIP      string   `json:"request_ip"`
	CreatedAt      string   `json:"created_at"`
}

// VerificationLogListResponse wraps a paginated log listing.
type VerificationLogListResponse struct {
	Items      []VerificationLogResponse `json:"items"`
	Total      int64                     `json:"total"`
	Page       int                       `json:"page"`
	PageSize   int                       `json:"page_size"`
	TotalPages int                       `json:"total_pages"`
}

// NewVerificationLogResponse renders a log row for the admin API.
func NewVerificationLogResponse(l domain.VerificationLog) VerificationLogResponse {
	out := VerificationLogResponse{
		ID:             l.ID.String(),
		TransactionID:  l.TransactionID,
		PaymentType:    string(l.PaymentType),
		ExpectedAmount: l.ExpectedAmount.InexactFloat64(),
		Status:         string(l.Status),
		ErrorMessage:   l.ErrorMessage,
		OrderID:        l.OrderID,
		RequestIP:      l.RequestIP,
		CreatedAt:      l.CreatedAt.UTC().Format(time.RFC3339),
	}
	if l.ActualAmount != nil {
		f := l.ActualAmount.InexactFloat64()
		out.ActualAmount = &f
	}
	return out
}
