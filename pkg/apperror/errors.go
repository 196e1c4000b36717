package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError with the same code, so callers can write
// errors.Is(err, apperror.ErrTransactionUsed()).
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Authentication (AUTH) ----

func ErrInvalidAccessToken() *AppError {
	return New("AUTH_001", "Invalid or missing access token", http.StatusUnauthorized)
}

func ErrMerchantInactive() *AppError {
	return New("AUTH_002", "Merchant account is deactivated", http.StatusUnauthorized)
}

func ErrInvalidCredentials() *AppError {
	return New("AUTH_003", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_004", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrAdminRequired() *AppError {
	return New("AUTH_005", "Administrator role required", http.StatusForbidden)
}

// ---- Licensing (LIC) ----

func ErrNoActiveSubscription() *AppError {
	return New("LIC_001", "No active subscription", http.StatusForbidden)
}

func ErrSubscriptionExpired() *AppError {
	return New("LIC_002", "Subscription expired", http.StatusForbidden)
}

// ---- Configuration (CFG) ----

func ErrNotConfigured() *AppError {
	return New("CFG_001", "Payment method not configured", http.StatusBadRequest)
}

// ---- Idempotency (IDEM) ----

func ErrTransactionUsed() *AppError {
	return New("IDEM_001", "Transaction already used", http.StatusConflict)
}

func ErrVerificationInProgress() *AppError {
	return New("IDEM_002", "Verification already in progress", http.StatusConflict)
}

// ---- Request (REQ) ----

// Validation returns a REQ_001 validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}

func ErrSessionExpired() *AppError {
	return New("REQ_002", "Checkout session expired", http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("REQ_003", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}
