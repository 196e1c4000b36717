package response

import (
	"errors"
	"net/http"
	"time"

	"usdt-pay-verifier/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// VerificationResponse is the flat body returned by the verify endpoints.
// Amount and Error serialize as null when absent.
type VerificationResponse struct {
	Verified  bool     `json:"verified"`
	Amount    *float64 `json:"amount"`
	Error     *string  `json:"error"`
	ErrorCode string   `json:"error_code,omitempty"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data:      data,
		RequestID: getRequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorResponse{
			ErrorCode: appErr.Code,
			Message:   appErr.Message,
			RequestID: getRequestID(c),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		ErrorCode: "SYS_000",
		Message:   "Internal server error",
		RequestID: getRequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Verification sends a 200 verification outcome. An empty errMsg means no error.
func Verification(c *gin.Context, verified bool, amount *float64, errMsg string) {
	body := VerificationResponse{Verified: verified, Amount: amount}
	if errMsg != "" {
		body.Error = &errMsg
	}
	c.JSON(http.StatusOK, body)
}

// VerificationError rejects a verify call before any verdict was reached,
// keeping the verify body shape and the AppError's status.
func VerificationError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "SYS_000"
	msg := "Internal server error"

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status, code, msg = appErr.HTTPStatus, appErr.Code, appErr.Message
	}

	c.JSON(status, VerificationResponse{
		Verified:  false,
		Error:     &msg,
		ErrorCode: code,
	})
}

// getRequestID retrieves request ID from context, or generates one.
func getRequestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return uuid.New().String()
}
