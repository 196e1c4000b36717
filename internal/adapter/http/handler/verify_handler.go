package handler

import (
	"time"

	"usdt-pay-verifier/internal/adapter/http/dto"
	"usdt-pay-verifier/internal/adapter/http/middleware"
	"usdt-pay-verifier/internal/core/domain"
	"usdt-pay-verifier/internal/core/ports"
	"usdt-pay-verifier/pkg/apperror"
	"usdt-pay-verifier/pkg/response"

	"github.com/gin-gonic/gin"
)

// sessionClockSkew is how far ahead of server time a browser clock may run.
const sessionClockSkew = 2 * time.Minute

// VerifyHandler serves the authenticated and the public checkout verify endpoints.
type VerifyHandler struct {
	verifySvc  ports.VerificationService
	sessionTTL time.Duration // zero disables the checkout session check
	now        func() time.Time
}

// NewVerifyHandler creates a new VerifyHandler.
func NewVerifyHandler(verifySvc ports.VerificationService, sessionTTL time.Duration) *VerifyHandler {
	return &VerifyHandler{verifySvc: verifySvc, sessionTTL: sessionTTL, now: time.Now}
}

// Verify handles POST /api/v1/verify.
func (h *VerifyHandler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.VerificationError(c, apperror.Validation(err.Error()))
		return
	}
	h.run(c, req)
}

// VerifyPublic handles POST /api/v1/public/merchants/:merchant_id/verify.
func (h *VerifyHandler) VerifyPublic(c *gin.Context) {
	var req dto.PublicVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.VerificationError(c, apperror.Validation(err.Error()))
		return
	}

	if req.SessionStartedAt != nil && h.sessionTTL > 0 {
		started, ok := dto.ParseSessionStart(*req.SessionStartedAt)
		if !ok {
			response.VerificationError(c, apperror.Validation("session_started_at must be a unix timestamp"))
			return
		}
		age := h.now().Sub(started)
		if age < -sessionClockSkew {
			response.VerificationError(c, apperror.Validation("session_started_at is in the future"))
			return
		}
		if age > h.sessionTTL {
			response.VerificationError(c, apperror.ErrSessionExpired())
			return
		}
	}

	h.run(c, req.VerifyRequest)
}

func (h *VerifyHandler) run(c *gin.Context, req dto.VerifyRequest) {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		response.VerificationError(c, apperror.ErrInvalidAccessToken())
		return
	}

	amount, err := dto.ParseAmount(req.ExpectedAmount)
	if err != nil {
		response.VerificationError(c, apperror.Validation("expected_amount must be a positive number"))
		return
	}

	result, err := h.verifySvc.Verify(c.Request.Context(), ports.VerifyCommand{
		MerchantID:     merchantID,
		TransactionID:  req.TransactionID,
		PaymentType:    domain.PaymentType(req.PaymentType),
		ExpectedAmount: amount,
		OrderID:        req.OrderID,
		RequestIP:      c.ClientIP(),
	})
	if err != nil {
		response.VerificationError(c, err)
		return
	}

	response.Verification(c, result.Verified, result.AmountFloat(), result.Error)
}
