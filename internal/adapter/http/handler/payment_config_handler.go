package handler

import (
	"usdt-pay-verifier/internal/adapter/http/middleware"
	"usdt-pay-verifier/internal/core/ports"
	"usdt-pay-verifier/pkg/apperror"
	"usdt-pay-verifier/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentConfigHandler exposes the merchant's public payment details.
type PaymentConfigHandler struct {
	configSvc ports.PaymentConfigService
}

// NewPaymentConfigHandler creates a new PaymentConfigHandler.
func NewPaymentConfigHandler(configSvc ports.PaymentConfigService) *PaymentConfigHandler {
	return &PaymentConfigHandler{configSvc: configSvc}
}

// GetConfig handles GET /api/v1/payment-config and its public checkout twin.
// The merchant was resolved by the route's auth middleware.
func (h *PaymentConfigHandler) GetConfig(c *gin.Context) {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidAccessToken())
		return
	}

	cfg, err := h.configSvc.GetPublicConfig(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, cfg)
}
