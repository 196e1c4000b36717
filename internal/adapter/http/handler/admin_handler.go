package handler

import (
	"math"

	"usdt-pay-verifier/internal/adapter/http/dto"
	"usdt-pay-verifier/internal/adapter/http/middleware"
	"usdt-pay-verifier/internal/core/domain"
	"usdt-pay-verifier/internal/core/ports"
	"usdt-pay-verifier/pkg/apperror"
	"usdt-pay-verifier/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ParamTransactionID names the transaction in admin release routes.
	ParamTransactionID = "transaction_id"

	defaultLogPageSize = 20
)

// AdminHandler handles operator endpoints.
type AdminHandler struct {
	adminSvc ports.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminSvc ports.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

// Login handles POST /api/v1/admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	token, expiry, err := h.adminSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	// The audit middleware attributes the session to this operator.
	c.Set(middleware.CtxAdminSubject, req.Username)

	response.OK(c, dto.AdminLoginResponse{
		Token:     token,
		ExpiresAt: expiry.Unix(),
	})
}

// ReleaseTransaction handles DELETE /api/v1/admin/merchants/:merchant_id/transactions/:transaction_id.
func (h *AdminHandler) ReleaseTransaction(c *gin.Context) {
	merchantID, ok := pathMerchantID(c)
	if !ok {
		return
	}

	result, err := h.adminSvc.ReleaseTransaction(c.Request.Context(), merchantID, c.Param(ParamTransactionID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ReleaseResponse{
		MerchantID:    result.MerchantID.String(),
		TransactionID: result.TransactionID,
		LogsDeleted:   result.LogsDeleted,
	})
}

// ListVerificationLogs handles GET /api/v1/admin/merchants/:merchant_id/verification-logs.
func (h *AdminHandler) ListVerificationLogs(c *gin.Context) {
	merchantID, ok := pathMerchantID(c)
	if !ok {
		return
	}

	var q dto.VerificationLogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = defaultLogPageSize
	}

	params := ports.VerificationLogListParams{
		MerchantID: merchantID,
		Page:       q.Page,
		PageSize:   q.PageSize,
	}
	if q.Status != "" {
		status := domain.VerificationStatus(q.Status)
		params.Status = &status
	}
	if q.TransactionID != "" {
		params.TransactionID = &q.TransactionID
	}

	logs, total, err := h.adminSvc.ListVerificationLogs(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.VerificationLogResponse, 0, len(logs))
	for _, l := range logs {
		items = append(items, dto.NewVerificationLogResponse(l))
	}

	response.OK(c, dto.VerificationLogListResponse{
		Items:      items,
		Total:      total,
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(q.PageSize))),
	})
}

// PurgeVerificationLogs handles DELETE /api/v1/admin/verification-logs?before=<RFC3339>.
func (h *AdminHandler) PurgeVerificationLogs(c *gin.Context) {
	var q dto.PurgeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation("before must be an RFC3339 timestamp"))
		return
	}

	deleted, err := h.adminSvc.PurgeVerificationLogs(c.Request.Context(), q.Before)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PurgeResponse{Deleted: deleted})
}

func pathMerchantID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(middleware.ParamMerchantID))
	if err != nil {
		response.Error(c, apperror.Validation("merchant_id must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}
