package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"usdt-pay-verifier/internal/core/domain"
	"usdt-pay-verifier/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog records successful admin write operations.
// Actions are derived from the matched route template, not the raw path.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			return
		}

		action, resourceType := mapRouteToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		entry := &domain.AuditLog{
			Actor:        c.GetString(CtxAdminSubject),
			Action:       action,
			ResourceType: resourceType,
			IPAddress:    c.ClientIP(),
		}
		if mid, err := uuid.Parse(c.Param(ParamMerchantID)); err == nil {
			entry.MerchantID = &mid
		}
		if action == domain.AuditActionReleaseTransaction {
			entry.ResourceID = c.Param("transaction_id")
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"route":  c.FullPath(),
			"query":  c.Request.URL.RawQuery,
			"status": c.Writer.Status(),
		})
		entry.Details = string(details)

		auditSvc.Log(c.Request.Context(), entry)
	}
}

func mapRouteToAction(route, method string) (domain.AuditAction, string) {
	switch {
	case strings.HasSuffix(route, "/admin/login") && method == http.MethodPost:
		return domain.AuditActionAdminLogin, "session"
	case strings.HasSuffix(route, "/admin/merchants/:merchant_id/transactions/:transaction_id") && method == http.MethodDelete:
		return domain.AuditActionReleaseTransaction, "used_transaction"
	case strings.HasSuffix(route, "/admin/verification-logs") && method == http.MethodDelete:
		return domain.AuditActionPurgeLogs, "verification_log"
	}
	return "", ""
}
