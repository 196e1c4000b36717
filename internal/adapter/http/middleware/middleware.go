package middleware

import (
	"net/http"
	"strings"
	"time"

	"usdt-pay-verifier/internal/core/domain"
	"usdt-pay-verifier/internal/core/ports"
	"usdt-pay-verifier/pkg/apperror"
	"usdt-pay-verifier/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// HeaderAPIKey carries the merchant's opaque access token.
	HeaderAPIKey    = "X-API-Key"
	HeaderRequestID = "X-Request-ID"

	// Context keys
	CtxMerchantID   = "merchant_id"
	CtxMerchantKey  = "merchant"
	CtxAdminSubject = "admin_subject"
	CtxRequestID    = "request_id"

	// ParamMerchantID is the path parameter of public checkout routes.
	ParamMerchantID = "merchant_id"
)

// ErrorRenderer writes an error response. Verify routes keep their own body shape.
type ErrorRenderer func(c *gin.Context, err error)

// TokenAuth resolves the X-API-Key header to an active merchant.
func TokenAuth(authSvc ports.MerchantAuthService, render ErrorRenderer, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(HeaderAPIKey))
		merchant, err := authSvc.AuthenticateToken(c.Request.Context(), raw)
		if err != nil {
			logAuthFailure(log, c, err)
			render(c, err)
			c.Abort()
			return
		}
		setMerchant(c, merchant)
		c.Next()
	}
}

// PublicMerchant resolves the merchant named in the path of an unauthenticated
// checkout route. Unknown ids and malformed ids get the same 401.
func PublicMerchant(authSvc ports.MerchantAuthService, render ErrorRenderer, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param(ParamMerchantID))
		if err != nil {
			render(c, apperror.ErrInvalidAccessToken())
			c.Abort()
			return
		}
		merchant, err := authSvc.ResolvePublicMerchant(c.Request.Context(), id)
		if err != nil {
			logAuthFailure(log, c, err)
			render(c, err)
			c.Abort()
			return
		}
		setMerchant(c, merchant)
		c.Next()
	}
}

// AdminJWT validates a bearer token and requires the admin role.
func AdminJWT(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		claims, err := tokenSvc.Validate(authHeader[7:])
		if err != nil {
			log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("admin token rejected")
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}
		if claims.Role != ports.RoleAdmin {
			response.Error(c, apperror.ErrAdminRequired())
			c.Abort()
			return
		}

		c.Set(CtxAdminSubject, claims.Subject)
		c.Next()
	}
}

// RequestID propagates or assigns a request id.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.New().String()
		}
		c.Set(CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		if id, ok := c.Get(CtxMerchantID); ok {
			event = event.Str("merchant_id", id.(uuid.UUID).String())
		}
		event.
			Str("request_id", c.GetString(CtxRequestID)).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MerchantID returns the merchant resolved by TokenAuth or PublicMerchant.
func MerchantID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(CtxMerchantID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func setMerchant(c *gin.Context, m *domain.Merchant) {
	c.Set(CtxMerchantID, m.ID)
	c.Set(CtxMerchantKey, m)
}

func logAuthFailure(log zerolog.Logger, c *gin.Context, err error) {
	log.Debug().Err(err).Str("path", c.FullPath()).Str("client_ip", c.ClientIP()).Msg("merchant authentication failed")
}
