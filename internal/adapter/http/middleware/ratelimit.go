package middleware

import (
	"fmt"
	"strconv"
	"time"

	redisStore "usdt-pay-verifier/internal/adapter/storage/redis"
	"usdt-pay-verifier/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// Endpoint groups.
const (
	GroupVerify       = "verify"
	GroupPublicVerify = "public_verify"
	GroupConfig       = "payment_config"
	GroupAdminLogin   = "admin_login"
	GroupAdmin        = "admin"
)

// DefaultRateLimitRules returns the limits per endpoint group.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		GroupVerify:       {Limit: 120, Window: time.Minute},
		GroupPublicVerify: {Limit: 30, Window: time.Minute},
		GroupConfig:       {Limit: 120, Window: time.Minute},
		GroupAdminLogin:   {Limit: 10, Window: time.Minute},
		GroupAdmin:        {Limit: 60, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
// A Redis failure lets the request through.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, render ErrorRenderer, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", extractIdentifier(c), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			render(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier keys merchant routes by merchant and the rest by client IP.
// Public checkout routes combine both so one shopper cannot exhaust a merchant.
func extractIdentifier(c *gin.Context) string {
	id, ok := MerchantID(c)
	switch {
	case ok && c.Param(ParamMerchantID) != "":
		return id.String() + ":" + c.ClientIP()
	case ok:
		return id.String()
	}
	return c.ClientIP()
}
