package handler

import (
	"net/http"
	"time"

	"usdt-pay-verifier/internal/adapter/http/middleware"
	redisStore "usdt-pay-verifier/internal/adapter/storage/redis"
	"usdt-pay-verifier/internal/core/ports"
	"usdt-pay-verifier/pkg/response"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// maxBodyBytes caps request bodies on every route.
const maxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.MerchantAuthService
	VerifySvc      ports.VerificationService
	ConfigSvc      ports.PaymentConfigService
	AdminSvc       ports.AdminService
	TokenSvc       ports.TokenService
	AuditSvc       ports.AuditService         // nil = admin audit disabled
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Metrics        http.Handler // nil = /metrics not exposed
	CORSOrigins    []string
	SessionTTL     time.Duration
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics))
	}

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string, render middleware.ErrorRenderer) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimitStore == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, render, deps.Logger)
	}

	verifyHandler := NewVerifyHandler(deps.VerifySvc, deps.SessionTTL)
	configHandler := NewPaymentConfigHandler(deps.ConfigSvc)
	adminHandler := NewAdminHandler(deps.AdminSvc)

	v1 := r.Group("/api/v1")

	// --- Merchant API (X-API-Key) ---
	v1.POST("/verify",
		middleware.TokenAuth(deps.AuthSvc, response.VerificationError, deps.Logger),
		rl(middleware.GroupVerify, response.VerificationError),
		verifyHandler.Verify,
	)
	v1.GET("/payment-config",
		middleware.TokenAuth(deps.AuthSvc, response.Error, deps.Logger),
		rl(middleware.GroupConfig, response.Error),
		configHandler.GetConfig,
	)

	// --- Hosted checkout (merchant id in path, browser callers) ---
	public := v1.Group("/public/merchants/:"+middleware.ParamMerchantID, cors.New(corsConfig(deps.CORSOrigins)))
	{
		public.OPTIONS("/verify", func(c *gin.Context) { c.Status(http.StatusNoContent) })
		public.OPTIONS("/payment-config", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		public.POST("/verify",
			middleware.PublicMerchant(deps.AuthSvc, response.VerificationError, deps.Logger),
			rl(middleware.GroupPublicVerify, response.VerificationError),
			verifyHandler.VerifyPublic,
		)
		public.GET("/payment-config",
			middleware.PublicMerchant(deps.AuthSvc, response.Error, deps.Logger),
			rl(middleware.GroupConfig, response.Error),
			configHandler.GetConfig,
		)
	}

	// --- Operator API ---
	admin := v1.Group("/admin")
	if deps.AuditSvc != nil {
		admin.Use(middleware.AuditLog(deps.AuditSvc))
	}
	{
		admin.POST("/login", rl(middleware.GroupAdminLogin, response.Error), adminHandler.Login)

		authed := admin.Group("", middleware.AdminJWT(deps.TokenSvc, deps.Logger), rl(middleware.GroupAdmin, response.Error))
		authed.DELETE("/merchants/:"+middleware.ParamMerchantID+"/transactions/:"+ParamTransactionID, adminHandler.ReleaseTransaction)
		authed.GET("/merchants/:"+middleware.ParamMerchantID+"/verification-logs", adminHandler.ListVerificationLogs)
		authed.DELETE("/verification-logs", adminHandler.PurgeVerificationLogs)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	cfg.AllowHeaders = []string{"Content-Type", "Accept", middleware.HeaderRequestID}
	cfg.ExposeHeaders = []string{middleware.HeaderRequestID}
	cfg.MaxAge = 12 * time.Hour

	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
