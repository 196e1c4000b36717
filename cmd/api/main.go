package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"usdt-pay-verifier/config"
	httpHandler "usdt-pay-verifier/internal/adapter/http/handler"
	"usdt-pay-verifier/internal/adapter/ledger"
	"usdt-pay-verifier/internal/adapter/metrics"
	pgStorage "usdt-pay-verifier/internal/adapter/storage/postgres"
	redisStorage "usdt-pay-verifier/internal/adapter/storage/redis"
	"usdt-pay-verifier/internal/core/ports"
	"usdt-pay-verifier/internal/service"
	"usdt-pay-verifier/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("VERIFIER_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New("verifier-api", cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting USDT payment verifier")

	ctx := context.Background()

	if cfg.Database.AutoMigrate {
		if err := pgStorage.Migrate(cfg.Database, log); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Repositories
	merchantRepo := pgStorage.NewMerchantRepo(pool)
	tokenRepo := pgStorage.NewAccessTokenRepo(pool)
	subscriptionRepo := pgStorage.NewSubscriptionRepo(pool)
	configRepo := pgStorage.NewPaymentConfigRepo(pool)
	usedRepo := pgStorage.NewUsedTransactionRepo(pool)
	logRepo := pgStorage.NewVerificationLogRepo(pool)
	webhookRepo := pgStorage.NewWebhookRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Redis stores
	usedCache := redisStorage.NewUsedTransactionCache(rdb)
	inflightLock := redisStorage.NewInflightLock(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	if len(cfg.Admin.Users) > 0 && cfg.JWT.Secret == "" {
		log.Warn().Msg("admin users configured without jwt.secret, admin login will fail")
	}

	ledgerClient := ledger.NewClient(cfg.Relay, nil, logger.Component(log, "ledger"))
	verificationMetrics := metrics.NewVerification()

	// Business services
	authSvc := service.NewMerchantAuthService(tokenRepo, merchantRepo)
	configSvc := service.NewPaymentConfigService(configRepo)
	webhookSvc := service.NewWebhookService(webhookRepo, nil, cfg.Webhook.Timeout, logger.Component(log, "webhook"))
	auditSvc := service.NewAuditService(auditRepo, logger.Component(log, "audit"))

	verifySvc := service.NewVerificationService(service.VerificationDeps{
		Subscriptions: subscriptionRepo,
		Tokens:        tokenRepo,
		Configs:       configRepo,
		Used:          usedRepo,
		Logs:          logRepo,
		UsedCache:     usedCache,
		Inflight:      inflightLock,
		Transactor:    transactor,
		Encryption:    encSvc,
		BinancePay:    service.NewBinancePayVerifier(ledgerClient, cfg.Verification.PayHistoryLimit, logger.Component(log, "binance_pay_verifier")),
		BEP20:         service.NewBEP20Verifier(ledgerClient, cfg.Verification.BEP20TokenContract, logger.Component(log, "bep20_verifier")),
		Notifier:      webhookSvc,
		Metrics:       verificationMetrics,
		Config:        cfg.Verification,
	}, logger.Component(log, "orchestrator"))

	adminSvc := service.NewAdminService(service.AdminDeps{
		Users:      cfg.Admin.Users,
		Hash:       hashSvc,
		Tokens:     tokenSvc,
		Used:       usedRepo,
		Logs:       logRepo,
		UsedCache:  usedCache,
		Transactor: transactor,
	}, logger.Component(log, "admin"))

	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetOpenAPISpec(specBytes)
		log.Info().Msg("OpenAPI document loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI document not found, Swagger UI will be unavailable")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		VerifySvc:      verifySvc,
		ConfigSvc:      configSvc,
		AdminSvc:       adminSvc,
		TokenSvc:       tokenSvc,
		AuditSvc:       auditSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{
			pgStorage.NewHealthCheck(pool),
			redisStorage.NewHealthCheck(rdb),
			ledgerClient,
		},
		Metrics:     verificationMetrics.Handler(),
		CORSOrigins: cfg.Server.CORSOrigins,
		SessionTTL:  cfg.Verification.CheckoutSessionTTL,
		Logger:      log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
