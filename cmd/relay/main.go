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
	"usdt-pay-verifier/internal/adapter/relay"
	"usdt-pay-verifier/internal/service"
	"usdt-pay-verifier/pkg/logger"

	"github.com/joho/godotenv"
)

// upstreamTimeout bounds each Binance or BscScan call.
const upstreamTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("VERIFIER_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New("verifier-relay", cfg.Log.Level, cfg.Log.Pretty)
	if cfg.RelayServer.Secret == "" {
		log.Warn().Msg("relay_server.secret is empty, relay accepts unauthenticated callers")
	}
	if cfg.BscScan.APIKey == "" {
		log.Warn().Msg("bscscan.api_key is empty, explorer lookups will be rate limited")
	}

	upstream := relay.NewUpstream(
		cfg.Binance,
		cfg.BscScan,
		service.NewHMACSignatureService(),
		&http.Client{Timeout: upstreamTimeout},
	)
	router := relay.NewRouter(relay.NewHandler(upstream, cfg.RelayServer.Secret, log), log)

	addr := fmt.Sprintf("%s:%d", cfg.RelayServer.Host, cfg.RelayServer.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("Relay listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Relay server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down relay...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Relay forced to shutdown")
	}
}
