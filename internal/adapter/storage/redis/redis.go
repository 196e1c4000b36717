// Package redis holds the Redis-backed pieces of the verifier: the used
// transaction fast path, the in-flight claim and the rate limiter. Every
// caller degrades open when Redis fails, so operations are kept short.
package redis

import (
	"context"
	"fmt"
	"time"

	"usdt-pay-verifier/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	dialTimeout = 3 * time.Second
	opTimeout   = 500 * time.Millisecond
)

// NewClient connects to Redis and pings it once.
// The caller owns the returned client; it is closed here only on failure.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  opTimeout,
		WriteTimeout: opTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr(), err)
	}

	log.Info().Str("addr", cfg.Addr()).Int("db", cfg.DB).Msg("redis ready for idempotency and rate limiting")
	return client, nil
}
