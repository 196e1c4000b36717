package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"usdt-pay-verifier/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func miniredisConfig(t *testing.T, s *miniredis.Miniredis) config.RedisConfig {
	t.Helper()
	port, err := strconv.Atoi(s.Port())
	require.NoError(t, err)
	return config.RedisConfig{Host: s.Host(), Port: port}
}

func TestNewClient_Connects(t *testing.T) {
	s := miniredis.RunT(t)

	client, err := NewClient(context.Background(), miniredisConfig(t, s), zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	hc := NewHealthCheck(client)
	assert.Equal(t, "redis", hc.Name())
	assert.NoError(t, hc.Ping(context.Background()))
}

func TestNewClient_Unreachable(t *testing.T) {
	s := miniredis.RunT(t)
	cfg := miniredisConfig(t, s)
	s.Close()

	client, err := NewClient(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "pinging redis")
}

func TestRedisAddr(t *testing.T) {
	cfg := config.RedisConfig{Host: "redis.internal", Port: 6380}
	assert.Equal(t, "redis.internal:6380", cfg.Addr())
}

func TestHealthCheck_WritesProbeKey(t *testing.T) {
	s := miniredis.RunT(t)
	client, err := NewClient(context.Background(), miniredisConfig(t, s), zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, NewHealthCheck(client).Ping(context.Background()))
	assert.True(t, s.Exists(healthKey))
	assert.Greater(t, s.TTL(healthKey), time.Duration(0))
}

func TestHealthCheck_FailsWhenDown(t *testing.T) {
	s := miniredis.RunT(t)
	client, err := NewClient(context.Background(), miniredisConfig(t, s), zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	s.Close()
	err = NewHealthCheck(client).Ping(context.Background())
	assert.ErrorContains(t, err, "redis write check")
}
