package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis"`
	JWT          JWTConfig          `mapstructure:"jwt"`
	AES          AESConfig          `mapstructure:"aes"`
	Log          LogConfig          `mapstructure:"log"`
	Relay        RelayConfig        `mapstructure:"relay"`
	Verification VerificationConfig `mapstructure:"verification"`
	Webhook      WebhookConfig      `mapstructure:"webhook"`
	Admin        AdminConfig        `mapstructure:"admin"`

	// Used only by cmd/relay.
	RelayServer RelayServerConfig `mapstructure:"relay_server"`
	Binance     BinanceConfig     `mapstructure:"binance"`
	BscScan     BscScanConfig     `mapstructure:"bscscan"`
}

type ServerConfig struct {
	Host        string   `mapstructure:"host"`
	Port        int      `mapstructure:"port"`
	Mode        string   `mapstructure:"mode"` // debug, release, test
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// MigrateURL returns the DSN in the form expected by the pgx/v5 migrate driver.
func (d DatabaseConfig) MigrateURL() string {
	return "pgx5" + strings.TrimPrefix(d.DSN(), "postgres")
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// RelayConfig is how the verifier reaches the forwarding relay.
type RelayConfig struct {
	URL     string        `mapstructure:"url"`
	Secret  string        `mapstructure:"secret"` // empty = unauthenticated relay
	Timeout time.Duration `mapstructure:"timeout"`
}

type VerificationConfig struct {
	DefaultTimeWindow  time.Duration `mapstructure:"default_time_window"`
	CheckoutSessionTTL time.Duration `mapstructure:"checkout_session_ttl"`
	PayHistoryLimit    int           `mapstructure:"pay_history_limit"`
	InflightTTL        time.Duration `mapstructure:"inflight_ttl"`
	UsedCacheTTL       time.Duration `mapstructure:"used_cache_ttl"`
	// BEP20TokenContract restricts on-chain transfers to one token; empty accepts any.
	BEP20TokenContract string `mapstructure:"bep20_token_contract"`
}

type WebhookConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// AdminUser is an operator allowed to call the admin API.
// PasswordHash is an argon2id encoded hash.
type AdminUser struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"`
}

type AdminConfig struct {
	Users []AdminUser `mapstructure:"users"`
}

type RelayServerConfig struct {
	Host   string `mapstructure:"host"`
	Port   int    `mapstructure:"port"`
	Secret string `mapstructure:"secret"`
}

type BinanceConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	RecvWindow int64  `mapstructure:"recv_window"`
}

type BscScanConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: VERIFIER_.
// Nested keys use underscore: VERIFIER_DATABASE_HOST, VERIFIER_RELAY_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "pay_verifier")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "8h")
	v.SetDefault("jwt.issuer", "usdt-pay-verifier")
	v.SetDefault("aes.key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("relay.url", "http://localhost:8090")
	v.SetDefault("relay.secret", "")
	v.SetDefault("relay.timeout", "15s")
	v.SetDefault("verification.default_time_window", "24h")
	v.SetDefault("verification.checkout_session_ttl", "30m")
	v.SetDefault("verification.pay_history_limit", 50)
	v.SetDefault("verification.inflight_ttl", "30s")
	v.SetDefault("verification.used_cache_ttl", "720h")
	v.SetDefault("verification.bep20_token_contract", "0x55d398326f99059fF775485246999027B3197955")
	v.SetDefault("webhook.timeout", "10s")
	v.SetDefault("relay_server.host", "0.0.0.0")
	v.SetDefault("relay_server.port", 8090)
	v.SetDefault("relay_server.secret", "")
	v.SetDefault("binance.base_url", "https://api.binance.com")
	v.SetDefault("binance.recv_window", 10000)
	v.SetDefault("bscscan.base_url", "https://api.bscscan.com/api")
	v.SetDefault("bscscan.api_key", "")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: VERIFIER_DATABASE_HOST -> database.host
	v.SetEnvPrefix("VERIFIER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
