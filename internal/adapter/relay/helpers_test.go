package relay

import (
	"time"

	"usdt-pay-verifier/config"
	"usdt-pay-verifier/internal/core/domain"
)

func relayConfig(url, secret string) config.RelayConfig {
	return config.RelayConfig{URL: url, Secret: secret, Timeout: 5 * time.Second}
}

func testCreds() domain.Credentials {
	return domain.Credentials{APIKey: "k", APISecret: "s"}
}
