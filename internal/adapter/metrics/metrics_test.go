package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"usdt-pay-verifier/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerification_ObserveVerification(t *testing.T) {
	m := NewVerification()

	m.ObserveVerification(domain.PaymentTypeBinancePay, "verified", 120*time.Millisecond)
	m.ObserveVerification(domain.PaymentTypeBinancePay, "verified", 80*time.Millisecond)
	m.ObserveVerification(domain.PaymentTypeBEP20, "rejected", time.Second)
	m.ObserveVerification(domain.PaymentType("paypal"), "not_configured", 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.attempts.WithLabelValues("binance_pay", "verified")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.attempts.WithLabelValues("bep20", "rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.attempts.WithLabelValues("unknown", "not_configured")))
	assert.Equal(t, 3, testutil.CollectAndCount(m.duration))
}

func TestVerification_Handler(t *testing.T) {
	m := NewVerification()
	m.ObserveVerification(domain.PaymentTypeBEP20, "verified", time.Millisecond)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `verifier_verifications_total{outcome="verified",payment_type="bep20"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
