package relay

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"usdt-pay-verifier/internal/adapter/ledger"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeForwarder struct {
	resp     *Response
	err      error
	lastCall string
	limit    int
}

func (f *fakeForwarder) PayTransactions(_ context.Context, _, _ string, limit int) (*Response, error) {
	f.lastCall, f.limit = ledger.ActionPayTransactions, limit
	return f.resp, f.err
}

func (f *fakeForwarder) Deposits(_ context.Context, _, _ string, _ int64) (*Response, error) {
	f.lastCall = ledger.ActionDeposits
	return f.resp, f.err
}

func (f *fakeForwarder) TxByHash(_ context.Context, _ string) (*Response, error) {
	f.lastCall = ledger.ActionTxByHash
	return f.resp, f.err
}

func doRelay(t *testing.T, router http.Handler, secret, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, ledger.RelayPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set(ledger.SecretHeader, secret)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRelay_RequiresSecret(t *testing.T) {
	fwd := &fakeForwarder{resp: &Response{Status: 200, Body: []byte(`{}`)}}
	router := NewRouter(NewHandler(fwd, "s3cret", zerolog.Nop()), zerolog.Nop())

	w := doRelay(t, router, "wrong", `{"action":"binance.pay.transactions","payload":{"api_key":"k","api_secret":"s","limit":50}}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "relay_error")
	assert.Empty(t, fwd.lastCall)

	w = doRelay(t, router, "s3cret", `{"action":"binance.pay.transactions","payload":{"api_key":"k","api_secret":"s","limit":50}}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ledger.ActionPayTransactions, fwd.lastCall)
}

func TestRelay_NoSecretConfigured(t *testing.T) {
	fwd := &fakeForwarder{resp: &Response{Status: 200, Body: []byte(`[]`)}}
	router := NewRouter(NewHandler(fwd, "", zerolog.Nop()), zerolog.Nop())

	w := doRelay(t, router, "", `{"action":"binance.capital.deposits","payload":{"api_key":"k","api_secret":"s","start_time":1}}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestRelay_PassesUpstreamStatusThrough(t *testing.T) {
	fwd := &fakeForwarder{resp: &Response{Status: 451, Body: []byte(`{"code":0,"msg":"restricted location"}`)}}
	router := NewRouter(NewHandler(fwd, "", zerolog.Nop()), zerolog.Nop())

	w := doRelay(t, router, "", `{"action":"binance.pay.transactions","payload":{"api_key":"k","api_secret":"s"}}`)
	assert.Equal(t, 451, w.Code)
	assert.JSONEq(t, `{"code":0,"msg":"restricted location"}`, w.Body.String())
	assert.Equal(t, 50, fwd.limit, "missing limit defaults to 50")
}

func TestRelay_Validation(t *testing.T) {
	router := NewRouter(NewHandler(&fakeForwarder{}, "", zerolog.Nop()), zerolog.Nop())

	tests := []struct {
		name string
		body string
	}{
		{"not json", `nope`},
		{"unknown action", `{"action":"binance.withdraw","payload":{}}`},
		{"missing credentials", `{"action":"binance.pay.transactions","payload":{"limit":5}}`},
		{"bad tx hash", `{"action":"bscscan.tx.by_hash","payload":{"tx_hash":"0x123"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRelay(t, router, "", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "relay_error")
		})
	}
}

func TestRelay_UpstreamFailureIsBadGateway(t *testing.T) {
	fwd := &fakeForwarder{err: errors.New("dial tcp: i/o timeout")}
	router := NewRouter(NewHandler(fwd, "", zerolog.Nop()), zerolog.Nop())

	w := doRelay(t, router, "", `{"action":"bscscan.tx.by_hash","payload":{"tx_hash":"0x`+strings.Repeat("0", 64)+`"}}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotContains(t, w.Body.String(), "i/o timeout")
}

// The ledger client and relay must agree on the wire protocol end to end.
func TestRelay_RoundTripWithLedgerClient(t *testing.T) {
	fwd := &fakeForwarder{resp: &Response{Status: 200, Body: []byte(
		`{"code":"000000","data":[{"orderId":"ORDER1","amount":"25","currency":"USDT","transactionTime":1700000000000}]}`)}}
	srv := httptest.NewServer(NewRouter(NewHandler(fwd, "s3cret", zerolog.Nop()), zerolog.Nop()))
	defer srv.Close()

	client := ledger.NewClient(relayConfig(srv.URL, "s3cret"), nil, zerolog.Nop())
	txns, err := client.FetchPayTransactions(context.Background(), testCreds(), 50)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "ORDER1", txns[0].OrderID)
	assert.NoError(t, client.Ping(context.Background()))
}
