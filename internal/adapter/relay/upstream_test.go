package relay

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"usdt-pay-verifier/config"
	"usdt-pay-verifier/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUpstream(binanceURL, bscscanURL string, recvWindow int64) *Upstream {
	u := NewUpstream(
		config.BinanceConfig{BaseURL: binanceURL, RecvWindow: recvWindow},
		config.BscScanConfig{BaseURL: bscscanURL, APIKey: "scan-key"},
		service.NewHMACSignatureService(),
		http.DefaultClient,
	)
	u.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return u
}

func TestUpstream_PayTransactions_SignsCanonicalQuery(t *testing.T) {
	var gotQuery, gotKey, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotKey = r.Header.Get("X-MBX-APIKEY")
		_, _ = w.Write([]byte(`{"code":"000000","data":[]}`))
	}))
	defer srv.Close()

	u := newTestUpstream(srv.URL, "", 0)
	resp, err := u.PayTransactions(context.Background(), "api-key", "api-secret", 50)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.JSONEq(t, `{"code":"000000","data":[]}`, string(resp.Body))

	assert.Equal(t, "/sapi/v1/pay/transactions", gotPath)
	assert.Equal(t, "api-key", gotKey)

	canonical := "timestamp=1700000000000&limit=50"
	want := service.NewHMACSignatureService().Sign("api-secret", canonical)
	assert.Equal(t, canonical+"&signature="+want, gotQuery)
}

func TestUpstream_Deposits_FiltersBSCUSDT(t *testing.T) {
	var q url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sapi/v1/capital/deposit/hisrec", r.URL.Path)
		q = r.URL.Query()
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	u := newTestUpstream(srv.URL, "", 10000)
	_, err := u.Deposits(context.Background(), "k", "s", 1699990000000)
	require.NoError(t, err)

	assert.Equal(t, "USDT", q.Get("coin"))
	assert.Equal(t, "BSC", q.Get("network"))
	assert.Equal(t, "1699990000000", q.Get("startTime"))
	assert.Equal(t, "10000", q.Get("recvWindow"))
	assert.Len(t, q.Get("signature"), 64)
}

func TestUpstream_TxByHash(t *testing.T) {
	var q url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q = r.URL.Query()
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":null}`))
	}))
	defer srv.Close()

	u := newTestUpstream("", srv.URL+"/api", 0)
	resp, err := u.TxByHash(context.Background(), "0x"+strings.Repeat("ab", 32))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)

	assert.Equal(t, "proxy", q.Get("module"))
	assert.Equal(t, "eth_getTransactionByHash", q.Get("action"))
	assert.Equal(t, "scan-key", q.Get("apikey"))
}

func TestUpstream_TxByHash_EscapesAPIKey(t *testing.T) {
	var q url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q = r.URL.Query()
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":null}`))
	}))
	defer srv.Close()

	u := NewUpstream(
		config.BinanceConfig{},
		config.BscScanConfig{BaseURL: srv.URL + "/api", APIKey: "k&module=account"},
		service.NewHMACSignatureService(),
		http.DefaultClient,
	)
	_, err := u.TxByHash(context.Background(), "0x"+strings.Repeat("ab", 32))
	require.NoError(t, err)

	assert.Equal(t, "k&module=account", q.Get("apikey"))
	assert.Equal(t, []string{"proxy"}, q["module"])
}

func TestUpstream_PassesErrorStatusThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnavailableForLegalReasons)
		_, _ = w.Write([]byte(`{"code":0,"msg":"Service unavailable from a restricted location"}`))
	}))
	defer srv.Close()

	u := newTestUpstream(srv.URL, "", 0)
	resp, err := u.PayTransactions(context.Background(), "k", "s", 50)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnavailableForLegalReasons, resp.Status)
}

func TestUpstream_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	u := newTestUpstream(base, "", 0)
	_, err := u.PayTransactions(context.Background(), "k", "s", 50)
	assert.Error(t, err)
}
