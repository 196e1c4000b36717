// Package relay is the stateless forwarder that signs and sends exchange and
// explorer requests on behalf of the verification API.
package relay

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"usdt-pay-verifier/config"
	"usdt-pay-verifier/internal/core/ports"
	"usdt-pay-verifier/internal/service"
)

const (
	payTransactionsPath = "/sapi/v1/pay/transactions"
	depositHistoryPath  = "/sapi/v1/capital/deposit/hisrec"
	apiKeyHeader        = "X-MBX-APIKEY"
	maxUpstreamBytes    = 4 << 20
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Upstream performs the actual calls to Binance and BscScan.
type Upstream struct {
	httpClient HTTPClient
	signer     ports.SignatureService
	binanceURL string
	recvWindow int64
	bscscanURL string
	bscscanKey string
	now        func() time.Time
}

// NewUpstream builds the upstream caller from relay-binary config.
func NewUpstream(binance config.BinanceConfig, bscscan config.BscScanConfig, signer ports.SignatureService, httpClient HTTPClient) *Upstream {
	return &Upstream{
		httpClient: httpClient,
		signer:     signer,
		binanceURL: strings.TrimRight(binance.BaseURL, "/"),
		recvWindow: binance.RecvWindow,
		bscscanURL: bscscan.BaseURL,
		bscscanKey: bscscan.APIKey,
		now:        time.Now,
	}
}

// Response is an upstream reply passed back verbatim.
type Response struct {
	Status int
	Body   []byte
}

// PayTransactions calls the signed Binance Pay history endpoint.
func (u *Upstream) PayTransactions(ctx context.Context, apiKey, apiSecret string, limit int) (*Response, error) {
	params := []service.QueryParam{
		{Key: "timestamp", Value: strconv.FormatInt(u.now().UnixMilli(), 10)},
		{Key: "limit", Value: strconv.Itoa(limit)},
	}
	return u.signedGet(ctx, payTransactionsPath, apiKey, apiSecret, params)
}

// Deposits calls the signed capital deposit history endpoint, filtered to BSC USDT.
func (u *Upstream) Deposits(ctx context.Context, apiKey, apiSecret string, startTime int64) (*Response, error) {
	params := []service.QueryParam{
		{Key: "coin", Value: "USDT"},
		{Key: "network", Value: "BSC"},
		{Key: "startTime", Value: strconv.FormatInt(startTime, 10)},
		{Key: "timestamp", Value: strconv.FormatInt(u.now().UnixMilli(), 10)},
	}
	return u.signedGet(ctx, depositHistoryPath, apiKey, apiSecret, params)
}

func (u *Upstream) signedGet(ctx context.Context, path, apiKey, apiSecret string, params []service.QueryParam) (*Response, error) {
	if u.recvWindow > 0 {
		params = append(params, service.QueryParam{Key: "recvWindow", Value: strconv.FormatInt(u.recvWindow, 10)})
	}
	query := service.BuildCanonicalQuery(params...)
	signature := u.signer.Sign(apiSecret, query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		u.binanceURL+path+"?"+query+"&signature="+signature, nil)
	if err != nil {
		return nil, fmt.Errorf("build binance request: %w", err)
	}
	req.Header.Set(apiKeyHeader, apiKey)
	return u.do(req)
}

// TxByHash asks BscScan's proxy module for eth_getTransactionByHash.
func (u *Upstream) TxByHash(ctx context.Context, txHash string) (*Response, error) {
	params := []service.QueryParam{
		{Key: "module", Value: "proxy"},
		{Key: "action", Value: "eth_getTransactionByHash"},
		{Key: "txhash", Value: txHash},
	}
	if u.bscscanKey != "" {
		params = append(params, service.QueryParam{Key: "apikey", Value: u.bscscanKey})
	}
	query := service.BuildCanonicalQuery(params...)

	sep := "?"
	if strings.Contains(u.bscscanURL, "?") {
		sep = "&"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.bscscanURL+sep+query, nil)
	if err != nil {
		return nil, fmt.Errorf("build bscscan request: %w", err)
	}
	return u.do(req)
}

func (u *Upstream) do(req *http.Request) (*Response, error) {
	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Host, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", req.URL.Host, err)
	}
	return &Response{Status: resp.StatusCode, Body: body}, nil
}
