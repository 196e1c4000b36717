package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"usdt-pay-verifier/config"
	"usdt-pay-verifier/internal/adapter/chain"
	"usdt-pay-verifier/internal/core/domain"

	"github.com/rs/zerolog"
)

const maxResponseBytes = 4 << 20

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.LedgerClient over the relay.
type Client struct {
	httpClient HTTPClient
	baseURL    string
	secret     string
	log        zerolog.Logger
}

// NewClient builds a relay client. A nil httpClient gets one bounded by cfg.Timeout.
func NewClient(cfg config.RelayConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		secret:     cfg.Secret,
		log:        log,
	}
}

// FetchPayTransactions returns up to limit recent Binance Pay entries.
func (c *Client) FetchPayTransactions(ctx context.Context, creds domain.Credentials, limit int) ([]domain.PayTransaction, error) {
	body, err := c.call(ctx, ActionPayTransactions, PayTransactionsPayload{
		APIKey:    creds.APIKey,
		APISecret: creds.APISecret,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data []rawRecord `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, malformed("decode pay history: %v", err)
	}

	txns := make([]domain.PayTransaction, 0, len(envelope.Data))
	for _, rec := range envelope.Data {
		if tx, ok := NormalizePayTransaction(rec); ok {
			txns = append(txns, tx)
		}
	}
	return txns, nil
}

// FetchDeposits returns BSC USDT deposits credited since the given time.
func (c *Client) FetchDeposits(ctx context.Context, creds domain.Credentials, since time.Time) ([]domain.Deposit, error) {
	body, err := c.call(ctx, ActionDeposits, DepositsPayload{
		APIKey:    creds.APIKey,
		APISecret: creds.APISecret,
		StartTime: since.UnixMilli(),
	})
	if err != nil {
		return nil, err
	}

	var records []rawRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, malformed("decode deposit history: %v", err)
	}

	deposits := make([]domain.Deposit, 0, len(records))
	for _, rec := range records {
		if d, ok := NormalizeDeposit(rec); ok {
			deposits = append(deposits, d)
		}
	}
	return deposits, nil
}

// FetchOnChainTransfer looks the hash up on the explorer. It returns nil, nil
// when the explorer has no such transaction.
func (c *Client) FetchOnChainTransfer(ctx context.Context, txHash string) (*domain.OnChainTransfer, error) {
	body, err := c.call(ctx, ActionTxByHash, TxByHashPayload{TxHash: txHash})
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
		Error  *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, malformed("decode explorer response: %v", err)
	}
	if envelope.Error != nil {
		return nil, &domain.LedgerError{
			Kind:   domain.LedgerRejected,
			Detail: fmt.Sprintf("explorer rpc error %d: %s", envelope.Error.Code, envelope.Error.Message),
		}
	}

	result := bytes.TrimSpace(envelope.Result)
	if len(result) == 0 || bytes.Equal(result, []byte("null")) {
		return nil, nil
	}
	if result[0] == '"' {
		// Explorer-level failures (rate limit, bad key) arrive as a string result.
		var msg string
		_ = json.Unmarshal(result, &msg)
		return nil, &domain.LedgerError{Kind: domain.LedgerRejected, Detail: "explorer: " + msg}
	}

	var raw chain.RawTransaction
	if err := json.Unmarshal(result, &raw); err != nil {
		return nil, malformed("decode explorer transaction: %v", err)
	}
	transfer, err := chain.DecodeTransfer(raw)
	if err != nil {
		return nil, malformed("%v", err)
	}
	if transfer.Hash == "" {
		transfer.Hash = txHash
	}
	return transfer, nil
}

// Ping implements ports.HealthChecker against the relay's health route.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("relay health status %d", resp.StatusCode)
	}
	return nil
}

// Name returns the dependency name.
func (c *Client) Name() string {
	return "relay"
}

// call posts one action to the relay and returns the upstream body once it
// has passed the envelope checks.
func (c *Client) call(ctx context.Context, action string, payload any) ([]byte, error) {
	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", action, err)
	}
	reqBody, err := json.Marshal(Request{Action: action, Payload: rawPayload})
	if err != nil {
		return nil, fmt.Errorf("marshal relay request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+RelayPath, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.secret != "" {
		req.Header.Set(SecretHeader, c.secret)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.LedgerError{Kind: domain.LedgerUnreachable, Detail: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &domain.LedgerError{Kind: domain.LedgerUnreachable, Detail: "read relay response: " + err.Error()}
	}

	c.log.Debug().
		Str("action", action).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("relay call completed")

	if err := checkEnvelope(resp.StatusCode, body); err != nil {
		var le *domain.LedgerError
		if errors.As(err, &le) {
			c.log.Warn().Str("action", action).Str("kind", string(le.Kind)).Msg("relay call failed")
		}
		return nil, err
	}
	return body, nil
}

type upstreamStatus struct {
	Code       json.RawMessage `json:"code"`
	Msg        string          `json:"msg"`
	Message    string          `json:"message"`
	RelayError string          `json:"relay_error"`
}

// checkEnvelope classifies a relay response. Geo restriction is checked first
// because Binance reports it with code 0.
func checkEnvelope(status int, body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		if status == http.StatusUnavailableForLegalReasons {
			return &domain.LedgerError{Kind: domain.LedgerGeoRestricted, Detail: "upstream status 451"}
		}
		return malformed("relay status %d, non-JSON body", status)
	}

	var st upstreamStatus
	if len(trimmed) > 0 && trimmed[0] == '{' {
		_ = json.Unmarshal(trimmed, &st)
	}
	text := st.Msg
	if text == "" {
		text = st.Message
	}

	if st.RelayError != "" {
		return &domain.LedgerError{Kind: domain.LedgerUnreachable, Detail: fmt.Sprintf("relay %d: %s", status, st.RelayError)}
	}
	if status == http.StatusUnavailableForLegalReasons || status == http.StatusForbidden ||
		strings.Contains(strings.ToLower(text), "restricted location") {
		return &domain.LedgerError{Kind: domain.LedgerGeoRestricted, Detail: fmt.Sprintf("upstream %d: %s", status, text)}
	}
	if status >= http.StatusBadRequest {
		return &domain.LedgerError{Kind: domain.LedgerRejected, Detail: fmt.Sprintf("upstream %d: %s", status, text)}
	}
	if len(st.Code) > 0 && !IsSuccessCode(st.Code) {
		return &domain.LedgerError{Kind: domain.LedgerRejected, Detail: fmt.Sprintf("upstream code %s: %s", st.Code, text)}
	}
	return nil
}

// IsSuccessCode accepts both "0" and "000000", string or number.
func IsSuccessCode(raw json.RawMessage) bool {
	code := strings.Trim(string(bytes.TrimSpace(raw)), `"`)
	return code == "0" || code == "000000" || code == "null"
}

func malformed(format string, args ...any) error {
	return &domain.LedgerError{Kind: domain.LedgerMalformed, Detail: fmt.Sprintf(format, args...)}
}
