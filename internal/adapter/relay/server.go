package relay

import (
	"context"
	"crypto/hmac"
	"encoding/json"
	"net/http"
	"regexp"

	"usdt-pay-verifier/internal/adapter/http/middleware"
	"usdt-pay-verifier/internal/adapter/ledger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var txHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// Forwarder is what the handler needs from Upstream.
type Forwarder interface {
	PayTransactions(ctx context.Context, apiKey, apiSecret string, limit int) (*Response, error)
	Deposits(ctx context.Context, apiKey, apiSecret string, startTime int64) (*Response, error)
	TxByHash(ctx context.Context, txHash string) (*Response, error)
}

// Handler serves the relay protocol.
type Handler struct {
	upstream Forwarder
	secret   string
	log      zerolog.Logger
}

// NewHandler creates a relay handler. An empty secret disables authentication.
func NewHandler(upstream Forwarder, secret string, log zerolog.Logger) *Handler {
	return &Handler{upstream: upstream, secret: secret, log: log}
}

// NewRouter wires the relay routes.
func NewRouter(h *Handler, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.MaxBodySize(64 << 10))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	r.POST(ledger.RelayPath, h.Relay)
	return r
}

func relayError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ledger.RelayError{RelayError: msg})
}

// Relay handles POST /v1/relay.
func (h *Handler) Relay(c *gin.Context) {
	if h.secret != "" && !hmac.Equal([]byte(c.GetHeader(ledger.SecretHeader)), []byte(h.secret)) {
		relayError(c, http.StatusUnauthorized, "invalid relay secret")
		return
	}

	var req ledger.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		relayError(c, http.StatusBadRequest, "invalid relay request")
		return
	}

	ctx := c.Request.Context()
	var (
		resp *Response
		err  error
	)
	switch req.Action {
	case ledger.ActionPayTransactions:
		var p ledger.PayTransactionsPayload
		if json.Unmarshal(req.Payload, &p) != nil || p.APIKey == "" || p.APISecret == "" {
			relayError(c, http.StatusBadRequest, "api_key and api_secret are required")
			return
		}
		if p.Limit <= 0 || p.Limit > 100 {
			p.Limit = 50
		}
		resp, err = h.upstream.PayTransactions(ctx, p.APIKey, p.APISecret, p.Limit)

	case ledger.ActionDeposits:
		var p ledger.DepositsPayload
		if json.Unmarshal(req.Payload, &p) != nil || p.APIKey == "" || p.APISecret == "" {
			relayError(c, http.StatusBadRequest, "api_key and api_secret are required")
			return
		}
		resp, err = h.upstream.Deposits(ctx, p.APIKey, p.APISecret, p.StartTime)

	case ledger.ActionTxByHash:
		var p ledger.TxByHashPayload
		if json.Unmarshal(req.Payload, &p) != nil || !txHashPattern.MatchString(p.TxHash) {
			relayError(c, http.StatusBadRequest, "tx_hash must be a 0x-prefixed 32-byte hex string")
			return
		}
		resp, err = h.upstream.TxByHash(ctx, p.TxHash)

	default:
		relayError(c, http.StatusBadRequest, "unknown action")
		return
	}

	if err != nil {
		h.log.Warn().Err(err).Str("action", req.Action).Msg("upstream call failed")
		relayError(c, http.StatusBadGateway, "upstream unreachable")
		return
	}

	h.log.Debug().Str("action", req.Action).Int("upstream_status", resp.Status).Msg("relayed")
	c.Data(resp.Status, "application/json", resp.Body)
}
