package ledger

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"usdt-pay-verifier/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Upstream field aliases, highest priority first.
var (
	orderIDFields   = []string{"orderId", "transactionId", "prepayId", "merchantTradeNo"}
	timestampFields = []string{"transactionTime", "createTime", "time"}
	currencyFields  = []string{"currency", "coin"}
)

type rawRecord map[string]json.RawMessage

// str reads a field as text whether upstream sent a string or a number.
func (r rawRecord) str(key string) string {
	raw, ok := r[key]
	if !ok {
		return ""
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return strings.TrimSpace(s)
	}
	if raw[0] == '{' || raw[0] == '[' {
		return ""
	}
	return string(raw)
}

func (r rawRecord) first(keys []string) string {
	for _, k := range keys {
		if v := r.str(k); v != "" {
			return v
		}
	}
	return ""
}

// NormalizeTimestamp reads a unix timestamp of unknown unit. More than ten
// integer digits is taken as milliseconds, otherwise seconds. Unparseable
// input yields the zero time.
func NormalizeTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		raw = raw[:i]
	}
	if raw == "" {
		return time.Time{}
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return time.Time{}
	}
	if len(raw) > 10 {
		return time.UnixMilli(n)
	}
	return time.Unix(n, 0)
}

func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// NormalizePayTransaction maps one Binance Pay record. Records without any
// identifier are dropped.
func NormalizePayTransaction(r rawRecord) (domain.PayTransaction, bool) {
	var ids []string
	seen := make(map[string]bool, len(orderIDFields))
	for _, k := range orderIDFields {
		if v := r.str(k); v != "" && !seen[v] {
			seen[v] = true
			ids = append(ids, v)
		}
	}
	if len(ids) == 0 {
		return domain.PayTransaction{}, false
	}

	return domain.PayTransaction{
		OrderID:   ids[0],
		IDs:       ids,
		Amount:    parseAmount(r.str("amount")),
		Currency:  r.first(currencyFields),
		Timestamp: NormalizeTimestamp(r.first(timestampFields)),
	}, true
}

// NormalizeDeposit maps one capital deposit record. Records without a tx id are dropped.
func NormalizeDeposit(r rawRecord) (domain.Deposit, bool) {
	txID := r.str("txId")
	if txID == "" {
		return domain.Deposit{}, false
	}
	return domain.Deposit{
		TxHash:     txID,
		Amount:     parseAmount(r.str("amount")),
		Coin:       r.str("coin"),
		Network:    r.str("network"),
		InsertTime: NormalizeTimestamp(r.str("insertTime")),
	}, true
}
