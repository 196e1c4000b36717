// Package ledger talks to the forwarding relay that fronts Binance and BscScan.
package ledger

import "encoding/json"

// Relay wire protocol shared by Client and the relay server.
const (
	RelayPath    = "/v1/relay"
	SecretHeader = "X-Relay-Secret"

	ActionPayTransactions = "binance.pay.transactions"
	ActionDeposits        = "binance.capital.deposits"
	ActionTxByHash        = "bscscan.tx.by_hash"
)

// Request is the body of every relay call.
type Request struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// PayTransactionsPayload asks for the merchant's Binance Pay history.
type PayTransactionsPayload struct {
	APIKey    string `json:"api_key"`
	APISecret string `json:"api_secret"`
	Limit     int    `json:"limit"`
}

// DepositsPayload asks for BSC USDT deposits since StartTime (unix ms).
type DepositsPayload struct {
	APIKey    string `json:"api_key"`
	APISecret string `json:"api_secret"`
	StartTime int64  `json:"start_time"`
}

// TxByHashPayload asks the explorer for one transaction.
type TxByHashPayload struct {
	TxHash string `json:"tx_hash"`
}

// RelayError is the body the relay returns for its own failures, as opposed
// to upstream bodies it passes through.
type RelayError struct {
	RelayError string `json:"relay_error"`
}
