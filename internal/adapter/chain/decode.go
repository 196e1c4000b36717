// Package chain decodes BSC explorer transactions into token transfers.
package chain

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"usdt-pay-verifier/internal/core/domain"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
)

// BEP20 shares the ERC-20 ABI; only transfer is needed here.
const bep20ABI = `[
	{
		"constant": false,
		"inputs": [
			{"name": "_to", "type": "address"},
			{"name": "_value", "type": "uint256"}
		],
		"name": "transfer",
		"outputs": [{"name": "", "type": "bool"}],
		"type": "function"
	}
]`

// TokenDecimals is the base-unit exponent of BSC USDT.
const TokenDecimals = 18

var transferMethod = mustTransferMethod()

func mustTransferMethod() abi.Method {
	parsed, err := abi.JSON(strings.NewReader(bep20ABI))
	if err != nil {
		panic(fmt.Sprintf("parse bep20 abi: %v", err))
	}
	return parsed.Methods["transfer"]
}

// ErrMalformedTransaction is returned for explorer records that cannot be decoded.
var ErrMalformedTransaction = errors.New("malformed chain transaction")

// RawTransaction is the subset of eth_getTransactionByHash the verifier reads.
type RawTransaction struct {
	Hash  string `json:"hash"`
	To    string `json:"to"`
	Value string `json:"value"`
	Input string `json:"input"`
}

// DecodeTransfer extracts recipient and amount. A transfer(address,uint256)
// call is decoded from its input; anything else is read as a native value move.
func DecodeTransfer(tx RawTransaction) (*domain.OnChainTransfer, error) {
	input := common.FromHex(tx.Input)
	if len(input) >= 4 && bytes.Equal(input[:4], transferMethod.ID) {
		args, err := transferMethod.Inputs.Unpack(input[4:])
		if err != nil {
			return nil, fmt.Errorf("%w: unpack transfer: %v", ErrMalformedTransaction, err)
		}
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: transfer has %d args", ErrMalformedTransaction, len(args))
		}
		recipient, ok := args[0].(common.Address)
		if !ok {
			return nil, fmt.Errorf("%w: transfer recipient type %T", ErrMalformedTransaction, args[0])
		}
		value, ok := args[1].(*big.Int)
		if !ok {
			return nil, fmt.Errorf("%w: transfer value type %T", ErrMalformedTransaction, args[1])
		}
		return &domain.OnChainTransfer{
			Hash:      tx.Hash,
			Token:     common.HexToAddress(tx.To).Hex(),
			Recipient: recipient.Hex(),
			Amount:    FromBaseUnits(value),
		}, nil
	}

	if tx.To == "" {
		return nil, fmt.Errorf("%w: missing recipient", ErrMalformedTransaction)
	}
	value := new(big.Int)
	if tx.Value != "" && tx.Value != "0x" {
		v, err := hexutil.DecodeBig(tx.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: value %q: %v", ErrMalformedTransaction, tx.Value, err)
		}
		value = v
	}
	return &domain.OnChainTransfer{
		Hash:      tx.Hash,
		Recipient: normalizeAddress(tx.To),
		Amount:    FromBaseUnits(value),
	}, nil
}

func normalizeAddress(a string) string {
	if common.IsHexAddress(a) {
		return common.HexToAddress(a).Hex()
	}
	return a
}

// FromBaseUnits converts an 18-decimal integer amount to a decimal.
func FromBaseUnits(v *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(v, -TokenDecimals)
}

// SameAddress compares two hex addresses case-insensitively.
func SameAddress(a, b string) bool {
	if !common.IsHexAddress(a) || !common.IsHexAddress(b) {
		return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
	}
	return common.HexToAddress(a) == common.HexToAddress(b)
}
