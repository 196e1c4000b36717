package service

import (
	"context"
	"testing"
	"time"

	"usdt-pay-verifier/internal/core/domain"
	"usdt-pay-verifier/internal/core/ports/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	fixedNow  = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	testCreds = domain.Credentials{APIKey: "key", APISecret: "secret"}
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestBinancePayVerifier(t *testing.T) (*BinancePayVerifierImpl, *mocks.MockLedgerClient) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockLedgerClient(ctrl)
	v := NewBinancePayVerifier(ledger, 50, newTestLogger())
	v.now = func() time.Time { return fixedNow }
	return v, ledger
}

func payTx(id, amount, currency string, at time.Time) domain.PayTransaction {
	return domain.PayTransaction{OrderID: id, IDs: []string{id}, Amount: dec(amount), Currency: currency, Timestamp: at}
}

func TestBinancePayVerifier_Accepts(t *testing.T) {
	v, ledger := newTestBinancePayVerifier(t)

	ledger.EXPECT().FetchPayTransactions(gomock.Any(), testCreds, 50).Return([]domain.PayTransaction{
		payTx("OTHER", "5", "USDT", fixedNow.Add(-time.Minute)),
		payTx("T1", "10.005", "USDT", fixedNow.Add(-time.Hour)),
	}, nil)

	res := v.Verify(context.Background(), testCreds, "T1", dec("10.00"), 24*time.Hour)
	assert.True(t, res.Verified)
	require.NotNil(t, res.Amount)
	assert.True(t, res.Amount.Equal(dec("10.005")))
	assert.Empty(t, res.Error)
}

func TestBinancePayVerifier_MatchesAlias(t *testing.T) {
	v, ledger := newTestBinancePayVerifier(t)

	tx := payTx("ORDER-1", "10", "USDT", fixedNow.Add(-time.Minute))
	tx.IDs = []string{"ORDER-1", "PREPAY-9"}
	ledger.EXPECT().FetchPayTransactions(gomock.Any(), testCreds, 50).Return([]domain.PayTransaction{tx}, nil)

	res := v.Verify(context.Background(), testCreds, "PREPAY-9", dec("10"), time.Hour)
	assert.True(t, res.Verified)
}

func TestBinancePayVerifier_FirstMatchWins(t *testing.T) {
	v, ledger := newTestBinancePayVerifier(t)

	ledger.EXPECT().FetchPayTransactions(gomock.Any(), testCreds, 50).Return([]domain.PayTransaction{
		payTx("T1", "3", "USDT", fixedNow.Add(-time.Minute)),
		payTx("T1", "10", "USDT", fixedNow.Add(-time.Minute)),
	}, nil)

	res := v.Verify(context.Background(), testCreds, "T1", dec("10"), time.Hour)
	assert.False(t, res.Verified)
	assert.Contains(t, res.Error, "Amount mismatch")
}

func TestBinancePayVerifier_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		tx         domain.PayTransaction
		expected   string
		wantErr    string
		wantAmount bool
	}{
		{
			name:       "amount outside tolerance",
			tx:         payTx("T1", "9.99", "USDT", fixedNow.Add(-time.Minute)),
			expected:   "10.00",
			wantErr:    "Amount mismatch: expected 10.00 USDT, got 9.99 USDT",
			wantAmount: true,
		},
		{
			name:       "exactly one cent off",
			tx:         payTx("T1", "10.01", "USDT", fixedNow.Add(-time.Minute)),
			expected:   "10.00",
			wantErr:    "Amount mismatch",
			wantAmount: true,
		},
		{
			name:       "too old",
			tx:         payTx("T1", "10", "USDT", fixedNow.Add(-25*time.Hour)),
			expected:   "10",
			wantErr:    "Transaction is too old",
			wantAmount: true,
		},
		{
			name:       "wrong currency",
			tx:         payTx("T1", "10", "BUSD", fixedNow.Add(-time.Minute)),
			expected:   "10",
			wantErr:    "Currency mismatch: expected USDT, got BUSD",
			wantAmount: true,
		},
		{
			name:       "lowercase currency is not USDT",
			tx:         payTx("T1", "10", "usdt", fixedNow.Add(-time.Minute)),
			expected:   "10",
			wantErr:    "Currency mismatch",
			wantAmount: true,
		},
		{
			name:       "unknown timestamp",
			tx:         payTx("T1", "10", "USDT", time.Time{}),
			expected:   "10",
			wantErr:    msgUnknownTxTime,
			wantAmount: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ledger := newTestBinancePayVerifier(t)
			ledger.EXPECT().FetchPayTransactions(gomock.Any(), testCreds, 50).Return([]domain.PayTransaction{tt.tx}, nil)

			res := v.Verify(context.Background(), testCreds, "T1", dec(tt.expected), 24*time.Hour)
			assert.False(t, res.Verified)
			assert.Contains(t, res.Error, tt.wantErr)
			assert.Equal(t, tt.wantAmount, res.Amount != nil)
		})
	}
}

func TestBinancePayVerifier_TimeWindowBoundary(t *testing.T) {
	tests := []struct {
		name     string
		age      time.Duration
		amount   string
		window   time.Duration
		verified bool
	}{
		{"one second inside", time.Hour - time.Second, "10", time.Hour, true},
		{"exactly at window", time.Hour, "10", time.Hour, true},
		{"one second outside", time.Hour + time.Second, "10", time.Hour, false},
		{"two hours old against one hour window", 2 * time.Hour, "25", time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ledger := newTestBinancePayVerifier(t)
			ledger.EXPECT().FetchPayTransactions(gomock.Any(), testCreds, 50).Return([]domain.PayTransaction{
				payTx("ORDER1", tt.amount, "USDT", fixedNow.Add(-tt.age)),
			}, nil)

			res := v.Verify(context.Background(), testCreds, "ORDER1", dec(tt.amount), tt.window)
			assert.Equal(t, tt.verified, res.Verified)
			require.NotNil(t, res.Amount)
			assert.True(t, res.Amount.Equal(dec(tt.amount)))
			if !tt.verified {
				assert.Contains(t, res.Error, "too old")
			}
		})
	}
}

func TestBinancePayVerifier_NotFound(t *testing.T) {
	v, ledger := newTestBinancePayVerifier(t)
	ledger.EXPECT().FetchPayTransactions(gomock.Any(), testCreds, 50).Return(nil, nil)

	res := v.Verify(context.Background(), testCreds, "T1", dec("10"), time.Hour)
	assert.False(t, res.Verified)
	assert.Equal(t, msgOrderNotFound, res.Error)
	assert.Nil(t, res.Amount)
}

func TestBinancePayVerifier_LedgerFailureIsSafe(t *testing.T) {
	v, ledger := newTestBinancePayVerifier(t)
	ledger.EXPECT().FetchPayTransactions(gomock.Any(), testCreds, 50).Return(nil,
		&domain.LedgerError{Kind: domain.LedgerRejected, Detail: `{"code":"-1022","msg":"Signature for this request is not valid."}`})

	res := v.Verify(context.Background(), testCreds, "T1", dec("10"), time.Hour)
	assert.False(t, res.Verified)
	assert.Equal(t, "Payment provider rejected the request", res.Error)
	assert.NotContains(t, res.Error, "Signature")
	assert.Contains(t, res.Detail, "Signature")
}

func TestNewBinancePayVerifier_DefaultLimit(t *testing.T) {
	v := NewBinancePayVerifier(nil, 0, newTestLogger())
	assert.Equal(t, defaultHistorySize, v.historyLimit)
}
