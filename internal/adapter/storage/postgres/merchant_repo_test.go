package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"usdt-pay-verifier/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestMerchantRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)
	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT .+ FROM merchants WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "status", "created_at", "updated_at"}).
			AddRow(id, "Test Shop", domain.MerchantStatusActive, now, now))

	m, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "Test Shop", m.Name)
	assert.True(t, m.IsActive())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM merchants WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "status", "created_at", "updated_at"}))

	m, err := repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, m)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantRepo_GetByID_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM merchants WHERE id").
		WithArgs(id).
		WillReturnError(errors.New("connection reset"))

	m, err := repo.GetByID(context.Background(), id)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "get merchant by id")
	assert.Nil(t, m)
}

func accessTokenColumns() []string {
	return []string{"id", "merchant_id", "token_hash", "active", "created_at", "revoked_at"}
}

func TestAccessTokenRepo_GetByHash(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccessTokenRepo(mock)
	id, merchantID := uuid.New(), uuid.New()
	hash := domain.HashAccessToken("tok_live_123")
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT .+ FROM access_tokens WHERE token_hash").
		WithArgs(hash).
		WillReturnRows(pgxmock.NewRows(accessTokenColumns()).
			AddRow(id, merchantID, hash, true, now, (*time.Time)(nil)))

	tok, err := repo.GetByHash(context.Background(), hash)
	require.NoError(t, err)
	require.NotNil(t, tok)
	assert.Equal(t, merchantID, tok.MerchantID)
	assert.True(t, tok.Active)
	assert.Nil(t, tok.RevokedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessTokenRepo_GetByHash_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccessTokenRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM access_tokens WHERE token_hash").
		WithArgs("deadbeef").
		WillReturnRows(pgxmock.NewRows(accessTokenColumns()))

	tok, err := repo.GetByHash(context.Background(), "deadbeef")
	assert.NoError(t, err)
	assert.Nil(t, tok)
}

func TestAccessTokenRepo_DeactivateByMerchant(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccessTokenRepo(mock)
	merchantID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE access_tokens SET active = FALSE").
		WithArgs(merchantID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	n, err := repo.DeactivateByMerchant(context.Background(), tx, merchantID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepo_GetActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubscriptionRepo(mock)
	id, merchantID := uuid.New(), uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)
	expires := now.Add(72 * time.Hour)

	mock.ExpectQuery("SELECT .+ FROM subscriptions WHERE merchant_id").
		WithArgs(merchantID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "merchant_id", "status", "expires_at", "created_at", "updated_at"}).
			AddRow(id, merchantID, domain.SubscriptionStatusActive, expires, now, now))

	sub, err := repo.GetActive(context.Background(), merchantID)
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, expires, sub.ExpiresAt)
	assert.False(t, sub.ExpiredAt(now))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepo_GetActive_None(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubscriptionRepo(mock)
	merchantID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM subscriptions WHERE merchant_id").
		WithArgs(merchantID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "merchant_id", "status", "expires_at", "created_at", "updated_at"}))

	sub, err := repo.GetActive(context.Background(), merchantID)
	assert.NoError(t, err)
	assert.Nil(t, sub)
}

func TestSubscriptionRepo_MarkExpired(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubscriptionRepo(mock)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE subscriptions SET status = 'expired'").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, repo.MarkExpired(context.Background(), tx, id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentConfigRepo_GetByMerchantID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentConfigRepo(mock)
	merchantID := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)
	window := 3600

	cols := []string{"merchant_id", "api_key", "api_secret_enc", "binance_pay_id", "bep20_wallet", "webhook_url",
		"time_window_seconds", "binance_pay_qr_url", "bep20_qr_url", "created_at", "updated_at"}
	mock.ExpectQuery("SELECT .+ FROM payment_configs WHERE merchant_id").
		WithArgs(merchantID).
		WillReturnRows(pgxmock.NewRows(cols).AddRow(
			merchantID, "key", "enc-secret", "123456", "0xabc",
			strPtr("https://shop.example.com/hook"), &window, (*string)(nil), (*string)(nil), now, now,
		))

	cfg, err := repo.GetByMerchantID(context.Background(), merchantID)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, "https://shop.example.com/hook", *cfg.WebhookURL)
	assert.Equal(t, time.Hour, cfg.TimeWindow(24*time.Hour))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhookRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWebhookRepo(mock)
	httpStatus := 200
	d := &domain.WebhookDelivery{
		ID:            uuid.New(),
		MerchantID:    uuid.New(),
		TransactionID: "T1",
		WebhookURL:    "https://shop.example.com/hook",
		Payload:       `{"event":"payment.verified"}`,
		HTTPStatus:    &httpStatus,
		Status:        domain.WebhookStatusDelivered,
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}

	mock.ExpectExec("INSERT INTO webhook_deliveries").
		WithArgs(d.ID, d.MerchantID, d.TransactionID, d.WebhookURL,
			d.Payload, d.HTTPStatus, string(d.Status), d.LastError, d.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), d))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepo(mock)
	merchantID := uuid.New()
	l := &domain.AuditLog{
		ID:           uuid.New(),
		Actor:        "ops",
		MerchantID:   &merchantID,
		Action:       domain.AuditActionReleaseTransaction,
		ResourceType: "used_transaction",
		ResourceID:   "T1",
		IPAddress:    "10.0.0.1",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	mock.ExpectExec("INSERT INTO admin_audit_logs").
		WithArgs(l.ID, l.Actor, l.MerchantID, string(l.Action), l.ResourceType,
			l.ResourceID, l.Details, l.IPAddress, l.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), l))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_Begin(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	tx, err := NewTransactor(mock).Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Commit(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthCheck_Ping(t *testing.T) {
	tests := []struct {
		name    string
		present bool
		err     error
		wantErr error
	}{
		{name: "schema present", present: true},
		{name: "schema missing", present: false, wantErr: errSchemaMissing},
		{name: "connection refused", err: errors.New("dial tcp: connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			q := mock.ExpectQuery("SELECT to_regclass")
			if tt.err != nil {
				q.WillReturnError(tt.err)
			} else {
				q.WillReturnRows(pgxmock.NewRows([]string{"present"}).AddRow(tt.present))
			}

			hc := NewHealthCheck(mock)
			err = hc.Ping(context.Background())
			switch {
			case tt.err != nil:
				assert.ErrorIs(t, err, tt.err)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.NoError(t, err)
			}
			assert.Equal(t, "postgresql", hc.Name())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
