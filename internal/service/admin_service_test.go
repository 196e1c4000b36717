package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"usdt-pay-verifier/config"
	"usdt-pay-verifier/internal/core/domain"
	"usdt-pay-verifier/internal/core/ports"
	"usdt-pay-verifier/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type adminTestDeps struct {
	ctrl       *gomock.Controller
	hash       *mocks.MockHashService
	tokens     *mocks.MockTokenService
	used       *mocks.MockUsedTransactionRepository
	logs       *mocks.MockVerificationLogRepository
	usedCache  *mocks.MockUsedTransactionCache
	transactor *mocks.MockDBTransactor
	svc        *AdminServiceImpl
}

func setupAdminService(t *testing.T) *adminTestDeps {
	ctrl := gomock.NewController(t)
	d := &adminTestDeps{
		ctrl:       ctrl,
		hash:       mocks.NewMockHashService(ctrl),
		tokens:     mocks.NewMockTokenService(ctrl),
		used:       mocks.NewMockUsedTransactionRepository(ctrl),
		logs:       mocks.NewMockVerificationLogRepository(ctrl),
		usedCache:  mocks.NewMockUsedTransactionCache(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
	}
	d.svc = NewAdminService(AdminDeps{
		Users:      []config.AdminUser{{Username: "ops", PasswordHash: "$argon2id$stored"}},
		Hash:       d.hash,
		Tokens:     d.tokens,
		Used:       d.used,
		Logs:       d.logs,
		UsedCache:  d.usedCache,
		Transactor: d.transactor,
	}, zerolog.Nop())
	d.svc.now = func() time.Time { return fixedNow }
	return d
}

func TestAdminService_Login_Success(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	exp := fixedNow.Add(8 * time.Hour)
	d.hash.EXPECT().Verify("pw", "$argon2id$stored").Return(true, nil)
	d.tokens.EXPECT().Generate("ops", ports.RoleAdmin).Return("jwt", exp, nil)

	token, expiresAt, err := d.svc.Login(context.Background(), "ops", "pw")
	require.NoError(t, err)
	assert.Equal(t, "jwt", token)
	assert.Equal(t, exp, expiresAt)
}

func TestAdminService_Login_Failures(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	d.hash.EXPECT().Verify("bad", "$argon2id$stored").Return(false, nil)
	d.hash.EXPECT().Verify("pw", "$argon2id$stored").Return(false, errors.New("malformed"))

	_, _, err := d.svc.Login(context.Background(), "ghost", "pw")
	assertAppError(t, err, "AUTH_003")

	_, _, err = d.svc.Login(context.Background(), "ops", "bad")
	assertAppError(t, err, "AUTH_003")

	_, _, err = d.svc.Login(context.Background(), "ops", "pw")
	assertAppError(t, err, "AUTH_003")
}

func TestAdminService_ReleaseTransaction(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	merchantID := uuid.New()
	tx := &mockTx{}
	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	d.used.EXPECT().Delete(gomock.Any(), tx, merchantID, "T1").Return(true, nil)
	d.logs.EXPECT().DeleteByTransaction(gomock.Any(), tx, merchantID, "T1").Return(int64(2), nil)
	d.usedCache.EXPECT().Forget(gomock.Any(), domain.UsedTransactionKey(merchantID, "T1")).Return(nil)

	res, err := d.svc.ReleaseTransaction(context.Background(), merchantID, "T1")
	require.NoError(t, err)
	assert.Equal(t, "T1", res.TransactionID)
	assert.Equal(t, int64(2), res.LogsDeleted)
}

func TestAdminService_ReleaseTransaction_LowercaseHash(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	merchantID := uuid.New()
	hash := "0x" + strings.Repeat("AB", 32)
	lower := strings.ToLower(hash)
	tx := &mockTx{}
	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	d.used.EXPECT().Delete(gomock.Any(), tx, merchantID, hash).Return(false, nil)
	d.logs.EXPECT().DeleteByTransaction(gomock.Any(), tx, merchantID, hash).Return(int64(0), nil)
	d.used.EXPECT().Delete(gomock.Any(), tx, merchantID, lower).Return(true, nil)
	d.logs.EXPECT().DeleteByTransaction(gomock.Any(), tx, merchantID, lower).Return(int64(1), nil)
	d.usedCache.EXPECT().Forget(gomock.Any(), domain.UsedTransactionKey(merchantID, lower)).Return(errors.New("redis down"))

	res, err := d.svc.ReleaseTransaction(context.Background(), merchantID, hash)
	require.NoError(t, err)
	assert.Equal(t, lower, res.TransactionID)
}

func TestAdminService_ReleaseTransaction_PayIDKeepsCase(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	merchantID := uuid.New()
	tx := &mockTx{}
	var deleted []string
	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	d.used.EXPECT().Delete(gomock.Any(), tx, merchantID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, _ uuid.UUID, id string) (bool, error) {
			deleted = append(deleted, id)
			return true, nil
		}).AnyTimes()
	d.logs.EXPECT().DeleteByTransaction(gomock.Any(), tx, merchantID, gomock.Any()).Return(int64(1), nil).AnyTimes()
	d.usedCache.EXPECT().Forget(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := d.svc.ReleaseTransaction(context.Background(), merchantID, "ORDERa")
	require.NoError(t, err)
	assert.Equal(t, []string{"ORDERa"}, deleted)
	assert.Equal(t, "ORDERa", res.TransactionID)
}

func TestAdminService_ReleaseTransaction_NotFound(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	merchantID := uuid.New()
	tx := &mockTx{}
	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	d.used.EXPECT().Delete(gomock.Any(), tx, merchantID, "T1").Return(false, nil)
	d.logs.EXPECT().DeleteByTransaction(gomock.Any(), tx, merchantID, "T1").Return(int64(0), nil)

	_, err := d.svc.ReleaseTransaction(context.Background(), merchantID, "T1")
	assertAppError(t, err, "REQ_003")

	_, err = d.svc.ReleaseTransaction(context.Background(), merchantID, "  ")
	assertAppError(t, err, "REQ_001")
}

func TestAdminService_ListVerificationLogs_ClampsPaging(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	merchantID := uuid.New()
	d.logs.EXPECT().ListByMerchant(gomock.Any(), ports.VerificationLogListParams{
		MerchantID: merchantID,
		Page:       1,
		PageSize:   maxPageSize,
	}).Return([]domain.VerificationLog{{TransactionID: "T1"}}, int64(1), nil)

	logs, total, err := d.svc.ListVerificationLogs(context.Background(), ports.VerificationLogListParams{
		MerchantID: merchantID,
		Page:       0,
		PageSize:   1000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, logs, 1)
}

func TestAdminService_PurgeVerificationLogs(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	cutoff := fixedNow.Add(-90 * 24 * time.Hour)
	d.logs.EXPECT().PurgeBefore(gomock.Any(), cutoff).Return(int64(12), nil)

	n, err := d.svc.PurgeVerificationLogs(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)

	_, err = d.svc.PurgeVerificationLogs(context.Background(), time.Time{})
	assertAppError(t, err, "REQ_001")

	_, err = d.svc.PurgeVerificationLogs(context.Background(), fixedNow.Add(time.Hour))
	assertAppError(t, err, "REQ_001")
}
