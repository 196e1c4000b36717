package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"usdt-pay-verifier/internal/core/domain"
	"usdt-pay-verifier/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const insertVerificationLog = `INSERT INTO verification_logs
	(id, merchant_id, transaction_id, payment_type, expected_amount, actual_amount,
	 status, error_message, order_id, request_ip, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

// VerificationLogRepo implements ports.VerificationLogRepository.
type VerificationLogRepo struct {
	pool Pool
}

// NewVerificationLogRepo creates a new VerificationLogRepo.
func NewVerificationLogRepo(pool Pool) *VerificationLogRepo {
	return &VerificationLogRepo{pool: pool}
}

func verificationLogArgs(l *domain.VerificationLog) []any {
	return []any{
		l.ID, l.MerchantID, l.TransactionID, l.PaymentType, l.ExpectedAmount, l.ActualAmount,
		l.Status, l.ErrorMessage, l.OrderID, l.RequestIP, l.CreatedAt,
	}
}

// Create appends a log row outside any transaction.
func (r *VerificationLogRepo) Create(ctx context.Context, l *domain.VerificationLog) error {
	if _, err := r.pool.Exec(ctx, insertVerificationLog, verificationLogArgs(l)...); err != nil {
		return fmt.Errorf("insert verification log: %w", err)
	}
	return nil
}

// CreateTx appends a log row within tx.
func (r *VerificationLogRepo) CreateTx(ctx context.Context, tx pgx.Tx, l *domain.VerificationLog) error {
	if _, err := tx.Exec(ctx, insertVerificationLog, verificationLogArgs(l)...); err != nil {
		return fmt.Errorf("insert verification log: %w", err)
	}
	return nil
}

// DeleteByTransaction removes every log row for the pair within tx.
func (r *VerificationLogRepo) DeleteByTransaction(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, transactionID string) (int64, error) {
	query := `DELETE FROM verification_logs WHERE merchant_id = $1 AND transaction_id = $2`

	tag, err := tx.Exec(ctx, query, merchantID, transactionID)
	if err != nil {
		return 0, fmt.Errorf("delete verification logs: %w", err)
	}
	return tag.RowsAffected(), nil
}

// PurgeBefore deletes log rows older than before. Used transactions are untouched.
func (r *VerificationLogRepo) PurgeBefore(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM verification_logs WHERE created_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("purge verification logs: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListByMerchant returns a page of logs newest first, with the total count.
func (r *VerificationLogRepo) ListByMerchant(ctx context.Context, params ports.VerificationLogListParams) ([]domain.VerificationLog, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, fmt.Sprintf("merchant_id = $%d", argIdx))
	args = append(args, params.MerchantID)
	argIdx++

	if params.TransactionID != nil {
		conditions = append(conditions, fmt.Sprintf("transaction_id = $%d", argIdx))
		args = append(args, *params.TransactionID)
		argIdx++
	}
	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM verification_logs %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count verification logs: %w", err)
	}

	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT id, merchant_id, transaction_id, payment_type, expected_amount, actual_amount,
		status, error_message, order_id, request_ip, created_at
		FROM verification_logs %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list verification logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.VerificationLog
	for rows.Next() {
		l := domain.VerificationLog{}
		err := rows.Scan(
			&l.ID, &l.MerchantID, &l.TransactionID, &l.PaymentType, &l.ExpectedAmount, &l.ActualAmount,
			&l.Status, &l.ErrorMessage, &l.OrderID, &l.RequestIP, &l.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan verification log row: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate verification log rows: %w", err)
	}
	return logs, total, nil
}
