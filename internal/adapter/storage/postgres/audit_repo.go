package postgres

import (
	"context"
	"fmt"

	"usdt-pay-verifier/internal/core/domain"
)

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct {
	pool Pool
}

// NewAuditRepo creates a PostgreSQL-backed AuditRepository.
func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// Create appends an admin audit entry.
func (r *AuditRepo) Create(ctx context.Context, l *domain.AuditLog) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO admin_audit_logs
		(id, actor, merchant_id, action, resource_type, resource_id, details, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		l.ID, l.Actor, l.MerchantID, string(l.Action), l.ResourceType,
		l.ResourceID, l.Details, l.IPAddress, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}
