package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited administrative action.
type AuditAction string

const (
	AuditActionAdminLogin         AuditAction = "ADMIN_LOGIN"
	AuditActionReleaseTransaction AuditAction = "RELEASE_TRANSACTION"
	AuditActionPurgeLogs          AuditAction = "PURGE_VERIFICATION_LOGS"
)

// AuditLog records a privileged action taken through the admin API.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	Actor        string      `json:"actor"`
	MerchantID   *uuid.UUID  `json:"merchant_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
