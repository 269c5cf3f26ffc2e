package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// AuditStatus represents a recorded validation outcome
type AuditStatus string

const (
	AuditStatusValid   AuditStatus = "valid"
	AuditStatusInvalid AuditStatus = "invalid"
)

// Audit event types
const (
	AuditEventTransactionValidation = "transaction_validation"
	AuditEventSaleValidation        = "sale_validation"
	AuditEventContractValidation    = "contract_validation"
	AuditEventMintValidation        = "mint_validation"
	AuditEventRoyaltyRepair         = "royalty_repair"
)

// AuditEntry is an append-only record of a validation decision, kept for
// compliance review.
type AuditEntry struct {
	ID            uuid.UUID   `json:"id"`
	EventType     string      `json:"eventType"`
	Status        AuditStatus `json:"status"`
	ActorID       *uuid.UUID  `json:"actorId,omitempty"`
	SubjectType   string      `json:"subjectType"`
	SourceAddress null.String `json:"sourceAddress,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
}
