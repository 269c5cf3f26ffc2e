package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"vortex-market.backend/internal/domain/entities"
)

// TransactionRepository defines transaction ledger operations. Accepted
// transactions are immutable; there is deliberately no update method.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entities.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Transaction, error)
	GetByActorID(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]*entities.Transaction, int64, error)
}

// AuditLogRepository defines the append-only audit sink
type AuditLogRepository interface {
	Append(ctx context.Context, entry *entities.AuditEntry) error
	ListRecent(ctx context.Context, limit, offset int) ([]*entities.AuditEntry, int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
