package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"vortex-market.backend/internal/domain/entities"
	domainrepos "vortex-market.backend/internal/domain/repositories"
	"vortex-market.backend/internal/infrastructure/models"
	"vortex-market.backend/pkg/utils"
)

// AuditLogRepositoryImpl is the gorm-backed append-only audit sink. The
// concrete type is exported for the retention job.
type AuditLogRepositoryImpl struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepositoryImpl {
	return &AuditLogRepositoryImpl{db: db}
}

var _ domainrepos.AuditLogRepository = (*AuditLogRepositoryImpl)(nil)

func (r *AuditLogRepositoryImpl) Append(ctx context.Context, entry *entities.AuditEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = utils.GenerateUUIDv7()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	m := &models.AuditEntry{
		ID:          entry.ID,
		EventType:   entry.EventType,
		Status:      string(entry.Status),
		ActorID:     entry.ActorID,
		SubjectType: entry.SubjectType,
		CreatedAt:   entry.CreatedAt,
	}
	if entry.SourceAddress.Valid {
		m.SourceAddress = &entry.SourceAddress.String
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *AuditLogRepositoryImpl) ListRecent(ctx context.Context, limit, offset int) ([]*entities.AuditEntry, int64, error) {
	var rows []models.AuditEntry
	var total int64

	query := r.db.WithContext(ctx).Model(&models.AuditEntry{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.AuditEntry, 0, len(rows))
	for _, row := range rows {
		items = append(items, toAuditEntryEntity(&row))
	}
	return items, total, nil
}

func (r *AuditLogRepositoryImpl) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&models.AuditEntry{})
	return result.RowsAffected, result.Error
}

func toAuditEntryEntity(m *models.AuditEntry) *entities.AuditEntry {
	e := &entities.AuditEntry{
		ID:          m.ID,
		EventType:   m.EventType,
		Status:      entities.AuditStatus(m.Status),
		ActorID:     m.ActorID,
		SubjectType: m.SubjectType,
		CreatedAt:   m.CreatedAt,
	}
	if m.SourceAddress != nil {
		e.SourceAddress = null.StringFrom(*m.SourceAddress)
	}
	return e
}
