package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"vortex-market.backend/internal/domain/entities"
	domainerrors "vortex-market.backend/internal/domain/errors"
	domainrepos "vortex-market.backend/internal/domain/repositories"
	"vortex-market.backend/internal/infrastructure/models"
	"vortex-market.backend/pkg/utils"
)

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) domainrepos.TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) Create(ctx context.Context, tx *entities.Transaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = utils.GenerateUUIDv7()
	}

	m := &models.Transaction{
		ID:           tx.ID,
		ActorID:      tx.ActorID,
		Type:         string(tx.Type),
		CurrencyType: tx.CurrencyType,
		Amount:       tx.Amount,
		TokenID:      tx.TokenID,
		Status:       string(tx.Status),
		Timestamp:    tx.Timestamp,
		CreatedAt:    time.Now(),
	}
	if tx.WalletAddress.Valid {
		m.WalletAddress = &tx.WalletAddress.String
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *transactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Transaction, error) {
	var m models.Transaction
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toTransactionEntity(&m), nil
}

func (r *transactionRepo) GetByActorID(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]*entities.Transaction, int64, error) {
	var rows []models.Transaction
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Transaction{}).Where("actor_id = ?", actorID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Transaction, 0, len(rows))
	for _, row := range rows {
		items = append(items, toTransactionEntity(&row))
	}
	return items, total, nil
}

func toTransactionEntity(m *models.Transaction) *entities.Transaction {
	e := &entities.Transaction{
		ID:           m.ID,
		ActorID:      m.ActorID,
		Type:         entities.TransactionType(m.Type),
		CurrencyType: m.CurrencyType,
		Amount:       m.Amount,
		TokenID:      m.TokenID,
		Status:       entities.TransactionStatus(m.Status),
		Timestamp:    m.Timestamp,
		CreatedAt:    m.CreatedAt,
	}
	if m.WalletAddress != nil {
		e.WalletAddress = null.StringFrom(*m.WalletAddress)
	}
	return e
}
