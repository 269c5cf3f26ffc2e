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

type tokenRepo struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) domainrepos.TokenRepository {
	return &tokenRepo{db: db}
}

func (r *tokenRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Token, error) {
	var m models.Token
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toTokenEntity(&m), nil
}

func (r *tokenRepo) Create(ctx context.Context, token *entities.Token) error {
	if token.ID == uuid.Nil {
		token.ID = utils.GenerateUUIDv7()
	}

	m := &models.Token{
		ID:           token.ID,
		ArtworkID:    token.ArtworkID,
		Symbol:       token.Symbol,
		OwnerAddress: token.OwnerAddress,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if token.ContractAddress.Valid {
		m.ContractAddress = &token.ContractAddress.String
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func toTokenEntity(m *models.Token) *entities.Token {
	e := &entities.Token{
		ID:           m.ID,
		ArtworkID:    m.ArtworkID,
		Symbol:       m.Symbol,
		OwnerAddress: m.OwnerAddress,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.ContractAddress != nil {
		e.ContractAddress = null.StringFrom(*m.ContractAddress)
	}
	return e
}
