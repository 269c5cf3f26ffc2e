package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"vortex-market.backend/internal/domain/entities"
	domainerrors "vortex-market.backend/internal/domain/errors"
	domainrepos "vortex-market.backend/internal/domain/repositories"
	"vortex-market.backend/internal/infrastructure/models"
	"vortex-market.backend/pkg/utils"
)

type contractConfigRepo struct {
	db *gorm.DB
}

func NewContractConfigRepository(db *gorm.DB) domainrepos.ContractConfigRepository {
	return &contractConfigRepo{db: db}
}

func (r *contractConfigRepo) GetActive(ctx context.Context) (*entities.ContractConfig, error) {
	var m models.ContractConfig
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("updated_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toContractConfigEntity(&m), nil
}

func (r *contractConfigRepo) Upsert(ctx context.Context, config *entities.ContractConfig) error {
	if config.ID == uuid.Nil {
		config.ID = utils.GenerateUUIDv7()
	}

	// Deactivate the previous config, then insert the new one.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ContractConfig{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		m := &models.ContractConfig{
			ID:                 config.ID,
			NFTContractAddress: config.NFTContractAddress,
			ChainID:            config.ChainID,
			IsActive:           true,
			CreatedAt:          time.Now(),
			UpdatedAt:          time.Now(),
		}
		return tx.Create(m).Error
	})
}

func toContractConfigEntity(m *models.ContractConfig) *entities.ContractConfig {
	return &entities.ContractConfig{
		ID:                 m.ID,
		NFTContractAddress: m.NFTContractAddress,
		ChainID:            m.ChainID,
		IsActive:           m.IsActive,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
