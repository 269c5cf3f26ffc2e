package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"vortex-market.backend/internal/domain/entities"
	domainerrors "vortex-market.backend/internal/domain/errors"
	domainrepos "vortex-market.backend/internal/domain/repositories"
	"vortex-market.backend/internal/infrastructure/models"
)

type royaltyConfigRepo struct {
	db *gorm.DB
}

func NewRoyaltyConfigRepository(db *gorm.DB) domainrepos.RoyaltyConfigRepository {
	return &royaltyConfigRepo{db: db}
}

func (r *royaltyConfigRepo) GetByArtworkID(ctx context.Context, artworkID uuid.UUID) (*entities.RoyaltyConfig, error) {
	var m models.RoyaltyConfig
	err := r.db.WithContext(ctx).Where("artwork_id = ?", artworkID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toRoyaltyConfigEntity(&m), nil
}

func (r *royaltyConfigRepo) Upsert(ctx context.Context, config *entities.RoyaltyConfig) error {
	m := &models.RoyaltyConfig{
		ArtworkID:             config.ArtworkID,
		CreatorRoyaltyPercent: config.CreatorRoyaltyPercent,
		ArtistRoyaltyPercent:  config.ArtistRoyaltyPercent,
		TotalPercent:          config.TotalPercent,
		CreatedAt:             time.Now(),
		UpdatedAt:             time.Now(),
	}
	if config.CreatorWalletAddress.Valid {
		m.CreatorWalletAddress = &config.CreatorWalletAddress.String
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "artwork_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"creator_royalty_percent",
			"artist_royalty_percent",
			"total_percent",
			"creator_wallet_address",
			"updated_at",
		}),
	}).Create(m).Error
}

// CorrectCreatorShare is a single-row conditional update: the WHERE clause
// matches the stale creator percent so that under concurrent sales of the
// same artwork only one writer applies the correction.
func (r *royaltyConfigRepo) CorrectCreatorShare(ctx context.Context, artworkID uuid.UUID, stalePercent, creatorPercent, totalPercent float64) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.RoyaltyConfig{}).
		Where("artwork_id = ? AND creator_royalty_percent = ?", artworkID, stalePercent).
		Updates(map[string]interface{}{
			"creator_royalty_percent": creatorPercent,
			"total_percent":           totalPercent,
			"updated_at":              time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func toRoyaltyConfigEntity(m *models.RoyaltyConfig) *entities.RoyaltyConfig {
	e := &entities.RoyaltyConfig{
		ArtworkID:             m.ArtworkID,
		CreatorRoyaltyPercent: m.CreatorRoyaltyPercent,
		ArtistRoyaltyPercent:  m.ArtistRoyaltyPercent,
		TotalPercent:          m.TotalPercent,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
	if m.CreatorWalletAddress != nil {
		e.CreatorWalletAddress = null.StringFrom(*m.CreatorWalletAddress)
	}
	return e
}
