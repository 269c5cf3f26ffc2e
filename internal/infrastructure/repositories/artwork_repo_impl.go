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

type artworkRepo struct {
	db *gorm.DB
}

func NewArtworkRepository(db *gorm.DB) domainrepos.ArtworkRepository {
	return &artworkRepo{db: db}
}

func (r *artworkRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Artwork, error) {
	var m models.Artwork
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toArtworkEntity(&m), nil
}

func (r *artworkRepo) Create(ctx context.Context, artwork *entities.Artwork) error {
	if artwork.ID == uuid.Nil {
		artwork.ID = utils.GenerateUUIDv7()
	}

	m := &models.Artwork{
		ID:                     artwork.ID,
		ArtistID:               artwork.ArtistID,
		Title:                  artwork.Title,
		Kind:                   string(artwork.Kind),
		AIGenerated:            artwork.AIGenerated,
		RequiresCreatorRoyalty: artwork.RequiresCreatorRoyalty,
		CreatedAt:              time.Now(),
		UpdatedAt:              time.Now(),
	}
	if artwork.UniqueURL.Valid {
		m.UniqueURL = &artwork.UniqueURL.String
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *artworkRepo) MarkRequiresCreatorRoyalty(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.Artwork{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"requires_creator_royalty": true,
			"updated_at":               time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *artworkRepo) SetUniqueURL(ctx context.Context, id uuid.UUID, url string) error {
	result := r.db.WithContext(ctx).Model(&models.Artwork{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"unique_url": url,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toArtworkEntity(m *models.Artwork) *entities.Artwork {
	e := &entities.Artwork{
		ID:                     m.ID,
		ArtistID:               m.ArtistID,
		Title:                  m.Title,
		Kind:                   entities.ArtworkKind(m.Kind),
		AIGenerated:            m.AIGenerated,
		RequiresCreatorRoyalty: m.RequiresCreatorRoyalty,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
	if m.UniqueURL != nil {
		e.UniqueURL = null.StringFrom(*m.UniqueURL)
	}
	return e
}
