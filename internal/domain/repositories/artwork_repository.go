package repositories

import (
	"context"

	"github.com/google/uuid"
	"vortex-market.backend/internal/domain/entities"
)

// ArtworkRepository defines artwork catalog operations
type ArtworkRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Artwork, error)
	Create(ctx context.Context, artwork *entities.Artwork) error
	MarkRequiresCreatorRoyalty(ctx context.Context, id uuid.UUID) error
	SetUniqueURL(ctx context.Context, id uuid.UUID, url string) error
}

// TokenRepository defines token ledger operations
type TokenRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Token, error)
	Create(ctx context.Context, token *entities.Token) error
}
