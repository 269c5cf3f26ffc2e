package repositories

import (
	"context"

	"github.com/google/uuid"
	"vortex-market.backend/internal/domain/entities"
)

// RoyaltyConfigRepository defines royalty configuration store operations
type RoyaltyConfigRepository interface {
	GetByArtworkID(ctx context.Context, artworkID uuid.UUID) (*entities.RoyaltyConfig, error)
	Upsert(ctx context.Context, config *entities.RoyaltyConfig) error
	// CorrectCreatorShare conditionally resets the creator share and total of
	// the stored config, matching on the stale creator percent so concurrent
	// corrections of the same row cannot clobber each other. Returns whether
	// this call performed the update.
	CorrectCreatorShare(ctx context.Context, artworkID uuid.UUID, stalePercent, creatorPercent, totalPercent float64) (bool, error)
}

// ContractConfigRepository defines NFT contract settings operations
type ContractConfigRepository interface {
	GetActive(ctx context.Context) (*entities.ContractConfig, error)
	Upsert(ctx context.Context, config *entities.ContractConfig) error
}
