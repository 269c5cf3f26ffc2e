package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// RoyaltyConfig is the per-artwork royalty split: a fixed platform-creator
// share plus a bounded artist share. It exists for the lifetime of the
// artwork and is never deleted independently.
type RoyaltyConfig struct {
	ArtworkID             uuid.UUID   `json:"artworkId"`
	CreatorRoyaltyPercent float64     `json:"creatorRoyaltyPercent"`
	ArtistRoyaltyPercent  float64     `json:"artistRoyaltyPercent"`
	TotalPercent          float64     `json:"totalPercent"`
	CreatorWalletAddress  null.String `json:"creatorWalletAddress,omitempty"`
	CreatedAt             time.Time   `json:"createdAt"`
	UpdatedAt             time.Time   `json:"updatedAt"`
}

// SetRoyaltyInput represents input for persisting an artist-set royalty
// config. The creator share is not caller-settable; it is pinned to the
// platform constant on save.
type SetRoyaltyInput struct {
	ArtistRoyaltyPercent float64 `json:"artistRoyaltyPercent"`
	CreatorWalletAddress string  `json:"creatorWalletAddress,omitempty"`
}

// ValidateRoyaltyInput represents a pre-save royalty percentage check.
type ValidateRoyaltyInput struct {
	ArtistRoyaltyPercent float64 `json:"artistRoyaltyPercent"`
}

// RepairResult reports the outcome of an explicit royalty config repair.
type RepairResult struct {
	Config    *RoyaltyConfig `json:"config"`
	Corrected bool           `json:"corrected"`
}
