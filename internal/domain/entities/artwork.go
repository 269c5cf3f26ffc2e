package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ArtworkKind represents the catalog record kind
type ArtworkKind string

const (
	ArtworkKindArtwork    ArtworkKind = "artwork"
	ArtworkKindCollection ArtworkKind = "collection"
)

// Artwork represents a marketplace artwork record
type Artwork struct {
	ID                     uuid.UUID   `json:"id"`
	ArtistID               uuid.UUID   `json:"artistId"`
	Title                  string      `json:"title"`
	Kind                   ArtworkKind `json:"kind"`
	AIGenerated            bool        `json:"aiGenerated"`
	RequiresCreatorRoyalty bool        `json:"requiresCreatorRoyalty"`
	UniqueURL              null.String `json:"uniqueUrl,omitempty"`
	CreatedAt              time.Time   `json:"createdAt"`
	UpdatedAt              time.Time   `json:"updatedAt"`
	DeletedAt              *time.Time  `json:"-"`
}

// MintMetadata is the caller-supplied metadata checked before an NFT mint.
type MintMetadata struct {
	Name              string `json:"name,omitempty"`
	Description       string `json:"description,omitempty"`
	GenerateUniqueURL bool   `json:"generateUniqueUrl"`
}
