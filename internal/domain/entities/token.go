package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Token represents a minted marketplace token. ArtworkID links the token to
// the artwork whose royalty config governs its resale.
type Token struct {
	ID              uuid.UUID   `json:"id"`
	ArtworkID       *uuid.UUID  `json:"artworkId,omitempty"`
	Symbol          string      `json:"symbol"`
	ContractAddress null.String `json:"contractAddress,omitempty"`
	OwnerAddress    string      `json:"ownerAddress"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}
