package models

import (
	"time"

	"github.com/google/uuid"
)

type RoyaltyConfig struct {
	ArtworkID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatorRoyaltyPercent float64   `gorm:"type:decimal(5,2);not null"`
	ArtistRoyaltyPercent  float64   `gorm:"type:decimal(5,2);not null"`
	TotalPercent          float64   `gorm:"type:decimal(5,2);not null"`
	CreatorWalletAddress  *string   `gorm:"type:varchar(255)"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type ContractConfig struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	NFTContractAddress string    `gorm:"type:varchar(255);not null"`
	ChainID            string    `gorm:"type:varchar(50)"`
	IsActive           bool      `gorm:"not null;default:true;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
