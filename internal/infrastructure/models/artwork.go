package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Artwork struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ArtistID               uuid.UUID `gorm:"type:uuid;not null;index"`
	Title                  string    `gorm:"type:varchar(255);not null"`
	Kind                   string    `gorm:"type:varchar(50);not null;index"`
	AIGenerated            bool      `gorm:"not null;default:false"`
	RequiresCreatorRoyalty bool      `gorm:"not null;default:false"`
	UniqueURL              *string   `gorm:"type:varchar(255);uniqueIndex"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
	DeletedAt              gorm.DeletedAt `gorm:"index"`
}

type Token struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ArtworkID       *uuid.UUID `gorm:"type:uuid;index"`
	Symbol          string     `gorm:"type:varchar(50);not null"`
	ContractAddress *string    `gorm:"type:varchar(255)"`
	OwnerAddress    string     `gorm:"type:varchar(255);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}
