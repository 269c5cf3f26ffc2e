package models

import (
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ActorID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type          string     `gorm:"type:varchar(50);not null;index"`
	CurrencyType  string     `gorm:"type:varchar(50);not null"`
	Amount        float64    `gorm:"type:decimal(18,8);not null"`
	TokenID       *uuid.UUID `gorm:"type:uuid;index"`
	WalletAddress *string    `gorm:"type:varchar(255)"`
	Status        string     `gorm:"type:varchar(50);not null"`
	Timestamp     time.Time  `gorm:"not null"`
	CreatedAt     time.Time
}

type AuditEntry struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	EventType     string     `gorm:"type:varchar(100);not null;index"`
	Status        string     `gorm:"type:varchar(20);not null"`
	ActorID       *uuid.UUID `gorm:"type:uuid;index"`
	SubjectType   string     `gorm:"type:varchar(100)"`
	SourceAddress *string    `gorm:"type:varchar(100)"`
	CreatedAt     time.Time  `gorm:"index"`
}

func (AuditEntry) TableName() string {
	return "audit_entries"
}
