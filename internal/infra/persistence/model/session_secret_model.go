package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionSecretModel mirrors the 'customer_session_secrets' table. CustomerID is both
// the primary key and the upsert conflict target.
type SessionSecretModel struct {
	CustomerID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionID     string    `gorm:"type:varchar(64);not null"`
	SigningSecret string    `gorm:"type:varchar(128);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionSecretModel) TableName() string {
	return "customer_session_secrets"
}
