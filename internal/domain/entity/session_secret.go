package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionSecret holds the session identifier and signing secret issued at a customer's
// latest successful authentication. There is at most one per customer.
type SessionSecret struct {
	CustomerID    uuid.UUID
	SessionID     string
	SigningSecret string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
