package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionSecretNotFound is returned when a customer has never authenticated.
var ErrSessionSecretNotFound = errors.New("session secret not found")

// SessionSecretRepository stores the single rotating secret record of each customer.
type SessionSecretRepository interface {
	// FindByCustomerID retrieves the current record of a customer.
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) (*entity.SessionSecret, error)

	// Upsert creates the record or replaces both SessionID and SigningSecret in one
	// atomic step. Concurrent callers for the same customer must never leave a record
	// that mixes fields from different calls.
	Upsert(ctx context.Context, secret *entity.SessionSecret) error
}
