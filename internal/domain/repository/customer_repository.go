// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCustomerNotFound is returned when no customer matches the lookup key.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository is the read and registration side of the credential store.
type CustomerRepository interface {
	// FindByEmail retrieves a customer by exact email match.
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// FindByID retrieves a customer by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// Create persists a new customer. A duplicate email yields domainerrors.ErrCustomerAlreadyExists.
	Create(ctx context.Context, customer *entity.Customer) error
}
