// Package memory is an in-process credential store for local runs and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Store keeps customers and session secrets behind one RWMutex. Every write is a
// single critical section, so Upsert replaces a record as a whole.
type Store struct {
	mu sync.RWMutex

	customers      map[uuid.UUID]entity.Customer
	customerEmails map[string]uuid.UUID
	secrets        map[uuid.UUID]entity.SessionSecret

	now func() time.Time
}

var (
	_ repository.CustomerRepository      = (*Store)(nil)
	_ repository.SessionSecretRepository = (*Store)(nil)
)

// NewStore is the constructor for Store.
func NewStore() *Store {
	return &Store{
		customers:      make(map[uuid.UUID]entity.Customer),
		customerEmails: make(map[string]uuid.UUID),
		secrets:        make(map[uuid.UUID]entity.SessionSecret),
		now:            time.Now,
	}
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.customerEmails[email]
	if !ok {
		return nil, repository.ErrCustomerNotFound
	}
	customer := s.customers[id]

	return &customer, nil
}

func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, ok := s.customers[id]
	if !ok {
		return nil, repository.ErrCustomerNotFound
	}

	return &customer, nil
}

func (s *Store) Create(ctx context.Context, customer *entity.Customer) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.customerEmails[customer.Email]; exists {
		return domainerrors.ErrCustomerAlreadyExists.WrapMessage("email already exists")
	}

	if customer.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate customer id")
		}
		customer.ID = id
	}

	now := s.now()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	s.customers[customer.ID] = *customer
	s.customerEmails[customer.Email] = customer.ID

	return nil
}

func (s *Store) FindByCustomerID(ctx context.Context, customerID uuid.UUID) (*entity.SessionSecret, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	secret, ok := s.secrets[customerID]
	if !ok {
		return nil, repository.ErrSessionSecretNotFound
	}

	return &secret, nil
}

func (s *Store) Upsert(ctx context.Context, secret *entity.SessionSecret) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[secret.CustomerID]; !ok {
		return errors.Wrap(repository.ErrCustomerNotFound, "session secret references a missing customer")
	}

	now := s.now()
	record := entity.SessionSecret{
		CustomerID:    secret.CustomerID,
		SessionID:     secret.SessionID,
		SigningSecret: secret.SigningSecret,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if existing, ok := s.secrets[secret.CustomerID]; ok {
		record.CreatedAt = existing.CreatedAt
	}
	s.secrets[secret.CustomerID] = record

	secret.CreatedAt = record.CreatedAt
	secret.UpdatedAt = record.UpdatedAt

	return nil
}

// SecretCount reports how many session secret records exist.
func (s *Store) SecretCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.secrets)
}
