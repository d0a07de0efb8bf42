package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionSecretRepository implements repository.SessionSecretRepository using GORM.
type sessionSecretRepository struct {
	db *gorm.DB
}

// NewSessionSecretRepository is the constructor for sessionSecretRepository.
func NewSessionSecretRepository(db *gorm.DB) repository.SessionSecretRepository {
	return &sessionSecretRepository{db: db}
}

func (repo *sessionSecretRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) (*entity.SessionSecret, error) {
	var secretM model.SessionSecretModel
	err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		First(&secretM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionSecretNotFound
		}

		return nil, errors.Wrap(err, "failed to find session secret")
	}

	return toSessionSecretDomain(&secretM), nil
}

// Upsert is a single INSERT ... ON CONFLICT (customer_id) DO UPDATE statement, so
// PostgreSQL's row lock on the conflicting row serializes concurrent rotations.
func (repo *sessionSecretRepository) Upsert(ctx context.Context, secret *entity.SessionSecret) error {
	secretM := fromSessionSecretDomain(secret)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"session_id", "signing_secret", "updated_at"}),
		}).
		Create(secretM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(repository.ErrCustomerNotFound, "session secret references a missing customer")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert session secret")
	}

	secret.UpdatedAt = secretM.UpdatedAt
	if secret.CreatedAt.IsZero() {
		secret.CreatedAt = secretM.CreatedAt
	}

	return nil
}

func toSessionSecretDomain(m *model.SessionSecretModel) *entity.SessionSecret {
	return &entity.SessionSecret{
		CustomerID:    m.CustomerID,
		SessionID:     m.SessionID,
		SigningSecret: m.SigningSecret,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromSessionSecretDomain(s *entity.SessionSecret) *model.SessionSecretModel {
	return &model.SessionSecretModel{
		CustomerID:    s.CustomerID,
		SessionID:     s.SessionID,
		SigningSecret: s.SigningSecret,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
