package auth

import (
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// uuidGenerator draws session identifiers and signing secrets as random v4 UUIDs.
type uuidGenerator struct{}

// NewUUIDGenerator is the constructor for uuidGenerator.
func NewUUIDGenerator() service.SecretGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) NewSessionID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate session id")
	}

	return id.String(), nil
}

func (uuidGenerator) NewSigningSecret() (string, error) {
	secret, err := uuid.NewRandom()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate signing secret")
	}

	return secret.String(), nil
}
