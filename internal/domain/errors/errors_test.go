package errors

import (
	"net/http"
	"testing"

	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrInvalidCredentials.WrapMessage("customer not found")

	assert.True(t, errors.Is(err, ErrInvalidCredentials))
	assert.False(t, errors.Is(err, ErrInternalError))

	appErr, ok := errors.AsType[AppError](err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "Invalid email or password", appErr.Message())
}

func TestBaseError_WithDetailsMatchesOriginal(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("email is required")

	assert.True(t, errors.Is(detailed, ErrValidationFailed))
	assert.Equal(t, "email is required", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to upsert session secret")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, ErrInternalError.Message(), err.Message())
	assert.Contains(t, err.Error(), "connection reset")
	assert.True(t, errors.Is(err, cause))
}

func TestRegistrationErrorsAreDistinct(t *testing.T) {
	tooLong := ErrPasswordTooLong.WithDetails("password must be at most 72 bytes").WrapMessage("register")

	assert.True(t, errors.Is(tooLong, ErrPasswordTooLong))
	assert.False(t, errors.Is(tooLong, ErrValidationFailed))
	assert.False(t, errors.Is(ErrInvalidRegistration, ErrValidationFailed))
	assert.Equal(t, "Password is too long", ErrPasswordTooLong.Message())
	assert.Equal(t, "Invalid registration fields", ErrInvalidRegistration.Message())
}
