package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service   usecase.SessionUsecase
	customers *mockRepo.MockCustomerRepository
	secrets   *mockRepo.MockSessionSecretRepository
	hasher    *mockSvc.MockPasswordHasher
	signer    *mockSvc.MockTokenSigner
	generator *mockSvc.MockSecretGenerator
	recorder  *mockSvc.MockAuthenticationRecorder
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	customers := mockRepo.NewMockCustomerRepository(t)
	secrets := mockRepo.NewMockSessionSecretRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	signer := mockSvc.NewMockTokenSigner(t)
	generator := mockSvc.NewMockSecretGenerator(t)
	recorder := mockSvc.NewMockAuthenticationRecorder(t)

	hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("dummy-hash", nil).Once()

	svc, err := NewSessionService(SessionServiceParams{
		Customers: customers,
		Secrets:   secrets,
		Hasher:    hasher,
		Signer:    signer,
		Generator: generator,
		Recorder:  recorder,
		Config:    &config.Config{Auth: &config.AuthConfig{SessionTTL: time.Hour}},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return sessionServiceFixtures{
		service:   svc,
		customers: customers,
		secrets:   secrets,
		hasher:    hasher,
		signer:    signer,
		generator: generator,
		recorder:  recorder,
	}
}

func testCustomer() *entity.Customer {
	return &entity.Customer{ID: uuid.New(), Email: "a@x.com", FullName: "Ada", PasswordHash: "stored-hash", GroupID: 1, Status: 1}
}

func assertInternalError(t *testing.T, err error) {
	t.Helper()

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.Equal(t, "Internal server error", appErr.Message())
}

func TestSessionService_Authenticate_EmptyInputSkipsStore(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.AuthenticateInput
	}{
		{name: "nil input", input: nil},
		{name: "empty email", input: &usecase.AuthenticateInput{Password: "secret123"}},
		{name: "empty password", input: &usecase.AuthenticateInput{Email: "a@x.com"}},
		{name: "both empty", input: &usecase.AuthenticateInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSessionService(t)
			fx.recorder.EXPECT().RecordAuthentication(service.OutcomeInvalidCredentials, mock.Anything).Return()

			output, err := fx.service.Authenticate(context.Background(), tt.input)

			assert.Nil(t, output)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		})
	}
}

func TestSessionService_Authenticate_UnknownEmailVerifiesDummyHash(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.customers.EXPECT().FindByEmail(ctx, "ghost@x.com").Return(nil, repository.ErrCustomerNotFound)
	fx.hasher.EXPECT().Verify("secret123", "dummy-hash").Return(false, nil)
	fx.recorder.EXPECT().RecordAuthentication(service.OutcomeInvalidCredentials, mock.Anything).Return()

	_, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{Email: "ghost@x.com", Password: "secret123"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_Authenticate_StoreLookupFailure(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.customers.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, errors.New("connection reset"))
	fx.recorder.EXPECT().RecordAuthentication(service.OutcomeError, mock.Anything).Return()

	_, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{Email: "a@x.com", Password: "secret123"})
	assertInternalError(t, err)
	assert.NotContains(t, err.Error(), "Invalid email or password")
}

func TestSessionService_Authenticate_HasherFailure(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	customer := testCustomer()

	fx.customers.EXPECT().FindByEmail(ctx, customer.Email).Return(customer, nil)
	fx.hasher.EXPECT().Verify("secret123", customer.PasswordHash).Return(false, errors.New("malformed hash"))
	fx.recorder.EXPECT().RecordAuthentication(service.OutcomeError, mock.Anything).Return()

	_, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{Email: customer.Email, Password: "secret123"})
	assertInternalError(t, err)
}

func TestSessionService_Authenticate_WrongPasswordSkipsRotation(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	customer := testCustomer()

	fx.customers.EXPECT().FindByEmail(ctx, customer.Email).Return(customer, nil)
	fx.hasher.EXPECT().Verify("wrong", customer.PasswordHash).Return(false, nil)
	fx.recorder.EXPECT().RecordAuthentication(service.OutcomeInvalidCredentials, mock.Anything).Return()

	_, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{Email: customer.Email, Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_Authenticate_GeneratorFailure(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	customer := testCustomer()

	fx.customers.EXPECT().FindByEmail(ctx, customer.Email).Return(customer, nil)
	fx.hasher.EXPECT().Verify("secret123", customer.PasswordHash).Return(true, nil)
	fx.generator.EXPECT().NewSessionID().Return("", errors.New("entropy exhausted"))
	fx.recorder.EXPECT().RecordAuthentication(service.OutcomeError, mock.Anything).Return()

	_, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{Email: customer.Email, Password: "secret123"})
	assertInternalError(t, err)
}

func TestSessionService_Authenticate_UpsertFailure(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	customer := testCustomer()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("deadlock detected"), "failed to upsert session secret")

	fx.customers.EXPECT().FindByEmail(ctx, customer.Email).Return(customer, nil)
	fx.hasher.EXPECT().Verify("secret123", customer.PasswordHash).Return(true, nil)
	fx.generator.EXPECT().NewSessionID().Return("sid-1", nil)
	fx.generator.EXPECT().NewSigningSecret().Return("secret-1", nil)
	fx.secrets.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.SessionSecret")).Return(dbErr)
	fx.recorder.EXPECT().RecordAuthentication(service.OutcomeError, mock.Anything).Return()

	_, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{Email: customer.Email, Password: "secret123"})
	assertInternalError(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestSessionService_Authenticate_SignerFailure(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	customer := testCustomer()

	fx.customers.EXPECT().FindByEmail(ctx, customer.Email).Return(customer, nil)
	fx.hasher.EXPECT().Verify("secret123", customer.PasswordHash).Return(true, nil)
	fx.generator.EXPECT().NewSessionID().Return("sid-1", nil)
	fx.generator.EXPECT().NewSigningSecret().Return("secret-1", nil)
	fx.secrets.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.SessionSecret")).Return(nil)
	fx.signer.EXPECT().Sign(mock.AnythingOfType("*service.SessionClaims"), "secret-1", time.Hour).Return("", errors.New("key too short"))
	fx.recorder.EXPECT().RecordAuthentication(service.OutcomeError, mock.Anything).Return()

	_, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{Email: customer.Email, Password: "secret123"})
	assertInternalError(t, err)
}

func TestSessionService_Authenticate_SignsWithRotatedSecret(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	customer := testCustomer()

	fx.customers.EXPECT().FindByEmail(ctx, customer.Email).Return(customer, nil)
	fx.hasher.EXPECT().Verify("secret123", customer.PasswordHash).Return(true, nil)
	fx.generator.EXPECT().NewSessionID().Return("sid-1", nil)
	fx.generator.EXPECT().NewSigningSecret().Return("secret-1", nil)
	fx.secrets.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.SessionSecret")).
		Run(func(_ context.Context, secret *entity.SessionSecret) {
			assert.Equal(t, customer.ID, secret.CustomerID)
			assert.Equal(t, "sid-1", secret.SessionID)
			assert.Equal(t, "secret-1", secret.SigningSecret)
		}).
		Return(nil)
	fx.signer.EXPECT().
		Sign(mock.AnythingOfType("*service.SessionClaims"), "secret-1", time.Hour).
		Run(func(claims *service.SessionClaims, _ string, _ time.Duration) {
			assert.Equal(t, "sid-1", claims.SessionID)
			assert.Equal(t, customer.Redact(), claims.Customer)
		}).
		Return("signed.token.value", nil)
	fx.recorder.EXPECT().RecordAuthentication(service.OutcomeSuccess, mock.Anything).Return()

	output, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{Email: customer.Email, Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "signed.token.value", output.Token)
}

func TestNewSessionService_DummyHashFailure(t *testing.T) {
	hasher := mockSvc.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("", errors.New("rand failure"))

	_, err := NewSessionService(SessionServiceParams{
		Hasher: hasher,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}
