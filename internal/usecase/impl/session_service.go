// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultSessionTTL = 48 * time.Hour

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	customers  repository.CustomerRepository
	secrets    repository.SessionSecretRepository
	hasher     service.PasswordHasher
	signer     service.TokenSigner
	generator  service.SecretGenerator
	recorder   service.AuthenticationRecorder
	sessionTTL time.Duration
	dummyHash  string
	now        func() time.Time
	logger     *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Customers repository.CustomerRepository
	Secrets   repository.SessionSecretRepository
	Hasher    service.PasswordHasher
	Signer    service.TokenSigner
	Generator service.SecretGenerator
	Recorder  service.AuthenticationRecorder `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) (usecase.SessionUsecase, error) {
	sessionTTL := defaultSessionTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.SessionTTL > 0 {
		sessionTTL = params.Config.Auth.SessionTTL
	}

	recorder := params.Recorder
	if recorder == nil {
		recorder = service.NopAuthenticationRecorder{}
	}

	// Unknown emails are verified against this hash so they cost one bcrypt round too.
	dummyHash, err := params.Hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare dummy password hash")
	}

	return &sessionService{
		customers:  params.Customers,
		secrets:    params.Secrets,
		hasher:     params.Hasher,
		signer:     params.Signer,
		generator:  params.Generator,
		recorder:   recorder,
		sessionTTL: sessionTTL,
		dummyHash:  dummyHash,
		now:        time.Now,
		logger:     params.Logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate verifies the credentials, rotates the customer's session secret and signs a token with it.
func (srv *sessionService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (output *usecase.AuthenticateOutput, err error) {
	startedAt := srv.now()
	defer func() {
		srv.recorder.RecordAuthentication(authenticationOutcome(err), srv.now().Sub(startedAt))
	}()

	if input == nil || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("email and password are required")
	}

	customer, err := srv.verifyCredentials(ctx, input)
	if err != nil {
		return nil, err
	}

	sessionID, err := srv.generator.NewSessionID()
	if err != nil {
		return nil, internalError(err, "failed to generate session id")
	}

	signingSecret, err := srv.generator.NewSigningSecret()
	if err != nil {
		return nil, internalError(err, "failed to generate signing secret")
	}

	err = srv.secrets.Upsert(ctx, &entity.SessionSecret{
		CustomerID:    customer.ID,
		SessionID:     sessionID,
		SigningSecret: signingSecret,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to rotate session secret", slog.Any("customerID", customer.ID), slog.Any("error", err))

		return nil, internalError(err, "failed to rotate session secret")
	}

	token, err := srv.signer.Sign(&service.SessionClaims{
		Customer:  customer.Redact(),
		SessionID: sessionID,
	}, signingSecret, srv.sessionTTL)
	if err != nil {
		return nil, internalError(err, "failed to sign session token")
	}

	srv.log(ctx).Info("Customer authenticated", slog.Any("customerID", customer.ID))

	return &usecase.AuthenticateOutput{Token: token}, nil
}

func (srv *sessionService) verifyCredentials(ctx context.Context, input *usecase.AuthenticateInput) (*entity.Customer, error) {
	customer, err := srv.customers.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrCustomerNotFound) {
		_, _ = srv.hasher.Verify(input.Password, srv.dummyHash)
		srv.log(ctx).Debug("Authentication rejected for unknown email")

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("customer not found")
	}
	if err != nil {
		srv.log(ctx).Error("Failed to look up customer", slog.Any("error", err))

		return nil, internalError(err, "failed to find customer")
	}

	ok, err := srv.hasher.Verify(input.Password, customer.PasswordHash)
	if err != nil {
		srv.log(ctx).Error("Failed to verify password", slog.Any("customerID", customer.ID), slog.Any("error", err))

		return nil, internalError(err, "failed to verify password")
	}
	if !ok {
		srv.log(ctx).Debug("Authentication rejected for wrong password", slog.Any("customerID", customer.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	return customer, nil
}

// internalError tags err as an internal failure while keeping the cause in the chain.
func internalError(err error, message string) error {
	return errors.Wrap(errors.Join(domainerrors.ErrInternalError, err), message)
}

func authenticationOutcome(err error) string {
	switch {
	case err == nil:
		return service.OutcomeSuccess
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return service.OutcomeInvalidCredentials
	default:
		return service.OutcomeError
	}
}
