package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// bcrypt ignores everything past this many bytes.
const maxPasswordBytes = 72

// customerService implements the CustomerUsecase interface.
type customerService struct {
	customers repository.CustomerRepository
	hasher    service.PasswordHasher
	groupID   int
	status    int
	logger    *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	Customers repository.CustomerRepository
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	groupID, status := 1, 1
	if params.Config != nil && params.Config.Auth != nil {
		groupID = params.Config.Auth.CustomerGroupID
		status = params.Config.Auth.CustomerStatus
	}

	return &customerService{
		customers: params.Customers,
		hasher:    params.Hasher,
		groupID:   groupID,
		status:    status,
		logger:    params.Logger,
	}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register hashes the password and stores a new customer in the default group.
func (srv *customerService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input == nil || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email and password are required")
	}
	if len(input.Password) > maxPasswordBytes {
		return nil, domainerrors.ErrPasswordTooLong.
			WithDetails("password must be at most 72 bytes").
			WrapMessage("password exceeds bcrypt input limit")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, internalError(err, "failed to hash password")
	}

	customer := &entity.Customer{
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: hash,
		GroupID:      srv.groupID,
		Status:       srv.status,
	}

	err = srv.customers.Create(ctx, customer)
	switch {
	case err == nil:
	case errors.Is(err, domainerrors.ErrCustomerAlreadyExists):
		srv.log(ctx).Info("Registration rejected for existing email")

		return nil, errors.Wrap(err, "failed to register customer")
	case errors.Is(err, domainerrors.ErrValidationFailed), errors.Is(err, domainerrors.ErrInvalidRegistration):
		return nil, errors.Wrap(err, "failed to register customer")
	default:
		srv.log(ctx).Error("Failed to create customer", slog.Any("error", err))

		return nil, internalError(err, "failed to create customer")
	}

	srv.log(ctx).Info("Customer registered", slog.Any("customerID", customer.ID))

	return &usecase.RegisterOutput{Customer: customer.Redact()}, nil
}
