package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type customerServiceFixtures struct {
	service   usecase.CustomerUsecase
	customers *mockRepo.MockCustomerRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	customers := mockRepo.NewMockCustomerRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	svc := NewCustomerService(CustomerServiceParams{
		Customers: customers,
		Hasher:    hasher,
		Config:    &config.Config{Auth: &config.AuthConfig{CustomerGroupID: 3, CustomerStatus: 2}},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return customerServiceFixtures{service: svc, customers: customers, hasher: hasher}
}

func TestCustomerService_Register_Success(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	fx.customers.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(_ context.Context, customer *entity.Customer) {
			assert.Equal(t, "hashed", customer.PasswordHash)
			assert.Equal(t, 3, customer.GroupID)
			assert.Equal(t, 2, customer.Status)
			customer.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", FullName: "Ada", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", output.Customer.Email)
	assert.Equal(t, "Ada", output.Customer.FullName)
	assert.NotEqual(t, uuid.Nil, output.Customer.ID)
}

func TestCustomerService_Register_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.RegisterInput
	}{
		{name: "nil input"},
		{name: "missing email", input: &usecase.RegisterInput{Password: "secret123"}},
		{name: "missing password", input: &usecase.RegisterInput{Email: "a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCustomerService(t)

			_, err := fx.service.Register(context.Background(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestCustomerService_Register_PasswordTooLong(t *testing.T) {
	fx := createTestCustomerService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Email: "a@x.com", Password: strings.Repeat("p", 73)})
	require.ErrorIs(t, err, domainerrors.ErrPasswordTooLong)
	assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "Password is too long", appErr.Message())
}

func TestCustomerService_Register_Errors(t *testing.T) {
	tests := []struct {
		name      string
		hashErr   error
		createErr error
		wantCode  int
	}{
		{name: "hasher failure", hashErr: errors.New("rand failure"), wantCode: 500},
		{name: "duplicate email", createErr: domainerrors.ErrCustomerAlreadyExists.WrapMessage("duplicate"), wantCode: 409},
		{name: "store failure", createErr: domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "insert"), wantCode: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCustomerService(t)
			ctx := context.Background()

			if tt.hashErr != nil {
				fx.hasher.EXPECT().Hash("secret123").Return("", tt.hashErr)
			} else {
				fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
				fx.customers.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Customer")).Return(tt.createErr)
			}

			_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", Password: "secret123"})
			require.Error(t, err)

			appErr, ok := errors.AsType[domainerrors.AppError](err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, appErr.HTTPCode())
		})
	}
}
