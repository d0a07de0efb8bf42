package repository

import (
	context "context"

	entity "storefront/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

// MockSessionSecretRepository is a testify mock of SessionSecretRepository with a typed expecter API.
type MockSessionSecretRepository struct {
	mock.Mock
}

type MockSessionSecretRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSessionSecretRepository) EXPECT() *MockSessionSecretRepository_Expecter {
	return &MockSessionSecretRepository_Expecter{mock: &_m.Mock}
}

// FindByCustomerID provides a mock function with given fields: ctx, customerID
func (_m *MockSessionSecretRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) (*entity.SessionSecret, error) {
	ret := _m.Called(ctx, customerID)

	if len(ret) == 0 {
		panic("no return value specified for FindByCustomerID")
	}

	var r0 *entity.SessionSecret
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.SessionSecret, error)); ok {
		return rf(ctx, customerID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.SessionSecret); ok {
		r0 = rf(ctx, customerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.SessionSecret)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, customerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockSessionSecretRepository_FindByCustomerID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByCustomerID'
type MockSessionSecretRepository_FindByCustomerID_Call struct {
	*mock.Call
}

// FindByCustomerID is a helper method to define mock.On call
//   - ctx context.Context
//   - customerID uuid.UUID
func (_e *MockSessionSecretRepository_Expecter) FindByCustomerID(ctx interface{}, customerID interface{}) *MockSessionSecretRepository_FindByCustomerID_Call {
	return &MockSessionSecretRepository_FindByCustomerID_Call{Call: _e.mock.On("FindByCustomerID", ctx, customerID)}
}

func (_c *MockSessionSecretRepository_FindByCustomerID_Call) Run(run func(ctx context.Context, customerID uuid.UUID)) *MockSessionSecretRepository_FindByCustomerID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockSessionSecretRepository_FindByCustomerID_Call) Return(_a0 *entity.SessionSecret, _a1 error) *MockSessionSecretRepository_FindByCustomerID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockSessionSecretRepository_FindByCustomerID_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.SessionSecret, error)) *MockSessionSecretRepository_FindByCustomerID_Call {
	_c.Call.Return(run)
	return _c
}

// Upsert provides a mock function with given fields: ctx, secret
func (_m *MockSessionSecretRepository) Upsert(ctx context.Context, secret *entity.SessionSecret) error {
	ret := _m.Called(ctx, secret)

	if len(ret) == 0 {
		panic("no return value specified for Upsert")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.SessionSecret) error); ok {
		r0 = rf(ctx, secret)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockSessionSecretRepository_Upsert_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Upsert'
type MockSessionSecretRepository_Upsert_Call struct {
	*mock.Call
}

// Upsert is a helper method to define mock.On call
//   - ctx context.Context
//   - secret *entity.SessionSecret
func (_e *MockSessionSecretRepository_Expecter) Upsert(ctx interface{}, secret interface{}) *MockSessionSecretRepository_Upsert_Call {
	return &MockSessionSecretRepository_Upsert_Call{Call: _e.mock.On("Upsert", ctx, secret)}
}

func (_c *MockSessionSecretRepository_Upsert_Call) Run(run func(ctx context.Context, secret *entity.SessionSecret)) *MockSessionSecretRepository_Upsert_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.SessionSecret))
	})
	return _c
}

func (_c *MockSessionSecretRepository_Upsert_Call) Return(_a0 error) *MockSessionSecretRepository_Upsert_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockSessionSecretRepository_Upsert_Call) RunAndReturn(run func(context.Context, *entity.SessionSecret) error) *MockSessionSecretRepository_Upsert_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockSessionSecretRepository creates a new instance of MockSessionSecretRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockSessionSecretRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSessionSecretRepository {
	mock := &MockSessionSecretRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
