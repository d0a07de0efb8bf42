package usecase

import (
	context "context"

	mock "github.com/stretchr/testify/mock"

	usecase "storefront/internal/usecase"
)

// MockCustomerUsecase is a testify mock of CustomerUsecase with a typed expecter API.
type MockCustomerUsecase struct {
	mock.Mock
}

type MockCustomerUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCustomerUsecase) EXPECT() *MockCustomerUsecase_Expecter {
	return &MockCustomerUsecase_Expecter{mock: &_m.Mock}
}

// Register provides a mock function with given fields: ctx, input
func (_m *MockCustomerUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for Register")
	}

	var r0 *usecase.RegisterOutput
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.RegisterInput) (*usecase.RegisterOutput, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.RegisterInput) *usecase.RegisterOutput); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.RegisterOutput)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *usecase.RegisterInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCustomerUsecase_Register_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Register'
type MockCustomerUsecase_Register_Call struct {
	*mock.Call
}

// Register is a helper method to define mock.On call
//   - ctx context.Context
//   - input *usecase.RegisterInput
func (_e *MockCustomerUsecase_Expecter) Register(ctx interface{}, input interface{}) *MockCustomerUsecase_Register_Call {
	return &MockCustomerUsecase_Register_Call{Call: _e.mock.On("Register", ctx, input)}
}

func (_c *MockCustomerUsecase_Register_Call) Run(run func(ctx context.Context, input *usecase.RegisterInput)) *MockCustomerUsecase_Register_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.RegisterInput))
	})
	return _c
}

func (_c *MockCustomerUsecase_Register_Call) Return(_a0 *usecase.RegisterOutput, _a1 error) *MockCustomerUsecase_Register_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCustomerUsecase_Register_Call) RunAndReturn(run func(context.Context, *usecase.RegisterInput) (*usecase.RegisterOutput, error)) *MockCustomerUsecase_Register_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockCustomerUsecase creates a new instance of MockCustomerUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCustomerUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCustomerUsecase {
	mock := &MockCustomerUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
