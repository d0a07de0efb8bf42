package usecase

import (
	context "context"

	mock "github.com/stretchr/testify/mock"

	usecase "storefront/internal/usecase"
)

// MockSessionUsecase is a testify mock of SessionUsecase with a typed expecter API.
type MockSessionUsecase struct {
	mock.Mock
}

type MockSessionUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSessionUsecase) EXPECT() *MockSessionUsecase_Expecter {
	return &MockSessionUsecase_Expecter{mock: &_m.Mock}
}

// Authenticate provides a mock function with given fields: ctx, input
func (_m *MockSessionUsecase) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for Authenticate")
	}

	var r0 *usecase.AuthenticateOutput
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.AuthenticateInput) *usecase.AuthenticateOutput); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.AuthenticateOutput)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *usecase.AuthenticateInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockSessionUsecase_Authenticate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Authenticate'
type MockSessionUsecase_Authenticate_Call struct {
	*mock.Call
}

// Authenticate is a helper method to define mock.On call
//   - ctx context.Context
//   - input *usecase.AuthenticateInput
func (_e *MockSessionUsecase_Expecter) Authenticate(ctx interface{}, input interface{}) *MockSessionUsecase_Authenticate_Call {
	return &MockSessionUsecase_Authenticate_Call{Call: _e.mock.On("Authenticate", ctx, input)}
}

func (_c *MockSessionUsecase_Authenticate_Call) Run(run func(ctx context.Context, input *usecase.AuthenticateInput)) *MockSessionUsecase_Authenticate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.AuthenticateInput))
	})
	return _c
}

func (_c *MockSessionUsecase_Authenticate_Call) Return(_a0 *usecase.AuthenticateOutput, _a1 error) *MockSessionUsecase_Authenticate_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockSessionUsecase_Authenticate_Call) RunAndReturn(run func(context.Context, *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error)) *MockSessionUsecase_Authenticate_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockSessionUsecase creates a new instance of MockSessionUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockSessionUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSessionUsecase {
	mock := &MockSessionUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
