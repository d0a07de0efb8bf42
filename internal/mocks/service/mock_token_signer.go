package service

import (
	mock "github.com/stretchr/testify/mock"

	service "storefront/internal/domain/service"

	time "time"
)

// MockTokenSigner is a testify mock of TokenSigner with a typed expecter API.
type MockTokenSigner struct {
	mock.Mock
}

type MockTokenSigner_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenSigner) EXPECT() *MockTokenSigner_Expecter {
	return &MockTokenSigner_Expecter{mock: &_m.Mock}
}

// Sign provides a mock function with given fields: claims, secret, ttl
func (_m *MockTokenSigner) Sign(claims *service.SessionClaims, secret string, ttl time.Duration) (string, error) {
	ret := _m.Called(claims, secret, ttl)

	if len(ret) == 0 {
		panic("no return value specified for Sign")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(*service.SessionClaims, string, time.Duration) (string, error)); ok {
		return rf(claims, secret, ttl)
	}
	if rf, ok := ret.Get(0).(func(*service.SessionClaims, string, time.Duration) string); ok {
		r0 = rf(claims, secret, ttl)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(*service.SessionClaims, string, time.Duration) error); ok {
		r1 = rf(claims, secret, ttl)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenSigner_Sign_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Sign'
type MockTokenSigner_Sign_Call struct {
	*mock.Call
}

// Sign is a helper method to define mock.On call
//   - claims *service.SessionClaims
//   - secret string
//   - ttl time.Duration
func (_e *MockTokenSigner_Expecter) Sign(claims interface{}, secret interface{}, ttl interface{}) *MockTokenSigner_Sign_Call {
	return &MockTokenSigner_Sign_Call{Call: _e.mock.On("Sign", claims, secret, ttl)}
}

func (_c *MockTokenSigner_Sign_Call) Run(run func(claims *service.SessionClaims, secret string, ttl time.Duration)) *MockTokenSigner_Sign_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(*service.SessionClaims), args[1].(string), args[2].(time.Duration))
	})
	return _c
}

func (_c *MockTokenSigner_Sign_Call) Return(_a0 string, _a1 error) *MockTokenSigner_Sign_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTokenSigner_Sign_Call) RunAndReturn(run func(*service.SessionClaims, string, time.Duration) (string, error)) *MockTokenSigner_Sign_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTokenSigner creates a new instance of MockTokenSigner. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTokenSigner(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenSigner {
	mock := &MockTokenSigner{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
