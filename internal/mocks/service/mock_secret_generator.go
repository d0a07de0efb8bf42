package service

import (
	mock "github.com/stretchr/testify/mock"
)

// MockSecretGenerator is a testify mock of SecretGenerator with a typed expecter API.
type MockSecretGenerator struct {
	mock.Mock
}

type MockSecretGenerator_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSecretGenerator) EXPECT() *MockSecretGenerator_Expecter {
	return &MockSecretGenerator_Expecter{mock: &_m.Mock}
}

// NewSessionID provides a mock function with given fields:
func (_m *MockSecretGenerator) NewSessionID() (string, error) {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for NewSessionID")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func() (string, error)); ok {
		return rf()
	}
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockSecretGenerator_NewSessionID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'NewSessionID'
type MockSecretGenerator_NewSessionID_Call struct {
	*mock.Call
}

// NewSessionID is a helper method to define mock.On call
func (_e *MockSecretGenerator_Expecter) NewSessionID() *MockSecretGenerator_NewSessionID_Call {
	return &MockSecretGenerator_NewSessionID_Call{Call: _e.mock.On("NewSessionID")}
}

func (_c *MockSecretGenerator_NewSessionID_Call) Run(run func()) *MockSecretGenerator_NewSessionID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockSecretGenerator_NewSessionID_Call) Return(_a0 string, _a1 error) *MockSecretGenerator_NewSessionID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockSecretGenerator_NewSessionID_Call) RunAndReturn(run func() (string, error)) *MockSecretGenerator_NewSessionID_Call {
	_c.Call.Return(run)
	return _c
}

// NewSigningSecret provides a mock function with given fields:
func (_m *MockSecretGenerator) NewSigningSecret() (string, error) {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for NewSigningSecret")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func() (string, error)); ok {
		return rf()
	}
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockSecretGenerator_NewSigningSecret_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'NewSigningSecret'
type MockSecretGenerator_NewSigningSecret_Call struct {
	*mock.Call
}

// NewSigningSecret is a helper method to define mock.On call
func (_e *MockSecretGenerator_Expecter) NewSigningSecret() *MockSecretGenerator_NewSigningSecret_Call {
	return &MockSecretGenerator_NewSigningSecret_Call{Call: _e.mock.On("NewSigningSecret")}
}

func (_c *MockSecretGenerator_NewSigningSecret_Call) Run(run func()) *MockSecretGenerator_NewSigningSecret_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockSecretGenerator_NewSigningSecret_Call) Return(_a0 string, _a1 error) *MockSecretGenerator_NewSigningSecret_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockSecretGenerator_NewSigningSecret_Call) RunAndReturn(run func() (string, error)) *MockSecretGenerator_NewSigningSecret_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockSecretGenerator creates a new instance of MockSecretGenerator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockSecretGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSecretGenerator {
	mock := &MockSecretGenerator{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
