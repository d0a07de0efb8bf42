package service

import (
	mock "github.com/stretchr/testify/mock"

	time "time"
)

// MockAuthenticationRecorder is a testify mock of AuthenticationRecorder with a typed expecter API.
type MockAuthenticationRecorder struct {
	mock.Mock
}

type MockAuthenticationRecorder_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAuthenticationRecorder) EXPECT() *MockAuthenticationRecorder_Expecter {
	return &MockAuthenticationRecorder_Expecter{mock: &_m.Mock}
}

// RecordAuthentication provides a mock function with given fields: outcome, duration
func (_m *MockAuthenticationRecorder) RecordAuthentication(outcome string, duration time.Duration) {
	_m.Called(outcome, duration)
}

// MockAuthenticationRecorder_RecordAuthentication_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RecordAuthentication'
type MockAuthenticationRecorder_RecordAuthentication_Call struct {
	*mock.Call
}

// RecordAuthentication is a helper method to define mock.On call
//   - outcome string
//   - duration time.Duration
func (_e *MockAuthenticationRecorder_Expecter) RecordAuthentication(outcome interface{}, duration interface{}) *MockAuthenticationRecorder_RecordAuthentication_Call {
	return &MockAuthenticationRecorder_RecordAuthentication_Call{Call: _e.mock.On("RecordAuthentication", outcome, duration)}
}

func (_c *MockAuthenticationRecorder_RecordAuthentication_Call) Run(run func(outcome string, duration time.Duration)) *MockAuthenticationRecorder_RecordAuthentication_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].(time.Duration))
	})
	return _c
}

func (_c *MockAuthenticationRecorder_RecordAuthentication_Call) Return() *MockAuthenticationRecorder_RecordAuthentication_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockAuthenticationRecorder_RecordAuthentication_Call) RunAndReturn(run func(string, time.Duration)) *MockAuthenticationRecorder_RecordAuthentication_Call {
	_c.Run(run)
	return _c
}

// NewMockAuthenticationRecorder creates a new instance of MockAuthenticationRecorder. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAuthenticationRecorder(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthenticationRecorder {
	mock := &MockAuthenticationRecorder{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
