package service

import "time"

// Authentication outcomes reported to an AuthenticationRecorder.
const (
	OutcomeSuccess            = "success"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeError              = "error"
)

// AuthenticationRecorder observes the result of each authentication attempt.
type AuthenticationRecorder interface {
	RecordAuthentication(outcome string, duration time.Duration)
}

// NopAuthenticationRecorder discards all observations.
type NopAuthenticationRecorder struct{}

func (NopAuthenticationRecorder) RecordAuthentication(string, time.Duration) {}
