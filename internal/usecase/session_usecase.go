// Package usecase defines the application-specific business rules interfaces.
package usecase

import "context"

// AuthenticateInput carries the login credentials.
type AuthenticateInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthenticateOutput carries the issued session token.
type AuthenticateOutput struct {
	Token string `json:"token"`
}

// SessionUsecase issues session tokens.
type SessionUsecase interface {
	// Authenticate verifies credentials, rotates the customer's session secret and
	// returns a token signed with the new secret.
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)
}
