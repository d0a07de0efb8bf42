package service

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the payload of a customer session token.
type SessionClaims struct {
	Customer  *entity.RedactedCustomer `json:"customer"`
	SessionID string                   `json:"sid"`
	jwt.RegisteredClaims
}

// TokenSigner signs session claims with a per-customer secret.
type TokenSigner interface {
	// Sign sets the issue and expiry times on claims and returns the compact token.
	Sign(claims *SessionClaims, secret string, ttl time.Duration) (string, error)
}
