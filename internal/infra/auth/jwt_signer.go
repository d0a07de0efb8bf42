package auth

import (
	"time"

	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtSigner signs session claims with HS256.
type jwtSigner struct {
	now func() time.Time
}

// NewJWTSigner is the constructor for jwtSigner.
func NewJWTSigner() service.TokenSigner {
	return &jwtSigner{now: time.Now}
}

// Sign stamps iat and exp on claims and signs them with secret.
func (s *jwtSigner) Sign(claims *service.SessionClaims, secret string, ttl time.Duration) (string, error) {
	if claims == nil {
		return "", errors.New("claims are required")
	}
	if secret == "" {
		return "", errors.New("signing secret is required")
	}
	if ttl <= 0 {
		return "", errors.Errorf("invalid token ttl: %s", ttl)
	}

	issuedAt := s.now()
	claims.IssuedAt = jwt.NewNumericDate(issuedAt)
	claims.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}
