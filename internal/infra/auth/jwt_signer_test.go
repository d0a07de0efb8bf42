package auth

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSessionToken(t *testing.T, token, secret string) *service.SessionClaims {
	t.Helper()

	claims := &service.SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	return claims
}

func TestJWTSigner_Sign(t *testing.T) {
	issuedAt := time.Now().Truncate(time.Second)
	signer := &jwtSigner{now: func() time.Time { return issuedAt }}

	customer := &entity.RedactedCustomer{ID: uuid.New(), Email: "a@x.com", FullName: "Ada", GroupID: 1, Status: 1}
	token, err := signer.Sign(&service.SessionClaims{Customer: customer, SessionID: "sid-1"}, "s3cr3t", 48*time.Hour)
	require.NoError(t, err)

	claims := parseSessionToken(t, token, "s3cr3t")
	assert.Equal(t, "sid-1", claims.SessionID)
	assert.Equal(t, customer, claims.Customer)
	assert.Equal(t, issuedAt.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, issuedAt.Add(48*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestJWTSigner_WrongSecretFailsVerification(t *testing.T) {
	signer := NewJWTSigner()

	token, err := signer.Sign(&service.SessionClaims{SessionID: "sid-1"}, "right", time.Hour)
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(token, &service.SessionClaims{}, func(*jwt.Token) (any, error) {
		return []byte("wrong"), nil
	})
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTSigner_DeterministicForFixedClock(t *testing.T) {
	fixed := time.Unix(1_700_000_000, 0)
	signer := &jwtSigner{now: func() time.Time { return fixed }}
	customer := &entity.RedactedCustomer{Email: "a@x.com"}

	first, err := signer.Sign(&service.SessionClaims{Customer: customer, SessionID: "sid"}, "key", time.Hour)
	require.NoError(t, err)
	second, err := signer.Sign(&service.SessionClaims{Customer: customer, SessionID: "sid"}, "key", time.Hour)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestJWTSigner_RejectsBadInput(t *testing.T) {
	signer := NewJWTSigner()

	_, err := signer.Sign(nil, "key", time.Hour)
	assert.Error(t, err)

	_, err = signer.Sign(&service.SessionClaims{}, "", time.Hour)
	assert.Error(t, err)

	_, err = signer.Sign(&service.SessionClaims{}, "key", 0)
	assert.Error(t, err)
}
