package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func signToken(t *testing.T, secret string, claims SessionClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestTokenValidator_Valid(t *testing.T) {
	v := NewTokenValidator(testSecret)

	tokenString := signToken(t, testSecret, SessionClaims{
		UserID: "user-42",
		Email:  "shopper@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := v.Validate(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "shopper@example.com", claims.Email)
}

func TestTokenValidator_UserIDFallsBackToSubject(t *testing.T) {
	v := NewTokenValidator(testSecret)

	tokenString := signToken(t, testSecret, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-from-sub",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := v.Validate(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-from-sub", claims.UserID)
}

func TestTokenValidator_Expired(t *testing.T) {
	v := NewTokenValidator(testSecret)

	tokenString := signToken(t, testSecret, SessionClaims{
		UserID: "user-42",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	_, err := v.Validate(tokenString)
	assert.Error(t, err)
}

func TestTokenValidator_WrongSecret(t *testing.T) {
	v := NewTokenValidator(testSecret)

	tokenString := signToken(t, "other-secret", SessionClaims{
		UserID: "user-42",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := v.Validate(tokenString)
	assert.Error(t, err)
}

func TestTokenValidator_Garbage(t *testing.T) {
	v := NewTokenValidator(testSecret)

	_, err := v.Validate("not.a.token")
	assert.Error(t, err)
}
