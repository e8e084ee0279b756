package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lumen-crm/assistant-api/internal/auth"
	"github.com/lumen-crm/assistant-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSigningKey = "test-signing-key-for-unit-tests"
const testIssuer = "lumen-gateway"

func newTestValidator() *auth.JWTValidator {
	return auth.NewJWTValidator(&config.AuthConfig{
		JWTSigningKey: testSigningKey,
		Issuer:        testIssuer,
	})
}

func signToken(t *testing.T, claims auth.Claims, key string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

func validClaims() auth.Claims {
	return auth.Claims{
		Name:  "Jane Doe",
		Email: "jane@lumen-crm.io",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestJWTValidator_ValidToken(t *testing.T) {
	v := newTestValidator()
	token := signToken(t, validClaims(), testSigningKey)

	user, err := v.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", user.UserID)
	assert.Equal(t, "Jane Doe", user.DisplayName)
	assert.Equal(t, "jane@lumen-crm.io", user.Email)
}

func TestJWTValidator_DisplayNameFallsBackToEmail(t *testing.T) {
	v := newTestValidator()
	claims := validClaims()
	claims.Name = ""

	user, err := v.ValidateToken(signToken(t, claims, testSigningKey))
	require.NoError(t, err)
	assert.Equal(t, "jane@lumen-crm.io", user.DisplayName)
}

func TestJWTValidator_WrongSigningKey(t *testing.T) {
	v := newTestValidator()
	token := signToken(t, validClaims(), "a-different-key")

	_, err := v.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTValidator_ExpiredToken(t *testing.T) {
	v := newTestValidator()
	claims := validClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	_, err := v.ValidateToken(signToken(t, claims, testSigningKey))
	assert.Error(t, err)
}

func TestJWTValidator_MissingExpiry(t *testing.T) {
	v := newTestValidator()
	claims := validClaims()
	claims.ExpiresAt = nil

	_, err := v.ValidateToken(signToken(t, claims, testSigningKey))
	assert.Error(t, err)
}

func TestJWTValidator_WrongIssuer(t *testing.T) {
	v := newTestValidator()
	claims := validClaims()
	claims.Issuer = "someone-else"

	_, err := v.ValidateToken(signToken(t, claims, testSigningKey))
	assert.Error(t, err)
}

func TestJWTValidator_MissingSubject(t *testing.T) {
	v := newTestValidator()
	claims := validClaims()
	claims.Subject = ""

	_, err := v.ValidateToken(signToken(t, claims, testSigningKey))
	assert.Error(t, err)
}

func TestJWTValidator_NoSigningKeyConfigured(t *testing.T) {
	v := auth.NewJWTValidator(&config.AuthConfig{Issuer: testIssuer})

	_, err := v.ValidateToken(signToken(t, validClaims(), testSigningKey))
	assert.Error(t, err)
}
