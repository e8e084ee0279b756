package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lumen-crm/assistant-api/internal/auth"
	"github.com/lumen-crm/assistant-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testAPIKey = "test-api-key-value"

func newTestMiddleware() *auth.Middleware {
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSigningKey: testSigningKey,
			APIKey:        testAPIKey,
			Issuer:        testIssuer,
		},
	}
	return auth.NewMiddleware(cfg, zap.NewNop())
}

// captureHandler records the user context the middleware injected
func captureHandler(captured **auth.UserContext) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := auth.FromContext(r.Context()); ok {
			*captured = user
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware_APIKey(t *testing.T) {
	m := newTestMiddleware()

	t.Run("valid key authenticates as system", func(t *testing.T) {
		var captured *auth.UserContext
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil)
		req.Header.Set("x-api-key", testAPIKey)
		rec := httptest.NewRecorder()

		m.Authenticate(captureHandler(&captured)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, captured)
		assert.Equal(t, "system", captured.UserID)
		assert.Equal(t, "System", captured.DisplayName)
	})

	t.Run("invalid key is rejected", func(t *testing.T) {
		var captured *auth.UserContext
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil)
		req.Header.Set("x-api-key", "wrong-key")
		rec := httptest.NewRecorder()

		m.Authenticate(captureHandler(&captured)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, captured)
	})

	t.Run("invalid key does not fall through to bearer", func(t *testing.T) {
		var captured *auth.UserContext
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil)
		req.Header.Set("x-api-key", "wrong-key")
		req.Header.Set("Authorization", "Bearer "+signToken(t, validClaims(), testSigningKey))
		rec := httptest.NewRecorder()

		m.Authenticate(captureHandler(&captured)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestMiddleware_BearerToken(t *testing.T) {
	m := newTestMiddleware()

	t.Run("valid token authenticates", func(t *testing.T) {
		var captured *auth.UserContext
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, validClaims(), testSigningKey))
		rec := httptest.NewRecorder()

		m.Authenticate(captureHandler(&captured)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, captured)
		assert.Equal(t, "user-123", captured.UserID)
		assert.Equal(t, "Jane Doe", captured.DisplayName)
	})

	t.Run("lowercase bearer scheme is accepted", func(t *testing.T) {
		var captured *auth.UserContext
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil)
		req.Header.Set("Authorization", "bearer "+signToken(t, validClaims(), testSigningKey))
		rec := httptest.NewRecorder()

		m.Authenticate(captureHandler(&captured)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, captured)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil)
		rec := httptest.NewRecorder()

		m.Authenticate(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil)
		req.Header.Set("Authorization", "Token abc123")
		rec := httptest.NewRecorder()

		m.Authenticate(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, validClaims(), "a-different-key"))
		rec := httptest.NewRecorder()

		m.Authenticate(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}
