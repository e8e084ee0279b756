package auth_test

import (
	"context"
	"testing"

	"github.com/lumen-crm/assistant-api/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserContextRoundTrip(t *testing.T) {
	user := &auth.UserContext{
		UserID:      "user-123",
		DisplayName: "Jane Doe",
		Email:       "jane@lumen-crm.io",
	}

	ctx := auth.WithUserContext(context.Background(), user)

	got, ok := auth.FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, user, got)
}

func TestFromContext_Missing(t *testing.T) {
	_, ok := auth.FromContext(context.Background())
	assert.False(t, ok)
}

func TestMustFromContext(t *testing.T) {
	t.Run("returns user when present", func(t *testing.T) {
		user := &auth.UserContext{UserID: "user-123"}
		ctx := auth.WithUserContext(context.Background(), user)

		assert.Same(t, user, auth.MustFromContext(ctx))
	})

	t.Run("panics when absent", func(t *testing.T) {
		assert.Panics(t, func() {
			auth.MustFromContext(context.Background())
		})
	})
}
