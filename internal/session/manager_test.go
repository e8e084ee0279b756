package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestManager_CreateAndGet(t *testing.T) {
	m := NewManager(zap.NewNop())

	s := m.Create("user-1")
	assert.Equal(t, 1, m.Count())

	got, err := m.Get(s.ID, "user-1")
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestManager_GetIsOwnerScoped(t *testing.T) {
	m := NewManager(zap.NewNop())
	s := m.Create("user-1")

	_, err := m.Get(s.ID, "someone-else")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_GetUnknownID(t *testing.T) {
	m := NewManager(zap.NewNop())

	_, err := m.Get(uuid.New(), "user-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_Delete(t *testing.T) {
	m := NewManager(zap.NewNop())
	s := m.Create("user-1")

	m.Delete(s.ID)
	assert.Zero(t, m.Count())

	_, err := m.Get(s.ID, "user-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_SweepIdle(t *testing.T) {
	m := NewManager(zap.NewNop())
	m.Create("user-1")
	m.Create("user-2")

	assert.Zero(t, m.SweepIdle(time.Hour))
	assert.Equal(t, 2, m.Count())

	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 2, m.SweepIdle(time.Millisecond))
	assert.Zero(t, m.Count())
}
