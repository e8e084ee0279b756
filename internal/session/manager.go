package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSessionNotFound indicates an unknown or expired session id.
var ErrSessionNotFound = errors.New("session not found")

// Manager holds live conversation sessions in memory. Sessions are scoped
// to the interactive conversation and are not persisted; idle ones are
// swept on a schedule.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	logger   *zap.Logger
}

// NewManager creates an empty session manager.
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]*Session),
		logger:   logger,
	}
}

// Create starts a new session for the user.
func (m *Manager) Create(userID string) *Session {
	s := NewSession(userID)
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.logger.Info("Session created",
		zap.String("session_id", s.ID.String()),
		zap.String("user_id", userID),
	)
	return s
}

// Get returns the session with the given id, restricted to its owner.
func (m *Manager) Get(id uuid.UUID, userID string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok || s.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete removes a session.
func (m *Manager) Delete(id uuid.UUID) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// SweepIdle removes sessions with no activity for the given duration and
// returns how many were removed.
func (m *Manager) SweepIdle(idleFor time.Duration) int {
	cutoff := time.Now().Add(-idleFor)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if s.IdleSince(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		m.logger.Info("Swept idle sessions",
			zap.Int("removed", removed),
			zap.Int("remaining", len(m.sessions)),
		)
	}
	return removed
}
