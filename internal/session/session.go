// Package session implements the confirmation-gated conversation state
// machine: one pending action at most, explicit confirm or reject before
// any mutation, and idempotent resolution.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lumen-crm/assistant-api/internal/intent"
)

// MessageRole identifies who produced a conversation message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleSystem    MessageRole = "system"
)

// MessageStatus tracks the lifecycle of an actionable message. It is set
// exactly once to pending when an extraction is attached, then exactly once
// to confirmed or rejected.
type MessageStatus string

const (
	StatusPending   MessageStatus = "pending"
	StatusConfirmed MessageStatus = "confirmed"
	StatusRejected  MessageStatus = "rejected"
)

// State is the per-turn position of the conversation.
type State string

const (
	StateIdle          State = "idle"
	StateAwaitingInput State = "awaiting_input"
	StatePending       State = "pending"
)

var (
	// ErrMessageNotFound indicates an unknown message id within the session.
	ErrMessageNotFound = errors.New("message not found in session")
	// ErrIllegalTransition indicates a status change the state machine forbids.
	ErrIllegalTransition = errors.New("illegal message status transition")
)

// Message is one entry in a session's append-only history.
type Message struct {
	ID         uuid.UUID          `json:"id"`
	Role       MessageRole        `json:"role"`
	Content    string             `json:"content"`
	Timestamp  time.Time          `json:"timestamp"`
	Extraction *intent.Extraction `json:"extraction,omitempty"`
	Status     *MessageStatus     `json:"status,omitempty"`
}

// Resolved reports whether the message has reached a terminal status.
func (m *Message) Resolved() bool {
	return m.Status != nil && (*m.Status == StatusConfirmed || *m.Status == StatusRejected)
}

// Session holds one user's conversation: an ordered message history plus at
// most one pending action. All mutation goes through the methods below,
// which serialize turns with the session mutex.
type Session struct {
	ID     uuid.UUID `json:"id"`
	UserID string    `json:"userId"`

	// turnMu serializes whole turns: a turn's extraction must finish or
	// fail before the next turn may begin.
	turnMu sync.Mutex

	mu           sync.Mutex
	messages     []*Message
	pending      *Message
	state        State
	createdAt    time.Time
	lastActivity time.Time
}

// NewSession creates an idle session for a user.
func NewSession(userID string) *Session {
	now := time.Now()
	return &Session{
		ID:           uuid.New(),
		UserID:       userID,
		state:        StateIdle,
		createdAt:    now,
		lastActivity: now,
	}
}

// State returns the current conversation state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Messages returns a copy of the message history in order.
func (s *Session) Messages() []*Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Pending returns the message carrying the pending action, or nil.
func (s *Session) Pending() *Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// CreatedAt returns when the session was opened.
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// LastActivity returns when the session last processed a call.
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// IdleSince reports whether the session has seen no activity since the cutoff.
func (s *Session) IdleSince(cutoff time.Time) bool {
	return s.LastActivity().Before(cutoff)
}

func (s *Session) touch() {
	s.lastActivity = time.Now()
}

func (s *Session) append(role MessageRole, content string) *Message {
	msg := &Message{
		ID:        uuid.New(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
	s.messages = append(s.messages, msg)
	s.touch()
	return msg
}

// beginTurn appends the user's text and moves to AwaitingInput. A pending
// action left unresolved by the previous turn is implicitly rejected first,
// so the one-pending-action invariant holds before extraction starts.
func (s *Session) beginTurn(text string) (superseded *Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		rejected := StatusRejected
		s.pending.Status = &rejected
		superseded = s.pending
		s.pending = nil
	}

	s.append(RoleUser, text)
	s.state = StateAwaitingInput
	return superseded
}

// failTurn records an extraction failure as a system message and returns
// the session to Idle with no pending action.
func (s *Session) failTurn(content string) *Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.append(RoleSystem, content)
	s.state = StateIdle
	return msg
}

// completeTurn attaches the extraction to a new assistant message. An
// actionable extraction becomes the pending action; anything else leaves
// the session Idle.
func (s *Session) completeTurn(content string, extraction *intent.Extraction) *Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := s.append(RoleAssistant, content)
	msg.Extraction = extraction

	if extraction != nil && extraction.Actionable() {
		pending := StatusPending
		msg.Status = &pending
		s.pending = msg
		s.state = StatePending
	} else {
		s.state = StateIdle
	}
	return msg
}

// resolve moves a pending message to confirmed or rejected. Resolving an
// already-resolved message is a no-op so duplicate UI events cannot
// double-dispatch; resolving a message that was never actionable is an
// illegal transition.
func (s *Session) resolve(messageID uuid.UUID, status MessageStatus) (msg *Message, alreadyResolved bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.messages {
		if m.ID == messageID {
			msg = m
			break
		}
	}
	if msg == nil {
		return nil, false, ErrMessageNotFound
	}
	if msg.Resolved() {
		s.touch()
		return msg, true, nil
	}
	if msg.Status == nil || *msg.Status != StatusPending {
		return nil, false, ErrIllegalTransition
	}

	msg.Status = &status
	if s.pending == msg {
		s.pending = nil
	}
	s.state = StateIdle
	s.touch()
	return msg, false, nil
}

// recordOutcome appends a post-dispatch message while holding the session.
func (s *Session) recordOutcome(role MessageRole, content string) *Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.append(role, content)
}
