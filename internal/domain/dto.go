package domain

import (
	"time"

	"github.com/google/uuid"
)

// CommandRequest is the single command-surface entry point payload.
// Identity comes from the authentication middleware, never from the body.
type CommandRequest struct {
	Entity        string                 `json:"entity" validate:"required"`
	Operation     string                 `json:"operation" validate:"required"`
	ExtractedData map[string]interface{} `json:"extractedData" validate:"required"`
}

// CommandResponse is the envelope returned by the command surface
type CommandResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	ErrorKind string      `json:"errorKind,omitempty"`
}

// CreateSessionResponse is returned when a chat session is opened
type CreateSessionResponse struct {
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostMessageRequest submits one turn of free-form text to a session
type PostMessageRequest struct {
	Text string `json:"text" validate:"required,max=4000"`
}

// ResolvePendingRequest confirms or rejects a pending action by message id
type ResolvePendingRequest struct {
	MessageID string `json:"messageId" validate:"required,uuid"`
}

// MessageDTO is the transport form of one conversation message
type MessageDTO struct {
	ID         string         `json:"id"`
	Role       string         `json:"role"`
	Content    string         `json:"content"`
	Timestamp  time.Time      `json:"timestamp"`
	Status     string         `json:"status,omitempty"`
	Extraction *ExtractionDTO `json:"extraction,omitempty"`
}

// ExtractionDTO is the transport form of an intent extraction
type ExtractionDTO struct {
	Intent        string                 `json:"intent"`
	Confidence    float64                `json:"confidence"`
	ExtractedData map[string]interface{} `json:"extractedData"`
	TemplateID    string                 `json:"templateId,omitempty"`
	Entity        string                 `json:"entity,omitempty"`
	Operation     string                 `json:"operation,omitempty"`
	Warnings      []string               `json:"warnings,omitempty"`
}

// SessionDTO is the transport form of a conversation session
type SessionDTO struct {
	ID               string       `json:"id"`
	Messages         []MessageDTO `json:"messages"`
	PendingMessageID string       `json:"pendingMessageId,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
	LastActivityAt   time.Time    `json:"lastActivityAt"`
}

// CustomerDTO is the transport form of a customer
type CustomerDTO struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Industry         string    `json:"industry,omitempty"`
	Website          string    `json:"website,omitempty"`
	Status           string    `json:"status"`
	Tags             []string  `json:"tags,omitempty"`
	ContactCount     int       `json:"contactCount"`
	NoteCount        int       `json:"noteCount"`
	OpportunityCount int       `json:"opportunityCount"`
	CreatedByName    string    `json:"createdByName,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// NoteDTO is the transport form of a note
type NoteDTO struct {
	ID            uuid.UUID `json:"id"`
	CustomerID    uuid.UUID `json:"customerId"`
	CustomerName  string    `json:"customerName,omitempty"`
	Body          string    `json:"body"`
	NoteDate      string    `json:"noteDate"`
	Confidence    string    `json:"confidence,omitempty"`
	NextSteps     string    `json:"nextSteps,omitempty"`
	CreatedByName string    `json:"createdByName,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// OpportunityDTO is the transport form of an opportunity
type OpportunityDTO struct {
	ID                uuid.UUID            `json:"id"`
	CustomerID        uuid.UUID            `json:"customerId"`
	CustomerName      string               `json:"customerName,omitempty"`
	Name              string               `json:"name"`
	Description       string               `json:"description,omitempty"`
	CurrentStage      string               `json:"currentStage"`
	StagePosition     int                  `json:"stagePosition"`
	EstimatedValue    float64              `json:"estimatedValue"`
	Currency          string               `json:"currency"`
	CloseProbability  int                  `json:"closeProbability"`
	ExpectedCloseDate *time.Time           `json:"expectedCloseDate,omitempty"`
	ActualCloseDate   *time.Time           `json:"actualCloseDate,omitempty"`
	Products          []string             `json:"products,omitempty"`
	Priority          string               `json:"priority"`
	Type              string               `json:"type,omitempty"`
	CompetitorNotes   string               `json:"competitorNotes,omitempty"`
	NextSteps         string               `json:"nextSteps,omitempty"`
	StageHistory      []StageTransitionDTO `json:"stageHistory,omitempty"`
	CreatedAt         time.Time            `json:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt"`
}

// StageTransitionDTO is the transport form of a stage transition record
type StageTransitionDTO struct {
	ID            uuid.UUID `json:"id"`
	FromStage     *string   `json:"fromStage"`
	ToStage       string    `json:"toStage"`
	ChangedByID   string    `json:"changedById"`
	ChangedByName string    `json:"changedByName,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	DurationDays  int       `json:"durationDays"`
	ChangedAt     time.Time `json:"changedAt"`
}

// PaginatedResponse wraps list responses with paging metadata
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}
