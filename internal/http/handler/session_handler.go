package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lumen-crm/assistant-api/internal/auth"
	"github.com/lumen-crm/assistant-api/internal/domain"
	"github.com/lumen-crm/assistant-api/internal/mapper"
	"github.com/lumen-crm/assistant-api/internal/session"
	"go.uber.org/zap"
)

// SessionHandler exposes the interactive conversation surface.
type SessionHandler struct {
	sessions *session.Manager
	engine   *session.Engine
	logger   *zap.Logger
}

func NewSessionHandler(sessions *session.Manager, engine *session.Engine, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		engine:   engine,
		logger:   logger,
	}
}

// @Summary Open a session
// @Description Start a new conversation session for the authenticated user
// @Tags Sessions
// @Produce json
// @Success 201 {object} domain.CreateSessionResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /sessions [post]
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.MustFromContext(r.Context())
	s := h.sessions.Create(user.UserID)
	respondJSON(w, http.StatusCreated, domain.CreateSessionResponse{
		SessionID: s.ID.String(),
		CreatedAt: s.CreatedAt(),
	})
}

// @Summary Get a session
// @Description Return the session's message history and pending action
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.SessionDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /sessions/{id} [get]
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, mapper.ToSessionDTO(s))
}

// @Summary Close a session
// @Description Discard a session and any pending action
// @Tags Sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /sessions/{id} [delete]
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	s, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	h.sessions.Delete(s.ID)
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Send a message
// @Description Process one turn of free-form text, returning the assistant's reply
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param message body domain.PostMessageRequest true "User text"
// @Success 200 {object} domain.MessageDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /sessions/{id}/messages [post]
func (h *SessionHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	s, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	var req domain.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	user := auth.MustFromContext(r.Context())
	msg, err := h.engine.HandleMessage(r.Context(), s, req.Text, *user)
	if err != nil && errors.Is(err, context.Canceled) {
		// Client went away; the turn was discarded without side effects.
		return
	}
	respondJSON(w, http.StatusOK, mapper.ToMessageDTO(msg))
}

// @Summary Confirm a pending action
// @Description Approve the pending action and execute its command
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param resolution body domain.ResolvePendingRequest true "Message to confirm"
// @Success 200 {object} domain.CommandResponse
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /sessions/{id}/confirm [post]
func (h *SessionHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	s, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	messageID, ok := h.parseResolution(w, r)
	if !ok {
		return
	}

	user := auth.MustFromContext(r.Context())
	msg, result, err := h.engine.Confirm(r.Context(), s, messageID, *user)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrMessageNotFound):
			respondWithError(w, http.StatusNotFound, "Message not found")
		case errors.Is(err, session.ErrIllegalTransition):
			respondWithError(w, http.StatusBadRequest, "Message has no pending action")
		default:
			// Dispatch failures were already recorded in the conversation.
			respondJSON(w, http.StatusOK, domain.CommandResponse{Success: false, Error: err.Error()})
		}
		return
	}

	resp := domain.CommandResponse{Success: true}
	if result != nil {
		resp.Message = result.Message
		resp.Data = result.Data
	} else if msg != nil {
		// Duplicate confirm on an already-resolved message.
		resp.Message = "Already handled"
	}
	respondJSON(w, http.StatusOK, resp)
}

// @Summary Reject a pending action
// @Description Discard the pending action without executing anything
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param resolution body domain.ResolvePendingRequest true "Message to reject"
// @Success 200 {object} domain.MessageDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /sessions/{id}/reject [post]
func (h *SessionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	s, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	messageID, ok := h.parseResolution(w, r)
	if !ok {
		return
	}

	msg, err := h.engine.Reject(s, messageID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrMessageNotFound):
			respondWithError(w, http.StatusNotFound, "Message not found")
		case errors.Is(err, session.ErrIllegalTransition):
			respondWithError(w, http.StatusBadRequest, "Message has no pending action")
		default:
			respondWithError(w, http.StatusInternalServerError, "Could not reject the action")
		}
		return
	}
	respondJSON(w, http.StatusOK, mapper.ToMessageDTO(msg))
}

func (h *SessionHandler) loadSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid session ID")
		return nil, false
	}

	user := auth.MustFromContext(r.Context())
	s, err := h.sessions.Get(id, user.UserID)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Session not found")
		return nil, false
	}
	return s, true
}

func (h *SessionHandler) parseResolution(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	var req domain.ResolvePendingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return uuid.Nil, false
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return uuid.Nil, false
	}

	messageID, err := uuid.Parse(req.MessageID)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid message ID")
		return uuid.Nil, false
	}
	return messageID, true
}
