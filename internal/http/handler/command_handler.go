package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lumen-crm/assistant-api/internal/auth"
	"github.com/lumen-crm/assistant-api/internal/command"
	"github.com/lumen-crm/assistant-api/internal/domain"
	"go.uber.org/zap"
)

// CommandHandler exposes the single command entry point. It is the boundary
// where dispatcher errors stop: every failure becomes a success=false
// envelope, never a propagated error.
type CommandHandler struct {
	dispatcher *command.Dispatcher
	logger     *zap.Logger
}

func NewCommandHandler(dispatcher *command.Dispatcher, logger *zap.Logger) *CommandHandler {
	return &CommandHandler{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// @Summary Execute a command
// @Description Validate and execute a structured command against an entity
// @Tags Commands
// @Accept json
// @Produce json
// @Param command body domain.CommandRequest true "Command to execute"
// @Success 200 {object} domain.CommandResponse
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /commands [post]
func (h *CommandHandler) Execute(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req domain.CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	result, err := h.dispatcher.Dispatch(r.Context(), req.Entity, req.Operation, req.ExtractedData, *user)
	if err != nil {
		resp := domain.CommandResponse{Success: false, Error: err.Error()}
		if cmdErr := command.AsError(err); cmdErr != nil {
			resp.ErrorKind = string(cmdErr.Kind)
		} else {
			h.logger.Error("Command execution failed",
				zap.String("entity", req.Entity),
				zap.String("operation", req.Operation),
				zap.Error(err),
			)
			resp.Error = "The command could not be completed"
		}
		respondJSON(w, http.StatusOK, resp)
		return
	}

	respondJSON(w, http.StatusOK, domain.CommandResponse{
		Success: true,
		Message: result.Message,
		Data:    result.Data,
	})
}
