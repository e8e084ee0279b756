package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lumen-crm/assistant-api/internal/domain"
	"github.com/lumen-crm/assistant-api/internal/mapper"
	"github.com/lumen-crm/assistant-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OpportunityHandler serves the read surface for opportunities and their
// stage history.
type OpportunityHandler struct {
	opportunityRepo  *repository.OpportunityRepository
	customerRepo     *repository.CustomerRepository
	stageHistoryRepo *repository.StageHistoryRepository
	logger           *zap.Logger
}

func NewOpportunityHandler(
	opportunityRepo *repository.OpportunityRepository,
	customerRepo *repository.CustomerRepository,
	stageHistoryRepo *repository.StageHistoryRepository,
	logger *zap.Logger,
) *OpportunityHandler {
	return &OpportunityHandler{
		opportunityRepo:  opportunityRepo,
		customerRepo:     customerRepo,
		stageHistoryRepo: stageHistoryRepo,
		logger:           logger,
	}
}

// @Summary Get opportunity
// @Description Get one opportunity with its full stage history
// @Tags Opportunities
// @Produce json
// @Param id path string true "Opportunity ID"
// @Success 200 {object} domain.OpportunityDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /opportunities/{id} [get]
func (h *OpportunityHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	opportunity, ok := h.loadOpportunity(w, r)
	if !ok {
		return
	}

	history, err := h.stageHistoryRepo.GetByOpportunityID(r.Context(), opportunity.ID)
	if err != nil {
		h.logger.Error("Failed to load stage history", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to load opportunity")
		return
	}

	customerName := ""
	if customer, err := h.customerRepo.GetByID(r.Context(), opportunity.CustomerID); err == nil {
		customerName = customer.Name
	}

	respondJSON(w, http.StatusOK, mapper.ToOpportunityDTO(opportunity, customerName, history))
}

// @Summary Get stage history
// @Description Get an opportunity's stage transitions, oldest first
// @Tags Opportunities
// @Produce json
// @Param id path string true "Opportunity ID"
// @Success 200 {array} domain.StageTransitionDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /opportunities/{id}/history [get]
func (h *OpportunityHandler) GetStageHistory(w http.ResponseWriter, r *http.Request) {
	opportunity, ok := h.loadOpportunity(w, r)
	if !ok {
		return
	}

	history, err := h.stageHistoryRepo.GetByOpportunityID(r.Context(), opportunity.ID)
	if err != nil {
		h.logger.Error("Failed to load stage history", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to load stage history")
		return
	}

	dtos := make([]domain.StageTransitionDTO, 0, len(history))
	for i := range history {
		dtos = append(dtos, mapper.ToStageTransitionDTO(&history[i]))
	}
	respondJSON(w, http.StatusOK, dtos)
}

// @Summary List pipeline stages
// @Description List the nine pipeline stages in display order
// @Tags Opportunities
// @Produce json
// @Success 200 {array} string
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /opportunities/stages [get]
func (h *OpportunityHandler) ListStages(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.OrderedStages)
}

func (h *OpportunityHandler) loadOpportunity(w http.ResponseWriter, r *http.Request) (*domain.Opportunity, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid opportunity ID")
		return nil, false
	}

	opportunity, err := h.opportunityRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(w, http.StatusNotFound, "Opportunity not found")
		} else {
			h.logger.Error("Failed to load opportunity", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to load opportunity")
		}
		return nil, false
	}
	return opportunity, true
}
