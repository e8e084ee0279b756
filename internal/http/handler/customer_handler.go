package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lumen-crm/assistant-api/internal/domain"
	"github.com/lumen-crm/assistant-api/internal/mapper"
	"github.com/lumen-crm/assistant-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CustomerHandler serves the read surface for customers. Mutations go
// through the command engine, not through REST verbs.
type CustomerHandler struct {
	customerRepo    *repository.CustomerRepository
	contactRepo     *repository.ContactRepository
	noteRepo        *repository.NoteRepository
	opportunityRepo *repository.OpportunityRepository
	logger          *zap.Logger
}

func NewCustomerHandler(
	customerRepo *repository.CustomerRepository,
	contactRepo *repository.ContactRepository,
	noteRepo *repository.NoteRepository,
	opportunityRepo *repository.OpportunityRepository,
	logger *zap.Logger,
) *CustomerHandler {
	return &CustomerHandler{
		customerRepo:    customerRepo,
		contactRepo:     contactRepo,
		noteRepo:        noteRepo,
		opportunityRepo: opportunityRepo,
		logger:          logger,
	}
}

// @Summary List customers
// @Description List customers with optional name search
// @Tags Customers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Param search query string false "Filter by name or industry"
// @Success 200 {object} domain.PaginatedResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /customers [get]
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if pageSize < 1 {
		pageSize = 20
	}
	search := r.URL.Query().Get("search")

	customers, total, err := h.customerRepo.List(r.Context(), page, pageSize, search)
	if err != nil {
		h.logger.Error("Failed to list customers", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list customers")
		return
	}

	dtos := make([]domain.CustomerDTO, 0, len(customers))
	for i := range customers {
		dtos = append(dtos, mapper.ToCustomerDTO(&customers[i], 0, 0, 0))
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	respondJSON(w, http.StatusOK, domain.PaginatedResponse{
		Data:       dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

// @Summary Get customer
// @Description Get one customer with dependent record counts
// @Tags Customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} domain.CustomerDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.loadCustomer(w, r)
	if !ok {
		return
	}

	contacts, err := h.contactRepo.GetByCustomerID(r.Context(), customer.ID)
	if err != nil {
		h.logger.Error("Failed to count contacts", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to load customer")
		return
	}
	noteCount, err := h.noteRepo.CountByCustomerID(r.Context(), customer.ID)
	if err != nil {
		h.logger.Error("Failed to count notes", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to load customer")
		return
	}
	opportunities, err := h.opportunityRepo.GetByCustomerID(r.Context(), customer.ID)
	if err != nil {
		h.logger.Error("Failed to count opportunities", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to load customer")
		return
	}

	respondJSON(w, http.StatusOK, mapper.ToCustomerDTO(customer, len(contacts), noteCount, len(opportunities)))
}

// @Summary List customer notes
// @Description List a customer's notes, most recent first
// @Tags Customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {array} domain.NoteDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /customers/{id}/notes [get]
func (h *CustomerHandler) GetNotes(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.loadCustomer(w, r)
	if !ok {
		return
	}

	notes, err := h.noteRepo.GetByCustomerID(r.Context(), customer.ID)
	if err != nil {
		h.logger.Error("Failed to list notes", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list notes")
		return
	}

	dtos := make([]domain.NoteDTO, 0, len(notes))
	for i := range notes {
		dtos = append(dtos, mapper.ToNoteDTO(&notes[i], customer.Name))
	}
	respondJSON(w, http.StatusOK, dtos)
}

// @Summary List customer opportunities
// @Description List a customer's opportunities, newest first
// @Tags Customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {array} domain.OpportunityDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /customers/{id}/opportunities [get]
func (h *CustomerHandler) GetOpportunities(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.loadCustomer(w, r)
	if !ok {
		return
	}

	opportunities, err := h.opportunityRepo.GetByCustomerID(r.Context(), customer.ID)
	if err != nil {
		h.logger.Error("Failed to list opportunities", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list opportunities")
		return
	}

	dtos := make([]domain.OpportunityDTO, 0, len(opportunities))
	for i := range opportunities {
		dtos = append(dtos, mapper.ToOpportunityDTO(&opportunities[i], customer.Name, nil))
	}
	respondJSON(w, http.StatusOK, dtos)
}

func (h *CustomerHandler) loadCustomer(w http.ResponseWriter, r *http.Request) (*domain.Customer, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid customer ID")
		return nil, false
	}

	customer, err := h.customerRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(w, http.StatusNotFound, "Customer not found")
		} else {
			h.logger.Error("Failed to load customer", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to load customer")
		}
		return nil, false
	}
	return customer, true
}
