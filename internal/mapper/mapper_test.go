package mapper_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lumen-crm/assistant-api/internal/domain"
	"github.com/lumen-crm/assistant-api/internal/intent"
	"github.com/lumen-crm/assistant-api/internal/mapper"
	"github.com/lumen-crm/assistant-api/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToNoteDTO(t *testing.T) {
	note := &domain.Note{
		CustomerID: uuid.New(),
		Body:       "demo went well",
		NoteDate:   time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC),
		Confidence: domain.ConfidenceGreen,
		NextSteps:  "send POC doc",
	}

	dto := mapper.ToNoteDTO(note, "Acme Corp")
	assert.Equal(t, "Acme Corp", dto.CustomerName)
	assert.Equal(t, "2026-05-03", dto.NoteDate)
	assert.Equal(t, "green", dto.Confidence)
}

func TestToOpportunityDTO(t *testing.T) {
	fromStage := domain.StagePlan
	opportunity := &domain.Opportunity{
		CustomerID:     uuid.New(),
		Name:           "Cloud migration",
		CurrentStage:   domain.StageQualify,
		EstimatedValue: 50000,
		Currency:       "USD",
		Priority:       domain.PriorityHigh,
		Products: []domain.Product{
			{Name: "DataGrid", Version: "3.2"},
			{Name: "EdgeCache"},
		},
	}
	history := []domain.StageTransition{
		{ToStage: domain.StagePlan, DurationDays: 0},
		{FromStage: &fromStage, ToStage: domain.StageQualify, DurationDays: 11},
	}

	dto := mapper.ToOpportunityDTO(opportunity, "Acme Corp", history)
	assert.Equal(t, "Qualify", dto.CurrentStage)
	assert.Equal(t, 2, dto.StagePosition)
	assert.Equal(t, []string{"DataGrid 3.2", "EdgeCache"}, dto.Products)

	require.Len(t, dto.StageHistory, 2)
	assert.Nil(t, dto.StageHistory[0].FromStage)
	require.NotNil(t, dto.StageHistory[1].FromStage)
	assert.Equal(t, "Plan", *dto.StageHistory[1].FromStage)
	assert.Equal(t, 11, dto.StageHistory[1].DurationDays)
}

func TestToMessageDTO(t *testing.T) {
	tmpl := intent.CommandTemplate{ID: "note.create", Entity: "note", Operation: "create"}
	pending := session.StatusPending
	msg := &session.Message{
		ID:        uuid.New(),
		Role:      session.RoleAssistant,
		Content:   "Add a note to Acme Corp?",
		Timestamp: time.Now(),
		Status:    &pending,
		Extraction: &intent.Extraction{
			Intent:          "add a note to Acme",
			Confidence:      0.9,
			ExtractedData:   map[string]interface{}{"customerName": "Acme Corp"},
			MatchedTemplate: &tmpl,
			TemplateID:      tmpl.ID,
			Warnings:        []string{"date was ignored"},
		},
	}

	dto := mapper.ToMessageDTO(msg)
	assert.Equal(t, msg.ID.String(), dto.ID)
	assert.Equal(t, "assistant", dto.Role)
	assert.Equal(t, "pending", dto.Status)
	require.NotNil(t, dto.Extraction)
	assert.Equal(t, "note", dto.Extraction.Entity)
	assert.Equal(t, "create", dto.Extraction.Operation)
	assert.Equal(t, "note.create", dto.Extraction.TemplateID)
	assert.Equal(t, []string{"date was ignored"}, dto.Extraction.Warnings)
}

func TestToSessionDTO(t *testing.T) {
	s := session.NewSession("user-1")

	dto := mapper.ToSessionDTO(s)
	assert.Equal(t, s.ID.String(), dto.ID)
	assert.NotNil(t, dto.Messages)
	assert.Empty(t, dto.Messages)
	assert.Empty(t, dto.PendingMessageID)
}

func TestToCustomerDTO(t *testing.T) {
	customer := &domain.Customer{
		Name:          "Acme Corp",
		Industry:      "Manufacturing",
		Status:        domain.CustomerStatusActive,
		Tags:          []string{"enterprise"},
		CreatedByName: "Test User",
	}

	dto := mapper.ToCustomerDTO(customer, 2, 5, 1)
	assert.Equal(t, "Acme Corp", dto.Name)
	assert.Equal(t, "active", dto.Status)
	assert.Equal(t, 2, dto.ContactCount)
	assert.Equal(t, 5, dto.NoteCount)
	assert.Equal(t, 1, dto.OpportunityCount)
	assert.Equal(t, []string{"enterprise"}, dto.Tags)
}
