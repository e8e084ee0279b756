// Package mapper converts domain models and session state into their
// transport DTO forms.
package mapper

import (
	"github.com/lumen-crm/assistant-api/internal/domain"
	"github.com/lumen-crm/assistant-api/internal/session"
)

// ToCustomerDTO converts Customer to CustomerDTO
func ToCustomerDTO(customer *domain.Customer, contactCount, noteCount, opportunityCount int) domain.CustomerDTO {
	return domain.CustomerDTO{
		ID:               customer.ID,
		Name:             customer.Name,
		Industry:         customer.Industry,
		Website:          customer.Website,
		Status:           string(customer.Status),
		Tags:             customer.Tags,
		ContactCount:     contactCount,
		NoteCount:        noteCount,
		OpportunityCount: opportunityCount,
		CreatedByName:    customer.CreatedByName,
		CreatedAt:        customer.CreatedAt,
		UpdatedAt:        customer.UpdatedAt,
	}
}

// ToNoteDTO converts Note to NoteDTO
func ToNoteDTO(note *domain.Note, customerName string) domain.NoteDTO {
	return domain.NoteDTO{
		ID:            note.ID,
		CustomerID:    note.CustomerID,
		CustomerName:  customerName,
		Body:          note.Body,
		NoteDate:      note.NoteDate.Format("2006-01-02"),
		Confidence:    string(note.Confidence),
		NextSteps:     note.NextSteps,
		CreatedByName: note.CreatedByName,
		CreatedAt:     note.CreatedAt,
	}
}

// ToOpportunityDTO converts Opportunity to OpportunityDTO
func ToOpportunityDTO(opportunity *domain.Opportunity, customerName string, history []domain.StageTransition) domain.OpportunityDTO {
	dto := domain.OpportunityDTO{
		ID:                opportunity.ID,
		CustomerID:        opportunity.CustomerID,
		CustomerName:      customerName,
		Name:              opportunity.Name,
		Description:       opportunity.Description,
		CurrentStage:      string(opportunity.CurrentStage),
		StagePosition:     opportunity.CurrentStage.Position(),
		EstimatedValue:    opportunity.EstimatedValue,
		Currency:          opportunity.Currency,
		CloseProbability:  opportunity.CloseProbability,
		ExpectedCloseDate: opportunity.ExpectedCloseDate,
		ActualCloseDate:   opportunity.ActualCloseDate,
		Priority:          string(opportunity.Priority),
		Type:              opportunity.Type,
		CompetitorNotes:   opportunity.CompetitorNotes,
		NextSteps:         opportunity.NextSteps,
		CreatedAt:         opportunity.CreatedAt,
		UpdatedAt:         opportunity.UpdatedAt,
	}

	for _, product := range opportunity.Products {
		label := product.Name
		if product.Version != "" {
			label += " " + product.Version
		}
		dto.Products = append(dto.Products, label)
	}
	for i := range history {
		dto.StageHistory = append(dto.StageHistory, ToStageTransitionDTO(&history[i]))
	}
	return dto
}

// ToStageTransitionDTO converts StageTransition to StageTransitionDTO
func ToStageTransitionDTO(transition *domain.StageTransition) domain.StageTransitionDTO {
	dto := domain.StageTransitionDTO{
		ID:            transition.ID,
		ToStage:       string(transition.ToStage),
		ChangedByID:   transition.ChangedByID,
		ChangedByName: transition.ChangedByName,
		Notes:         transition.Notes,
		DurationDays:  transition.DurationDays,
		ChangedAt:     transition.ChangedAt,
	}
	if transition.FromStage != nil {
		from := string(*transition.FromStage)
		dto.FromStage = &from
	}
	return dto
}

// ToMessageDTO converts a conversation message to MessageDTO
func ToMessageDTO(msg *session.Message) domain.MessageDTO {
	dto := domain.MessageDTO{
		ID:        msg.ID.String(),
		Role:      string(msg.Role),
		Content:   msg.Content,
		Timestamp: msg.Timestamp,
	}
	if msg.Status != nil {
		dto.Status = string(*msg.Status)
	}
	if msg.Extraction != nil {
		dto.Extraction = &domain.ExtractionDTO{
			Intent:        msg.Extraction.Intent,
			Confidence:    msg.Extraction.Confidence,
			ExtractedData: msg.Extraction.ExtractedData,
			TemplateID:    msg.Extraction.TemplateID,
			Entity:        msg.Extraction.Entity(),
			Operation:     msg.Extraction.Operation(),
			Warnings:      msg.Extraction.Warnings,
		}
	}
	return dto
}

// ToSessionDTO converts a session to SessionDTO
func ToSessionDTO(s *session.Session) domain.SessionDTO {
	dto := domain.SessionDTO{
		ID:             s.ID.String(),
		Messages:       []domain.MessageDTO{},
		CreatedAt:      s.CreatedAt(),
		LastActivityAt: s.LastActivity(),
	}
	for _, msg := range s.Messages() {
		dto.Messages = append(dto.Messages, ToMessageDTO(msg))
	}
	if pending := s.Pending(); pending != nil {
		dto.PendingMessageID = pending.ID.String()
	}
	return dto
}
