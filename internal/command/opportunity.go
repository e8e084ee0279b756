package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/lumen-crm/assistant-api/internal/auth"
	"github.com/lumen-crm/assistant-api/internal/domain"
)

func (d *Dispatcher) createOpportunity(ctx context.Context, fields Fields, user auth.UserContext) (*Result, error) {
	customerName, _ := fields.String("customerName")
	customer, err := d.resolveCustomer(ctx, customerName)
	if err != nil {
		return nil, err
	}

	name, _ := fields.String("name")
	opportunity := &domain.Opportunity{
		CustomerID:    customer.ID,
		Name:          name,
		CurrentStage:  domain.StagePlan,
		Currency:      "USD",
		Priority:      domain.PriorityMedium,
		CreatedByID:   user.UserID,
		CreatedByName: user.DisplayName,
		UpdatedByID:   user.UserID,
	}
	if description, ok := fields.String("description"); ok {
		opportunity.Description = description
	}
	if value, ok := fields.Float("estimatedValue"); ok {
		opportunity.EstimatedValue = value
	}
	if currency, ok := fields.String("currency"); ok {
		opportunity.Currency = strings.ToUpper(currency)
	}
	if probability, ok := fields.Int("closeProbability"); ok {
		if probability < 0 || probability > 100 {
			return nil, NewInvalidInput(fmt.Sprintf("close probability %d must be between 0 and 100", probability))
		}
		opportunity.CloseProbability = probability
	}
	if date, ok := fields.Date("expectedCloseDate"); ok {
		opportunity.ExpectedCloseDate = &date
	}
	if priority, ok := fields.String("priority"); ok {
		p := domain.OpportunityPriority(strings.ToLower(priority))
		switch p {
		case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh:
			opportunity.Priority = p
		default:
			return nil, NewInvalidInput(fmt.Sprintf("priority %q is not one of low, medium or high", priority))
		}
	}
	if oppType, ok := fields.String("type"); ok {
		opportunity.Type = oppType
	}
	if nextSteps, ok := fields.String("nextSteps"); ok {
		opportunity.NextSteps = nextSteps
	}

	if err := d.opportunityRepo.Create(ctx, opportunity); err != nil {
		return nil, fmt.Errorf("creating opportunity: %w", err)
	}
	if err := d.pipeline.RecordCreation(ctx, opportunity, user); err != nil {
		return nil, fmt.Errorf("recording creation transition: %w", err)
	}

	return &Result{
		Message: fmt.Sprintf("Created opportunity %s for %s in stage %s", opportunity.Name, customer.Name, opportunity.CurrentStage),
		Data:    opportunity,
	}, nil
}

func (d *Dispatcher) updateOpportunity(ctx context.Context, fields Fields, user auth.UserContext) (*Result, error) {
	customerName, _ := fields.String("customerName")
	customer, err := d.resolveCustomer(ctx, customerName)
	if err != nil {
		return nil, err
	}
	opportunityName, _ := fields.String("opportunityName")
	opportunity, err := d.resolveOpportunity(ctx, customer, opportunityName)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"updated_by_id": user.UserID}
	if name, ok := fields.String("name"); ok {
		updates["name"] = name
	}
	if description, ok := fields.String("description"); ok {
		updates["description"] = description
	}
	if value, ok := fields.Float("estimatedValue"); ok {
		updates["estimated_value"] = value
	}
	if currency, ok := fields.String("currency"); ok {
		updates["currency"] = strings.ToUpper(currency)
	}
	if probability, ok := fields.Int("closeProbability"); ok {
		if probability < 0 || probability > 100 {
			return nil, NewInvalidInput(fmt.Sprintf("close probability %d must be between 0 and 100", probability))
		}
		updates["close_probability"] = probability
	}
	if date, ok := fields.Date("expectedCloseDate"); ok {
		updates["expected_close_date"] = date
	}
	if priority, ok := fields.String("priority"); ok {
		p := domain.OpportunityPriority(strings.ToLower(priority))
		switch p {
		case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh:
			updates["priority"] = p
		default:
			return nil, NewInvalidInput(fmt.Sprintf("priority %q is not one of low, medium or high", priority))
		}
	}
	if oppType, ok := fields.String("type"); ok {
		updates["type"] = oppType
	}
	if competitorNotes, ok := fields.String("competitorNotes"); ok {
		updates["competitor_notes"] = competitorNotes
	}
	if nextSteps, ok := fields.String("nextSteps"); ok {
		updates["next_steps"] = nextSteps
	}

	if err := d.opportunityRepo.UpdateFields(ctx, opportunity.ID, updates); err != nil {
		return nil, fmt.Errorf("updating opportunity: %w", err)
	}
	return &Result{
		Message: fmt.Sprintf("Updated opportunity %s", opportunity.Name),
		Data:    map[string]interface{}{"id": opportunity.ID},
	}, nil
}

// changeOpportunityStage resolves both the customer and the opportunity by
// name, then delegates the transition to the stage pipeline.
func (d *Dispatcher) changeOpportunityStage(ctx context.Context, fields Fields, user auth.UserContext) (*Result, error) {
	customerName, _ := fields.String("customerName")
	customer, err := d.resolveCustomer(ctx, customerName)
	if err != nil {
		return nil, err
	}
	opportunityName, _ := fields.String("opportunityName")
	opportunity, err := d.resolveOpportunity(ctx, customer, opportunityName)
	if err != nil {
		return nil, err
	}

	rawStage, _ := fields.String("newStage")
	newStage, ok := parseStage(rawStage)
	if !ok {
		return nil, NewInvalidInput(fmt.Sprintf("%q is not a pipeline stage", rawStage))
	}

	if newStage == opportunity.CurrentStage {
		return &Result{
			Message: fmt.Sprintf("%s is already in %s, nothing to do", opportunity.Name, newStage),
			Data:    opportunity,
		}, nil
	}

	notes, _ := fields.String("notes")
	fromStage := opportunity.CurrentStage
	updated, err := d.pipeline.ChangeStage(ctx, opportunity, newStage, notes, user)
	if err != nil {
		return nil, fmt.Errorf("changing stage: %w", err)
	}

	return &Result{
		Message: fmt.Sprintf("Moved %s from %s to %s", updated.Name, fromStage, newStage),
		Data:    updated,
	}, nil
}

func (d *Dispatcher) listOpportunities(ctx context.Context, fields Fields, _ auth.UserContext) (*Result, error) {
	customerName, _ := fields.String("customerName")
	customer, err := d.resolveCustomer(ctx, customerName)
	if err != nil {
		return nil, err
	}

	opportunities, err := d.opportunityRepo.GetByCustomerID(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("listing opportunities: %w", err)
	}
	return &Result{
		Message: fmt.Sprintf("%s has %d opportunities", customer.Name, len(opportunities)),
		Data:    opportunities,
	}, nil
}
