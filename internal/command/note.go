package command

import (
	"context"
	"fmt"
	"time"

	"github.com/lumen-crm/assistant-api/internal/auth"
	"github.com/lumen-crm/assistant-api/internal/domain"
)

func (d *Dispatcher) createNote(ctx context.Context, fields Fields, user auth.UserContext) (*Result, error) {
	customerName, _ := fields.String("customerName")
	customer, err := d.resolveCustomer(ctx, customerName)
	if err != nil {
		return nil, err
	}

	body, _ := fields.String("notes")
	note := &domain.Note{
		CustomerID:    customer.ID,
		Body:          body,
		NoteDate:      time.Now().Truncate(24 * time.Hour),
		CreatedByID:   user.UserID,
		CreatedByName: user.DisplayName,
		UpdatedByID:   user.UserID,
	}
	if date, ok := fields.Date("noteDate"); ok {
		note.NoteDate = date
	}
	if confidence, ok := fields.String("confidence"); ok {
		level := domain.ConfidenceLevel(confidence)
		if !level.IsValid() {
			return nil, NewInvalidInput(fmt.Sprintf("confidence %q is not one of green, yellow or red", confidence))
		}
		note.Confidence = level
	}
	if nextSteps, ok := fields.String("nextSteps"); ok {
		note.NextSteps = nextSteps
	}

	if err := d.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}
	return &Result{
		Message: fmt.Sprintf("Added a note to %s", customer.Name),
		Data:    note,
	}, nil
}

// updateNote addresses the target note by customer and date. When several
// notes share that date the update fails rather than guessing one.
func (d *Dispatcher) updateNote(ctx context.Context, fields Fields, user auth.UserContext) (*Result, error) {
	customerName, _ := fields.String("customerName")
	customer, err := d.resolveCustomer(ctx, customerName)
	if err != nil {
		return nil, err
	}

	date, ok := fields.Date("noteDate")
	if !ok {
		return nil, NewInvalidInput("noteDate must be a valid date in YYYY-MM-DD form")
	}

	notes, err := d.noteRepo.GetByCustomerAndDate(ctx, customer.ID, date)
	if err != nil {
		return nil, fmt.Errorf("finding note: %w", err)
	}
	dateLabel := date.Format("2006-01-02")
	if len(notes) == 0 {
		return nil, NewEntityNotFound("note", fmt.Sprintf("%s on %s", customer.Name, dateLabel))
	}
	if len(notes) > 1 {
		return nil, NewAmbiguousTarget("note", fmt.Sprintf("%s on %s", customer.Name, dateLabel), len(notes))
	}

	note := &notes[0]
	if body, ok := fields.String("notes"); ok {
		note.Body = body
	}
	if confidence, ok := fields.String("confidence"); ok {
		level := domain.ConfidenceLevel(confidence)
		if !level.IsValid() {
			return nil, NewInvalidInput(fmt.Sprintf("confidence %q is not one of green, yellow or red", confidence))
		}
		note.Confidence = level
	}
	if nextSteps, ok := fields.String("nextSteps"); ok {
		note.NextSteps = nextSteps
	}
	note.UpdatedByID = user.UserID

	if err := d.noteRepo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("updating note: %w", err)
	}
	return &Result{
		Message: fmt.Sprintf("Updated %s's note from %s", customer.Name, dateLabel),
		Data:    note,
	}, nil
}

func (d *Dispatcher) listNotes(ctx context.Context, fields Fields, _ auth.UserContext) (*Result, error) {
	customerName, _ := fields.String("customerName")
	customer, err := d.resolveCustomer(ctx, customerName)
	if err != nil {
		return nil, err
	}

	notes, err := d.noteRepo.GetByCustomerID(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	return &Result{
		Message: fmt.Sprintf("%s has %d notes", customer.Name, len(notes)),
		Data:    notes,
	}, nil
}
