package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumen-crm/assistant-api/internal/auth"
	"github.com/lumen-crm/assistant-api/internal/domain"
	"gorm.io/gorm"
)

// createContact attaches a person to a customer, reusing an existing
// contact with the same name rather than duplicating it.
func (d *Dispatcher) createContact(ctx context.Context, fields Fields, user auth.UserContext) (*Result, error) {
	customerName, _ := fields.String("customerName")
	customer, err := d.resolveCustomer(ctx, customerName)
	if err != nil {
		return nil, err
	}

	name, _ := fields.String("name")
	existing, err := d.contactRepo.FindByCustomerAndName(ctx, customer.ID, name)
	if err == nil {
		return &Result{
			Message: fmt.Sprintf("%s is already a contact at %s, reusing it", existing.Name, customer.Name),
			Data:    existing,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking for existing contact: %w", err)
	}

	contact := &domain.Contact{
		CustomerID:  customer.ID,
		Name:        name,
		CreatedByID: user.UserID,
	}
	if title, ok := fields.String("title"); ok {
		contact.Role = title
	}
	if email, ok := fields.String("email"); ok {
		contact.Email = email
	}
	if phone, ok := fields.String("phone"); ok {
		contact.Phone = phone
	}

	if err := d.contactRepo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("creating contact: %w", err)
	}
	return &Result{
		Message: fmt.Sprintf("Added %s as a contact at %s", contact.Name, customer.Name),
		Data:    contact,
	}, nil
}
