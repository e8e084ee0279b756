package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumen-crm/assistant-api/internal/auth"
	"github.com/lumen-crm/assistant-api/internal/domain"
	"gorm.io/gorm"
)

// createPartner attaches a partner organization to a customer, reusing an
// existing partner with the same name rather than duplicating it.
func (d *Dispatcher) createPartner(ctx context.Context, fields Fields, user auth.UserContext) (*Result, error) {
	customerName, _ := fields.String("customerName")
	customer, err := d.resolveCustomer(ctx, customerName)
	if err != nil {
		return nil, err
	}

	name, _ := fields.String("name")
	existing, err := d.partnerRepo.FindByCustomerAndName(ctx, customer.ID, name)
	if err == nil {
		return &Result{
			Message: fmt.Sprintf("%s is already a partner of %s, reusing it", existing.Name, customer.Name),
			Data:    existing,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking for existing partner: %w", err)
	}

	partner := &domain.Partner{
		CustomerID:  customer.ID,
		Name:        name,
		CreatedByID: user.UserID,
	}
	if role, ok := fields.String("role"); ok {
		partner.Type = role
	}
	if contactInfo, ok := fields.String("contactInfo"); ok {
		partner.ContactInfo = contactInfo
	}

	if err := d.partnerRepo.Create(ctx, partner); err != nil {
		return nil, fmt.Errorf("creating partner: %w", err)
	}
	return &Result{
		Message: fmt.Sprintf("Added %s as a partner of %s", partner.Name, customer.Name),
		Data:    partner,
	}, nil
}
