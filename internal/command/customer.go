package command

import (
	"context"
	"fmt"

	"github.com/lumen-crm/assistant-api/internal/auth"
	"github.com/lumen-crm/assistant-api/internal/domain"
)

func (d *Dispatcher) createCustomer(ctx context.Context, fields Fields, user auth.UserContext) (*Result, error) {
	name, _ := fields.String("name")

	customer := &domain.Customer{
		Name:          name,
		Status:        domain.CustomerStatusActive,
		CreatedByID:   user.UserID,
		CreatedByName: user.DisplayName,
		UpdatedByID:   user.UserID,
	}
	if industry, ok := fields.String("industry"); ok {
		customer.Industry = industry
	}
	if website, ok := fields.String("website"); ok {
		customer.Website = website
	}
	if description, ok := fields.String("description"); ok {
		customer.Description = description
	}
	if status, ok := fields.String("status"); ok {
		s := domain.CustomerStatus(status)
		switch s {
		case domain.CustomerStatusActive, domain.CustomerStatusProspect, domain.CustomerStatusChurned:
			customer.Status = s
		default:
			return nil, NewInvalidInput(fmt.Sprintf("status %q is not one of active, prospect or churned", status))
		}
	}
	if tags, ok := fields.StringSlice("tags"); ok {
		customer.Tags = tags
	}

	if err := d.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}
	return &Result{
		Message: fmt.Sprintf("Created customer %s", customer.Name),
		Data:    customer,
	}, nil
}

func (d *Dispatcher) updateCustomer(ctx context.Context, fields Fields, user auth.UserContext) (*Result, error) {
	customerName, _ := fields.String("customerName")
	customer, err := d.resolveCustomer(ctx, customerName)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"updated_by_id": user.UserID}
	if name, ok := fields.String("name"); ok {
		updates["name"] = name
	}
	if industry, ok := fields.String("industry"); ok {
		updates["industry"] = industry
	}
	if website, ok := fields.String("website"); ok {
		updates["website"] = website
	}
	if description, ok := fields.String("description"); ok {
		updates["description"] = description
	}
	if status, ok := fields.String("status"); ok {
		s := domain.CustomerStatus(status)
		switch s {
		case domain.CustomerStatusActive, domain.CustomerStatusProspect, domain.CustomerStatusChurned:
			updates["status"] = s
		default:
			return nil, NewInvalidInput(fmt.Sprintf("status %q is not one of active, prospect or churned", status))
		}
	}

	if err := d.customerRepo.UpdateFields(ctx, customer.ID, updates); err != nil {
		return nil, fmt.Errorf("updating customer: %w", err)
	}
	return &Result{
		Message: fmt.Sprintf("Updated customer %s", customer.Name),
		Data:    map[string]interface{}{"id": customer.ID},
	}, nil
}

// deleteCustomer removes only the customer record. Notes and opportunities
// referencing it are intentionally left behind so a one-line chat command
// cannot silently destroy history; cleanup of dependents is the caller's job.
func (d *Dispatcher) deleteCustomer(ctx context.Context, fields Fields, user auth.UserContext) (*Result, error) {
	customerName, _ := fields.String("customerName")
	customer, err := d.resolveCustomer(ctx, customerName)
	if err != nil {
		return nil, err
	}

	if err := d.customerRepo.Delete(ctx, customer.ID); err != nil {
		return nil, fmt.Errorf("deleting customer: %w", err)
	}
	return &Result{
		Message: fmt.Sprintf("Deleted customer %s. Their notes and opportunities were kept and can be cleaned up separately.", customer.Name),
	}, nil
}

func (d *Dispatcher) searchCustomers(ctx context.Context, fields Fields, _ auth.UserContext) (*Result, error) {
	query, _ := fields.String("query")
	customers, err := d.customerRepo.SearchByName(ctx, query, 25)
	if err != nil {
		return nil, fmt.Errorf("searching customers: %w", err)
	}
	return &Result{
		Message: fmt.Sprintf("Found %d customers matching %q", len(customers), query),
		Data:    customers,
	}, nil
}

func (d *Dispatcher) listCustomers(ctx context.Context, _ Fields, _ auth.UserContext) (*Result, error) {
	customers, _, err := d.customerRepo.List(ctx, 1, 100, "")
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	return &Result{
		Message: fmt.Sprintf("You have %d customers", len(customers)),
		Data:    customers,
	}, nil
}
