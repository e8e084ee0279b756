package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/lumen-crm/assistant-api/internal/domain"
)

// resolveCustomer finds the customer a display name refers to. Exact
// case-insensitive matches win; otherwise a unique case-insensitive
// substring match is accepted. Zero matches is EntityNotFound, several
// substring matches is AmbiguousTarget. Resolution never creates records.
func (d *Dispatcher) resolveCustomer(ctx context.Context, name string) (*domain.Customer, error) {
	exact, err := d.customerRepo.GetByNameExact(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("looking up customer %q: %w", name, err)
	}
	if len(exact) == 1 {
		return &exact[0], nil
	}
	if len(exact) > 1 {
		return nil, NewAmbiguousTarget("customer", name, len(exact))
	}

	matches, err := d.customerRepo.SearchByName(ctx, name, 10)
	if err != nil {
		return nil, fmt.Errorf("searching customer %q: %w", name, err)
	}
	switch len(matches) {
	case 0:
		return nil, NewEntityNotFound("customer", name)
	case 1:
		return &matches[0], nil
	default:
		return nil, NewAmbiguousTarget("customer", name, len(matches))
	}
}

// resolveOpportunity finds an opportunity by name within one customer's
// opportunities, using the same exact-then-substring strategy.
func (d *Dispatcher) resolveOpportunity(ctx context.Context, customer *domain.Customer, name string) (*domain.Opportunity, error) {
	exact, err := d.opportunityRepo.GetByCustomerAndNameExact(ctx, customer.ID, name)
	if err != nil {
		return nil, fmt.Errorf("looking up opportunity %q: %w", name, err)
	}
	if len(exact) == 1 {
		return &exact[0], nil
	}
	if len(exact) > 1 {
		return nil, NewAmbiguousTarget("opportunity", name, len(exact))
	}

	matches, err := d.opportunityRepo.SearchByCustomerAndName(ctx, customer.ID, name)
	if err != nil {
		return nil, fmt.Errorf("searching opportunity %q: %w", name, err)
	}
	switch len(matches) {
	case 0:
		return nil, NewEntityNotFound("opportunity", name)
	case 1:
		return &matches[0], nil
	default:
		return nil, NewAmbiguousTarget("opportunity", name, len(matches))
	}
}

// parseStage maps a user-supplied stage name onto the closed stage set,
// tolerating case differences.
func parseStage(s string) (domain.Stage, bool) {
	for _, stage := range domain.OrderedStages {
		if strings.EqualFold(string(stage), strings.TrimSpace(s)) {
			return stage, true
		}
	}
	return "", false
}
