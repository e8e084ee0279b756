package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumen-crm/assistant-api/internal/auth"
	"github.com/lumen-crm/assistant-api/internal/domain"
	"gorm.io/gorm"
)

func (d *Dispatcher) createProfile(ctx context.Context, fields Fields, user auth.UserContext) (*Result, error) {
	customerName, _ := fields.String("customerName")
	customer, err := d.resolveCustomer(ctx, customerName)
	if err != nil {
		return nil, err
	}

	exists, err := d.profileRepo.ExistsForCustomer(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("checking for existing profile: %w", err)
	}
	if exists {
		return nil, NewDuplicateProfile(customer.Name)
	}

	profile := &domain.Profile{
		CustomerID:  customer.ID,
		CreatedByID: user.UserID,
		UpdatedByID: user.UserID,
	}
	applyProfileFields(profile, fields)

	if err := d.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("creating profile: %w", err)
	}
	return &Result{
		Message: fmt.Sprintf("Created a profile for %s", customer.Name),
		Data:    profile,
	}, nil
}

func (d *Dispatcher) updateProfile(ctx context.Context, fields Fields, user auth.UserContext) (*Result, error) {
	customerName, _ := fields.String("customerName")
	customer, err := d.resolveCustomer(ctx, customerName)
	if err != nil {
		return nil, err
	}

	profile, err := d.profileRepo.GetByCustomerID(ctx, customer.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewEntityNotFound("profile", customer.Name)
		}
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	applyProfileFields(profile, fields)
	profile.UpdatedByID = user.UserID

	if err := d.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	return &Result{
		Message: fmt.Sprintf("Updated %s's profile", customer.Name),
		Data:    profile,
	}, nil
}

func applyProfileFields(profile *domain.Profile, fields Fields) {
	if techStack, ok := fields.String("techStack"); ok {
		profile.TechStack = techStack
	}
	if painPoints, ok := fields.StringSlice("painPoints"); ok {
		profile.PainPoints = painPoints
	}
	if goals, ok := fields.StringSlice("goals"); ok {
		profile.Goals = goals
	}
	if decisionProcess, ok := fields.String("decisionProcess"); ok {
		profile.DecisionProcess = decisionProcess
	}
	if currentVendors, ok := fields.String("currentVendors"); ok {
		profile.CurrentVendors = currentVendors
	}
}
