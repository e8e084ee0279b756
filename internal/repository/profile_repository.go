package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lumen-crm/assistant-api/internal/domain"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// GetByCustomerID returns the customer's profile or gorm.ErrRecordNotFound.
func (r *ProfileRepository) GetByCustomerID(ctx context.Context, customerID uuid.UUID) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ExistsForCustomer reports whether the customer already has a profile.
func (r *ProfileRepository) ExistsForCustomer(ctx context.Context, customerID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Profile{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error
	return count > 0, err
}

func (r *ProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *ProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Profile{}, "id = ?", id).Error
}
