package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/lumen-crm/assistant-api/internal/domain"
	"gorm.io/gorm"
)

type PartnerRepository struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) *PartnerRepository {
	return &PartnerRepository{db: db}
}

func (r *PartnerRepository) Create(ctx context.Context, partner *domain.Partner) error {
	return r.db.WithContext(ctx).Create(partner).Error
}

func (r *PartnerRepository) GetByCustomerID(ctx context.Context, customerID uuid.UUID) ([]domain.Partner, error) {
	var partners []domain.Partner
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("name ASC").
		Find(&partners).Error
	return partners, err
}

// FindByCustomerAndName returns an existing partner with the same name for
// the customer, ignoring case, or gorm.ErrRecordNotFound.
func (r *PartnerRepository) FindByCustomerAndName(ctx context.Context, customerID uuid.UUID, name string) (*domain.Partner, error) {
	var partner domain.Partner
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND LOWER(name) = ?", customerID, strings.ToLower(name)).
		First(&partner).Error
	if err != nil {
		return nil, err
	}
	return &partner, nil
}

func (r *PartnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Partner{}, "id = ?", id).Error
}
