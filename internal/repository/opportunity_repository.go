package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/lumen-crm/assistant-api/internal/domain"
	"gorm.io/gorm"
)

type OpportunityRepository struct {
	db *gorm.DB
}

func NewOpportunityRepository(db *gorm.DB) *OpportunityRepository {
	return &OpportunityRepository{db: db}
}

func (r *OpportunityRepository) Create(ctx context.Context, opportunity *domain.Opportunity) error {
	return r.db.WithContext(ctx).Create(opportunity).Error
}

func (r *OpportunityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Opportunity, error) {
	var opportunity domain.Opportunity
	err := r.db.WithContext(ctx).
		Preload("Products").
		Where("id = ?", id).
		First(&opportunity).Error
	if err != nil {
		return nil, err
	}
	return &opportunity, nil
}

// GetByCustomerID returns all of a customer's opportunities, newest first.
func (r *OpportunityRepository) GetByCustomerID(ctx context.Context, customerID uuid.UUID) ([]domain.Opportunity, error) {
	var opportunities []domain.Opportunity
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&opportunities).Error
	return opportunities, err
}

// GetByCustomerAndNameExact returns the customer's opportunities whose name
// matches exactly, ignoring case.
func (r *OpportunityRepository) GetByCustomerAndNameExact(ctx context.Context, customerID uuid.UUID, name string) ([]domain.Opportunity, error) {
	var opportunities []domain.Opportunity
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND LOWER(name) = ?", customerID, strings.ToLower(name)).
		Find(&opportunities).Error
	return opportunities, err
}

// SearchByCustomerAndName returns the customer's opportunities whose name
// contains the query, ignoring case.
func (r *OpportunityRepository) SearchByCustomerAndName(ctx context.Context, customerID uuid.UUID, query string) ([]domain.Opportunity, error) {
	var opportunities []domain.Opportunity
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND LOWER(name) LIKE ?", customerID, pattern).
		Find(&opportunities).Error
	return opportunities, err
}

func (r *OpportunityRepository) Update(ctx context.Context, opportunity *domain.Opportunity) error {
	return r.db.WithContext(ctx).Save(opportunity).Error
}

// UpdateFields applies a partial field merge by column name.
func (r *OpportunityRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&domain.Opportunity{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *OpportunityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Opportunity{}, "id = ?", id).Error
}

// AttachProduct links a product to an opportunity.
func (r *OpportunityRepository) AttachProduct(ctx context.Context, opportunity *domain.Opportunity, product *domain.Product) error {
	return r.db.WithContext(ctx).Model(opportunity).Association("Products").Append(product)
}

func (r *OpportunityRepository) Count(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Opportunity{}).Count(&count).Error
	return int(count), err
}
