package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/lumen-crm/assistant-api/internal/domain"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetByNameExact returns customers whose name matches exactly, ignoring case.
func (r *CustomerRepository) GetByNameExact(ctx context.Context, name string) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		Find(&customers).Error
	return customers, err
}

// SearchByName returns customers whose name contains the query, ignoring case.
func (r *CustomerRepository) SearchByName(ctx context.Context, query string, limit int) ([]domain.Customer, error) {
	var customers []domain.Customer
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Limit(limit).
		Order("name ASC").
		Find(&customers).Error
	return customers, err
}

func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

// UpdateFields applies a partial field merge by column name.
func (r *CustomerRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// Delete removes the customer row only. Dependent notes and opportunities
// are intentionally left in place so meeting history survives account churn.
func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Customer{}, "id = ?", id).Error
}

func (r *CustomerRepository) List(ctx context.Context, page, pageSize int, search string) ([]domain.Customer, int64, error) {
	var customers []domain.Customer
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Customer{})

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(industry) LIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order("created_at DESC").Find(&customers).Error

	return customers, total, err
}

// ListNames returns all customer display names, used to bias extraction.
func (r *CustomerRepository) ListNames(ctx context.Context, limit int) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&domain.Customer{}).
		Order("name ASC").
		Limit(limit).
		Pluck("name", &names).Error
	return names, err
}

func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Customer{}).Count(&count).Error
	return int(count), err
}
