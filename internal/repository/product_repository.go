package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/lumen-crm/assistant-api/internal/domain"
	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByNameAndVersion returns an existing product with the same name and
// version, ignoring case, or gorm.ErrRecordNotFound. Handlers prefer reusing
// such a record over creating a near-duplicate.
func (r *ProductRepository) FindByNameAndVersion(ctx context.Context, name, version string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ? AND LOWER(version) = ?", strings.ToLower(name), strings.ToLower(version)).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Order("name ASC, version ASC").Find(&products).Error
	return products, err
}
