package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumen-crm/assistant-api/internal/auth"
	"github.com/lumen-crm/assistant-api/internal/domain"
	"gorm.io/gorm"
)

// createProduct reuses an existing product with the same name and version
// instead of creating a near-duplicate. Duplicate names with distinct
// versions are allowed.
func (d *Dispatcher) createProduct(ctx context.Context, fields Fields, user auth.UserContext) (*Result, error) {
	name, _ := fields.String("name")
	version, _ := fields.String("version")

	existing, err := d.productRepo.FindByNameAndVersion(ctx, name, version)
	if err == nil {
		return &Result{
			Message: fmt.Sprintf("Product %s already exists, reusing it", productLabel(existing)),
			Data:    existing,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking for existing product: %w", err)
	}

	product := &domain.Product{
		Name:        name,
		Version:     version,
		CreatedByID: user.UserID,
	}
	if category, ok := fields.String("category"); ok {
		product.Category = category
	}
	if description, ok := fields.String("description"); ok {
		product.Description = description
	}

	if err := d.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}
	return &Result{
		Message: fmt.Sprintf("Added product %s", productLabel(product)),
		Data:    product,
	}, nil
}

func productLabel(p *domain.Product) string {
	if p.Version == "" {
		return p.Name
	}
	return fmt.Sprintf("%s %s", p.Name, p.Version)
}
