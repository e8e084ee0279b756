package repository_test

import (
	"context"
	"testing"

	"github.com/lumen-crm/assistant-api/internal/domain"
	"github.com/lumen-crm/assistant-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProductRepository_FindByNameAndVersion(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewProductRepository(db)

	created := &domain.Product{Name: "DataGrid", Version: "3.2", Category: "analytics"}
	require.NoError(t, repo.Create(context.Background(), created))

	t.Run("match ignores case", func(t *testing.T) {
		found, err := repo.FindByNameAndVersion(context.Background(), "datagrid", "3.2")
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("different version is no match", func(t *testing.T) {
		_, err := repo.FindByNameAndVersion(context.Background(), "DataGrid", "4.0")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestProductRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewProductRepository(db)

	require.NoError(t, repo.Create(context.Background(), &domain.Product{Name: "Zeta", Version: "1.0"}))
	require.NoError(t, repo.Create(context.Background(), &domain.Product{Name: "DataGrid", Version: "3.2"}))

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "DataGrid", products[0].Name)
}

func TestPartnerRepository_FindByCustomerAndName(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewPartnerRepository(db)
	customer := createTestCustomer(t, db, "Acme Corp")
	other := createTestCustomer(t, db, "Globex")

	created := &domain.Partner{CustomerID: customer.ID, Name: "Deloitte", Type: "integration"}
	require.NoError(t, repo.Create(context.Background(), created))

	found, err := repo.FindByCustomerAndName(context.Background(), customer.ID, "deloitte")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	// Scoped to the customer: the same partner name elsewhere is no match.
	_, err = repo.FindByCustomerAndName(context.Background(), other.ID, "Deloitte")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestContactRepository_FindByCustomerAndName(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewContactRepository(db)
	customer := createTestCustomer(t, db, "Acme Corp")

	created := &domain.Contact{CustomerID: customer.ID, Name: "Jane Doe", Email: "jane@acme.example", Role: "VP Engineering"}
	require.NoError(t, repo.Create(context.Background(), created))

	found, err := repo.FindByCustomerAndName(context.Background(), customer.ID, "JANE DOE")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "VP Engineering", found.Role)

	_, err = repo.FindByCustomerAndName(context.Background(), customer.ID, "John Smith")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
