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

func TestProfileRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewProfileRepository(db)
	customer := createTestCustomer(t, db, "Acme Corp")

	profile := &domain.Profile{
		CustomerID: customer.ID,
		TechStack:  "Kubernetes on AWS",
		PainPoints: []string{"cost", "compliance"},
		Goals:      []string{"consolidate vendors"},
	}
	require.NoError(t, repo.Create(context.Background(), profile))

	found, err := repo.GetByCustomerID(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kubernetes on AWS", found.TechStack)
	assert.Equal(t, []string{"cost", "compliance"}, []string(found.PainPoints))
}

func TestProfileRepository_GetByCustomerID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewProfileRepository(db)
	customer := createTestCustomer(t, db, "Acme Corp")

	_, err := repo.GetByCustomerID(context.Background(), customer.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProfileRepository_ExistsForCustomer(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewProfileRepository(db)
	customer := createTestCustomer(t, db, "Acme Corp")

	exists, err := repo.ExistsForCustomer(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(context.Background(), &domain.Profile{CustomerID: customer.ID}))

	exists, err = repo.ExistsForCustomer(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestProfileRepository_OnePerCustomer(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewProfileRepository(db)
	customer := createTestCustomer(t, db, "Acme Corp")

	require.NoError(t, repo.Create(context.Background(), &domain.Profile{CustomerID: customer.ID}))

	// The unique index on customer_id enforces the one-profile rule even if
	// the handler-level check is bypassed.
	err := repo.Create(context.Background(), &domain.Profile{CustomerID: customer.ID})
	assert.Error(t, err)
}
