package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/lumen-crm/assistant-api/internal/domain"
	"github.com/lumen-crm/assistant-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageHistoryRepository_RecordTransition(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewStageHistoryRepository(db)
	customer := createTestCustomer(t, db, "Acme Corp")
	opportunity := createTestOpportunity(t, db, customer, "Cloud migration")

	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	err := repo.RecordTransition(context.Background(), opportunity.ID, nil, domain.StagePlan, "user-1", "Test User", "", 0, start)
	require.NoError(t, err)

	fromStage := domain.StagePlan
	err = repo.RecordTransition(context.Background(), opportunity.ID, &fromStage, domain.StageQualify, "user-1", "Test User", "budget approved", 11, start.AddDate(0, 0, 11))
	require.NoError(t, err)

	history, err := repo.GetByOpportunityID(context.Background(), opportunity.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Oldest first: the creation entry has no source stage and zero duration.
	assert.Nil(t, history[0].FromStage)
	assert.Equal(t, domain.StagePlan, history[0].ToStage)
	assert.Zero(t, history[0].DurationDays)

	require.NotNil(t, history[1].FromStage)
	assert.Equal(t, domain.StagePlan, *history[1].FromStage)
	assert.Equal(t, domain.StageQualify, history[1].ToStage)
	assert.Equal(t, 11, history[1].DurationDays)
	assert.Equal(t, "budget approved", history[1].Notes)
}

func TestStageHistoryRepository_GetLatestByOpportunityID(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewStageHistoryRepository(db)
	customer := createTestCustomer(t, db, "Acme Corp")
	opportunity := createTestOpportunity(t, db, customer, "Cloud migration")

	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.RecordTransition(context.Background(), opportunity.ID, nil, domain.StagePlan, "user-1", "", "", 0, start))

	fromStage := domain.StagePlan
	require.NoError(t, repo.RecordTransition(context.Background(), opportunity.ID, &fromStage, domain.StageDiscover, "user-1", "", "", 3, start.AddDate(0, 0, 3)))

	latest, err := repo.GetLatestByOpportunityID(context.Background(), opportunity.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageDiscover, latest.ToStage)
}

func TestStageHistoryRepository_CountTransitionsToStage(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewStageHistoryRepository(db)
	customer := createTestCustomer(t, db, "Acme Corp")
	first := createTestOpportunity(t, db, customer, "First deal")
	second := createTestOpportunity(t, db, customer, "Second deal")

	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.RecordTransition(context.Background(), first.ID, nil, domain.StagePlan, "user-1", "", "", 0, start))
	require.NoError(t, repo.RecordTransition(context.Background(), second.ID, nil, domain.StagePlan, "user-1", "", "", 0, start))

	fromStage := domain.StagePlan
	require.NoError(t, repo.RecordTransition(context.Background(), first.ID, &fromStage, domain.StagePropose, "user-1", "", "", 5, start.AddDate(0, 0, 5)))

	counts, err := repo.CountTransitionsToStage(context.Background(), start.AddDate(0, 0, -1), start.AddDate(0, 0, 30))
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[domain.StagePlan])
	assert.Equal(t, int64(1), counts[domain.StagePropose])
}
