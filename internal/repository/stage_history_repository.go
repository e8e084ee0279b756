package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lumen-crm/assistant-api/internal/domain"
	"gorm.io/gorm"
)

type StageHistoryRepository struct {
	db *gorm.DB
}

func NewStageHistoryRepository(db *gorm.DB) *StageHistoryRepository {
	return &StageHistoryRepository{db: db}
}

// Create appends a transition record. History rows are never updated or
// deleted individually; they are the pipeline's audit trail.
func (r *StageHistoryRepository) Create(ctx context.Context, transition *domain.StageTransition) error {
	return r.db.WithContext(ctx).Create(transition).Error
}

// GetByOpportunityID returns the full history for an opportunity, oldest first.
func (r *StageHistoryRepository) GetByOpportunityID(ctx context.Context, opportunityID uuid.UUID) ([]domain.StageTransition, error) {
	var history []domain.StageTransition
	err := r.db.WithContext(ctx).
		Where("opportunity_id = ?", opportunityID).
		Order("changed_at ASC").
		Find(&history).Error
	return history, err
}

// GetLatestByOpportunityID returns the most recent transition for an opportunity.
func (r *StageHistoryRepository) GetLatestByOpportunityID(ctx context.Context, opportunityID uuid.UUID) (*domain.StageTransition, error) {
	var transition domain.StageTransition
	err := r.db.WithContext(ctx).
		Where("opportunity_id = ?", opportunityID).
		Order("changed_at DESC").
		First(&transition).Error
	if err != nil {
		return nil, err
	}
	return &transition, nil
}

// RecordTransition is a convenience method to append a stage history record.
func (r *StageHistoryRepository) RecordTransition(
	ctx context.Context,
	opportunityID uuid.UUID,
	fromStage *domain.Stage,
	toStage domain.Stage,
	changedByID string,
	changedByName string,
	notes string,
	durationDays int,
	changedAt time.Time,
) error {
	transition := &domain.StageTransition{
		OpportunityID: opportunityID,
		FromStage:     fromStage,
		ToStage:       toStage,
		ChangedByID:   changedByID,
		ChangedByName: changedByName,
		Notes:         notes,
		DurationDays:  durationDays,
		ChangedAt:     changedAt,
	}
	return r.Create(ctx, transition)
}

// CountByOpportunityID returns the number of history entries for an opportunity.
func (r *StageHistoryRepository) CountByOpportunityID(ctx context.Context, opportunityID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.StageTransition{}).
		Where("opportunity_id = ?", opportunityID).
		Count(&count).Error
	return int(count), err
}

// CountTransitionsToStage returns how many transitions landed on each stage
// within a date range, used by reporting.
func (r *StageHistoryRepository) CountTransitionsToStage(ctx context.Context, from, to time.Time) (map[domain.Stage]int64, error) {
	type result struct {
		ToStage domain.Stage
		Count   int64
	}
	var results []result

	err := r.db.WithContext(ctx).Model(&domain.StageTransition{}).
		Select("to_stage, COUNT(*) as count").
		Where("changed_at >= ? AND changed_at <= ?", from, to).
		Group("to_stage").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.Stage]int64)
	for _, res := range results {
		counts[res.ToStage] = res.Count
	}
	return counts, nil
}
