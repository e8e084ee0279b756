// Package pipeline implements the opportunity stage state machine with its
// append-only transition history and duration accounting.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lumen-crm/assistant-api/internal/auth"
	"github.com/lumen-crm/assistant-api/internal/domain"
	"github.com/lumen-crm/assistant-api/internal/repository"
	"go.uber.org/zap"
)

// ErrInvalidStage indicates a stage name outside the nine known stages.
var ErrInvalidStage = errors.New("invalid stage")

// Pipeline manages opportunity stage transitions. Stage order is for display
// only; any stage may move to any other, including backward.
type Pipeline struct {
	opportunityRepo *repository.OpportunityRepository
	historyRepo     *repository.StageHistoryRepository
	logger          *zap.Logger
	now             func() time.Time
}

// NewPipeline creates a Pipeline.
func NewPipeline(
	opportunityRepo *repository.OpportunityRepository,
	historyRepo *repository.StageHistoryRepository,
	logger *zap.Logger,
) *Pipeline {
	return &Pipeline{
		opportunityRepo: opportunityRepo,
		historyRepo:     historyRepo,
		logger:          logger,
		now:             time.Now,
	}
}

// RecordCreation seeds the creation transition for a new opportunity. The
// creation entry has a nil fromStage and zero duration so the history is
// never empty once the opportunity exists.
func (p *Pipeline) RecordCreation(ctx context.Context, opportunity *domain.Opportunity, user auth.UserContext) error {
	if !opportunity.CurrentStage.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStage, opportunity.CurrentStage)
	}
	return p.historyRepo.RecordTransition(
		ctx,
		opportunity.ID,
		nil,
		opportunity.CurrentStage,
		user.UserID,
		user.DisplayName,
		"",
		0,
		p.now(),
	)
}

// ChangeStage moves an opportunity to newStage. A request for the current
// stage is a no-op so re-submissions do not create zero-duration history
// entries. The appended transition's duration is the whole number of days
// the previous stage was held.
func (p *Pipeline) ChangeStage(
	ctx context.Context,
	opportunity *domain.Opportunity,
	newStage domain.Stage,
	notes string,
	user auth.UserContext,
) (*domain.Opportunity, error) {
	if !newStage.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStage, newStage)
	}

	if newStage == opportunity.CurrentStage {
		p.logger.Debug("Stage unchanged, skipping transition",
			zap.String("opportunity_id", opportunity.ID.String()),
			zap.String("stage", string(newStage)),
		)
		return opportunity, nil
	}

	now := p.now()
	duration := 0
	last, err := p.historyRepo.GetLatestByOpportunityID(ctx, opportunity.ID)
	if err == nil && last != nil {
		duration = wholeDays(last.ChangedAt, now)
	} else if err != nil {
		// A missing creation entry should not block the stage change.
		p.logger.Warn("No prior stage history for opportunity",
			zap.String("opportunity_id", opportunity.ID.String()),
			zap.Error(err),
		)
	}

	fromStage := opportunity.CurrentStage
	if err := p.historyRepo.RecordTransition(
		ctx,
		opportunity.ID,
		&fromStage,
		newStage,
		user.UserID,
		user.DisplayName,
		notes,
		duration,
		now,
	); err != nil {
		return nil, fmt.Errorf("recording stage transition: %w", err)
	}

	opportunity.CurrentStage = newStage
	opportunity.UpdatedByID = user.UserID
	if err := p.opportunityRepo.Update(ctx, opportunity); err != nil {
		return nil, fmt.Errorf("updating opportunity stage: %w", err)
	}

	p.logger.Info("Opportunity stage changed",
		zap.String("opportunity_id", opportunity.ID.String()),
		zap.String("from_stage", string(fromStage)),
		zap.String("to_stage", string(newStage)),
		zap.Int("duration_days", duration),
		zap.String("changed_by", user.UserID),
	)
	return opportunity, nil
}

// History returns the opportunity's transition history, oldest first.
func (p *Pipeline) History(ctx context.Context, opportunity *domain.Opportunity) ([]domain.StageTransition, error) {
	return p.historyRepo.GetByOpportunityID(ctx, opportunity.ID)
}

func wholeDays(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}
