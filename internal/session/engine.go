package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lumen-crm/assistant-api/internal/auth"
	"github.com/lumen-crm/assistant-api/internal/command"
	"github.com/lumen-crm/assistant-api/internal/intent"
	"go.uber.org/zap"
)

// NameLister provides the known customer display names used to bias
// extraction towards existing records.
type NameLister interface {
	ListNames(ctx context.Context, limit int) ([]string, error)
}

const (
	couldNotUnderstandMsg = "Sorry, I could not understand that. Please try rephrasing."
	noMatchMsg            = "I'm not sure what you want me to do with that. Try something like \"add a note to Acme\" or \"move the Acme deal to Propose\"."
	rejectedMsg           = "Okay, I won't do that."
)

// Engine drives one conversation turn end to end: detect a template,
// extract structured data, compose a confirmation, and hold the result as
// the session's pending action until the user confirms or rejects it.
// Dispatch happens only on confirm.
type Engine struct {
	detector     *intent.Detector
	extractor    *intent.Extractor
	composer     *intent.Composer
	dispatcher   *command.Dispatcher
	customerRepo NameLister
	logger       *zap.Logger
}

// NewEngine creates an Engine.
func NewEngine(
	detector *intent.Detector,
	extractor *intent.Extractor,
	composer *intent.Composer,
	dispatcher *command.Dispatcher,
	customerRepo NameLister,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		detector:     detector,
		extractor:    extractor,
		composer:     composer,
		dispatcher:   dispatcher,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// HandleMessage processes one user turn. A pending action from a previous
// turn is implicitly rejected. Extraction failures, including cancellation
// from session teardown, return the session to Idle with no side effects.
func (e *Engine) HandleMessage(ctx context.Context, s *Session, text string, user auth.UserContext) (*Message, error) {
	s.turnMu.Lock()
	defer s.turnMu.Unlock()

	if superseded := s.beginTurn(text); superseded != nil {
		e.logger.Info("Pending action superseded by new input",
			zap.String("session_id", s.ID.String()),
			zap.String("superseded_message_id", superseded.ID.String()),
		)
	}

	tmpl, detectConfidence := e.detector.Detect(ctx, text)
	if tmpl != nil {
		e.logger.Debug("Matched command template",
			zap.String("session_id", s.ID.String()),
			zap.String("template_id", tmpl.ID),
			zap.Float64("confidence", detectConfidence),
		)
	}

	knownNames, err := e.customerRepo.ListNames(ctx, 200)
	if err != nil {
		e.logger.Warn("Could not load customer names for extraction", zap.Error(err))
		knownNames = nil
	}

	extraction, err := e.extractor.Extract(ctx, text, tmpl, knownNames)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
			e.logger.Info("Turn cancelled, discarding extraction",
				zap.String("session_id", s.ID.String()),
			)
			return s.failTurn(couldNotUnderstandMsg), ctx.Err()
		}
		e.logger.Warn("Extraction failed",
			zap.String("session_id", s.ID.String()),
			zap.Error(err),
		)
		return s.failTurn(couldNotUnderstandMsg), nil
	}

	if !extraction.Actionable() {
		return s.completeTurn(noMatchMsg, extraction), nil
	}

	confirmation := e.composer.Compose(ctx, extraction)
	msg := s.completeTurn(confirmation, extraction)

	e.logger.Info("Pending action created",
		zap.String("session_id", s.ID.String()),
		zap.String("message_id", msg.ID.String()),
		zap.String("entity", extraction.Entity()),
		zap.String("operation", extraction.Operation()),
	)
	return msg, nil
}

// Confirm resolves a pending message and dispatches its command. Confirming
// an already-resolved message is a no-op that returns the message unchanged.
// Dispatch failures are recorded in the conversation and do not make the
// session unusable.
func (e *Engine) Confirm(ctx context.Context, s *Session, messageID uuid.UUID, user auth.UserContext) (*Message, *command.Result, error) {
	msg, alreadyResolved, err := s.resolve(messageID, StatusConfirmed)
	if err != nil {
		return nil, nil, err
	}
	if alreadyResolved {
		e.logger.Debug("Duplicate resolution ignored",
			zap.String("session_id", s.ID.String()),
			zap.String("message_id", messageID.String()),
		)
		return msg, nil, nil
	}

	extraction := msg.Extraction
	result, err := e.dispatcher.Dispatch(ctx, extraction.Entity(), extraction.Operation(), extraction.ExtractedData, user)
	if err != nil {
		content := err.Error()
		if cmdErr := command.AsError(err); cmdErr == nil {
			content = "Something went wrong carrying that out. Nothing was changed."
			e.logger.Error("Dispatch failed",
				zap.String("session_id", s.ID.String()),
				zap.String("entity", extraction.Entity()),
				zap.String("operation", extraction.Operation()),
				zap.Error(err),
			)
		}
		s.recordOutcome(RoleSystem, content)
		return msg, nil, err
	}

	s.recordOutcome(RoleAssistant, result.Message)
	return msg, result, nil
}

// Reject resolves a pending message without dispatching. Rejecting an
// already-resolved message is a no-op.
func (e *Engine) Reject(s *Session, messageID uuid.UUID) (*Message, error) {
	msg, alreadyResolved, err := s.resolve(messageID, StatusRejected)
	if err != nil {
		return nil, err
	}
	if !alreadyResolved {
		s.recordOutcome(RoleAssistant, rejectedMsg)
	}
	return msg, nil
}
