package jobs

import (
	"time"

	"go.uber.org/zap"
)

// SessionSweepJobName is the name of the idle session sweep job
const SessionSweepJobName = "session_sweep"

// SessionSweeper removes idle sessions. The interface keeps the job from
// importing the session package directly.
type SessionSweeper interface {
	// SweepIdle removes sessions idle for at least the given duration and
	// returns how many were removed.
	SweepIdle(idleFor time.Duration) int
}

// SessionSweepJob discards conversation sessions that have seen no activity
// for the configured idle TTL. Abandoned pending actions go with them; they
// were never confirmed, so nothing was executed.
type SessionSweepJob struct {
	sweeper SessionSweeper
	idleTTL time.Duration
	logger  *zap.Logger
}

// NewSessionSweepJob creates a new idle session sweep job.
func NewSessionSweepJob(sweeper SessionSweeper, idleTTL time.Duration, logger *zap.Logger) *SessionSweepJob {
	return &SessionSweepJob{
		sweeper: sweeper,
		idleTTL: idleTTL,
		logger:  logger,
	}
}

// Run executes one sweep.
func (j *SessionSweepJob) Run() {
	removed := j.sweeper.SweepIdle(j.idleTTL)
	if removed > 0 {
		j.logger.Info("idle sessions discarded",
			zap.Int("removed", removed),
			zap.Duration("idle_ttl", j.idleTTL))
	}
}
