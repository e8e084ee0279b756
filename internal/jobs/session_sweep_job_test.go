package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSweeper struct {
	lastIdleFor time.Duration
	removed     int
	calls       int
}

func (f *fakeSweeper) SweepIdle(idleFor time.Duration) int {
	f.calls++
	f.lastIdleFor = idleFor
	return f.removed
}

func TestSessionSweepJob_Run(t *testing.T) {
	sweeper := &fakeSweeper{removed: 3}
	job := NewSessionSweepJob(sweeper, 30*time.Minute, zap.NewNop())

	job.Run()
	assert.Equal(t, 1, sweeper.calls)
	assert.Equal(t, 30*time.Minute, sweeper.lastIdleFor)

	job.Run()
	assert.Equal(t, 2, sweeper.calls)
}

func TestScheduler_AddAndRemoveJob(t *testing.T) {
	s := NewScheduler(zap.NewNop())

	err := s.AddJob(SessionSweepJobName, "0 */10 * * * *", func() {})
	assert.NoError(t, err)
	assert.Contains(t, s.GetJobNames(), SessionSweepJobName)

	// Same name twice is rejected.
	err = s.AddJob(SessionSweepJobName, "0 */10 * * * *", func() {})
	assert.Error(t, err)

	err = s.RemoveJob(SessionSweepJobName)
	assert.NoError(t, err)
	assert.NotContains(t, s.GetJobNames(), SessionSweepJobName)
}

func TestScheduler_InvalidCronExpression(t *testing.T) {
	s := NewScheduler(zap.NewNop())

	err := s.AddJob("bad", "not a cron expr", func() {})
	assert.Error(t, err)
}
