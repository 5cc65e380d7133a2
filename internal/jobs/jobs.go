// Package jobs runs periodic maintenance for the API process.
package jobs

import (
	"context"
	"fmt"
	"time"

	"ethela-storefront/internal/logging"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// SessionPurger deletes expired sessions.
type SessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// Scheduler owns the cron instance.
type Scheduler struct {
	sched  *cron.Cron
	logger *zap.Logger
}

// New returns a stopped Scheduler.
func New(logger *zap.Logger) *Scheduler {
	return &Scheduler{
		sched:  cron.New(cron.WithParser(cronParser)),
		logger: logging.OrNop(logger).Named("jobs"),
	}
}

// AddSessionPurge registers purge on schedule, e.g. "@every 30m".
func (s *Scheduler) AddSessionPurge(schedule string, purger SessionPurger) error {
	_, err := s.sched.AddFunc(schedule, func() { s.purgeSessions(purger) })
	if err != nil {
		return fmt.Errorf("schedule session purge %q: %w", schedule, err)
	}
	return nil
}

func (s *Scheduler) purgeSessions(purger SessionPurger) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("session purge panicked", zap.Any("panic", r))
		}
	}()
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	n, err := purger.PurgeExpired(ctx)
	if err != nil {
		s.logger.Error("session purge failed", zap.Error(err))
		return
	}
	if n > 0 {
		s.logger.Info("expired sessions purged", zap.Int64("count", n))
	}
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() { s.sched.Start() }

// Stop halts scheduling and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.sched.Stop().Done():
	case <-ctx.Done():
	}
}
