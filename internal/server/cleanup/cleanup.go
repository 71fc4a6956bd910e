// Package cleanup runs the scheduled purge of expired refresh tokens and
// expired blacklist rows.
package cleanup

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ZeroColaa/authkeep/internal/logging"
	"github.com/ZeroColaa/authkeep/internal/server/repositories/blacklist"
	"github.com/ZeroColaa/authkeep/internal/server/repositories/refreshtokens"
)

// Scheduler deletes rows whose expiry has passed on a cron schedule. The
// two purges run independently so a failure in one does not block the
// other.
type Scheduler struct {
	refresh   refreshtokens.Repository
	blacklist blacklist.Repository
	logger    logging.Logger
	schedule  string
	cron      *cron.Cron
}

// NewScheduler creates a scheduler. The schedule uses six-field cron
// syntax with a leading seconds field, for example "0 0 3 * * *" for
// 03:00 every day.
func NewScheduler(refresh refreshtokens.Repository, bl blacklist.Repository, logger logging.Logger, schedule string) *Scheduler {
	return &Scheduler{
		refresh:   refresh,
		blacklist: bl,
		logger:    logger.With("component", "cleanup"),
		schedule:  schedule,
	}
}

// Start registers the purge job and begins the cron loop. It fails if the
// schedule expression does not parse.
func (s *Scheduler) Start(ctx context.Context) error {
	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(s.schedule, func() {
		s.RunOnce(context.Background())
	}); err != nil {
		return fmt.Errorf("invalid cleanup schedule %q: %w", s.schedule, err)
	}
	s.cron = c
	c.Start()
	s.logger.Info(ctx, "cleanup scheduler started", "schedule", s.schedule)
	return nil
}

// Stop halts the cron loop and waits for a running purge to finish.
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

// timeNow is a seam for pinning the purge cutoff in tests.
var timeNow = time.Now

// RunOnce performs a single purge pass. The cutoff is the current instant:
// rows expiring strictly before it are removed, rows expiring exactly at it
// are kept.
func (s *Scheduler) RunOnce(ctx context.Context) {
	cutoff := timeNow()

	if n, err := s.refresh.DeleteExpiredBefore(ctx, cutoff); err != nil {
		s.logger.Error(ctx, "refresh token purge failed", "error", err)
	} else {
		s.logger.Info(ctx, "expired refresh tokens purged", "count", n)
	}

	if n, err := s.blacklist.DeleteExpiredBefore(ctx, cutoff); err != nil {
		s.logger.Error(ctx, "blacklist purge failed", "error", err)
	} else {
		s.logger.Info(ctx, "expired blacklist entries purged", "count", n)
	}
}
