// Package maintenance wires up the cron job that periodically soft-deletes
// stale job postings and drops the affected cache entries.
package maintenance

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pathfinderhq/pathfinder/internal/cache"
	"github.com/pathfinderhq/pathfinder/pkg/repository"
)

// Sweeper wraps robfig/cron and manages the stale-posting sweep.
type Sweeper struct {
	cron   *cron.Cron
	jobs   repository.JobRepo
	cache  *cache.ListCache
	spec   string
	maxAge time.Duration
	logger *slog.Logger
}

// New creates a Sweeper firing on the given cron spec; postings older than
// maxAge are marked inactive.
func New(jobs repository.JobRepo, listCache *cache.ListCache, spec string, maxAge time.Duration, logger *slog.Logger) *Sweeper {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Sweeper{
		cron:   cron.New(),
		jobs:   jobs,
		cache:  listCache,
		spec:   spec,
		maxAge: maxAge,
		logger: logger,
	}
}

// Start registers the sweep and starts the scheduler. One sweep runs
// immediately so a restart does not wait for the first tick.
func (s *Sweeper) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.Sweep(ctx) }); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("maintenance: scheduler started", slog.String("spec", s.spec))

	go s.Sweep(ctx)
	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Sweeper) Stop() {
	s.cron.Stop()
	s.logger.Info("maintenance: scheduler stopped")
}

// Sweep deactivates postings older than the configured age.
func (s *Sweeper) Sweep(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-s.maxAge).UnixMilli()
	n, err := s.jobs.DeactivateJobsBefore(ctx, cutoff)
	if err != nil {
		s.logger.Error("maintenance: sweep failed", slog.Any("err", err))
		return
	}
	if n == 0 {
		return
	}

	s.logger.Info("maintenance: deactivated stale postings", slog.Int64("count", n))
	if err := s.cache.Invalidate(ctx, "jobs"); err != nil {
		s.logger.Warn("maintenance: cache invalidation failed", slog.Any("err", err))
	}
}
