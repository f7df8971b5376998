package janitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ErlanBelekov/superpoll-api/internal/metrics"
	"github.com/ErlanBelekov/superpoll-api/internal/repository"
	"github.com/robfig/cron/v3"
)

// Pruner deletes error-log records older than the retention window on a
// cron schedule.
type Pruner struct {
	repo      repository.PruneErrorLogsRepository
	logger    *slog.Logger
	retention time.Duration
	schedule  cron.Schedule
	now       func() time.Time
}

// NewPruner parses spec with the standard cron parser, so descriptors such
// as "@daily" and "@every 1h" are accepted.
func NewPruner(repo repository.PruneErrorLogsRepository, logger *slog.Logger, retention time.Duration, spec string) (*Pruner, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse janitor schedule %q: %w", spec, err)
	}
	return &Pruner{
		repo:      repo,
		logger:    logger.With("component", "janitor"),
		retention: retention,
		schedule:  schedule,
		now:       time.Now,
	}, nil
}

// Start blocks until ctx is cancelled. A run in progress is allowed to
// finish before Start returns.
func (p *Pruner) Start(ctx context.Context) {
	runCtx := context.WithoutCancel(ctx)
	c := cron.New()
	c.Schedule(p.schedule, cron.FuncJob(func() { p.Prune(runCtx) }))
	c.Start()

	p.logger.Info("janitor started", "retention", p.retention)

	<-ctx.Done()
	<-c.Stop().Done()
	p.logger.Info("janitor shut down")
}

// Prune runs one pass and returns the number of records removed.
func (p *Pruner) Prune(ctx context.Context) int64 {
	cutoff := p.now().Add(-p.retention)

	n, err := p.repo.PruneBefore(ctx, cutoff)
	if err != nil {
		p.logger.ErrorContext(ctx, "prune error logs", "error", err)
		return 0
	}
	if n > 0 {
		metrics.ErrorLogsPrunedTotal.Add(float64(n))
		p.logger.InfoContext(ctx, "pruned error logs", "count", n, "cutoff", cutoff)
	}
	return n
}
