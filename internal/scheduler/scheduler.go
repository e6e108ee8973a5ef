package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Runner is one digest run. Satisfied by *pipeline.Runner.
type Runner interface {
	Run(ctx context.Context) error
}

// Scheduler owns the daemon loop: one immediate run, then a run per interval.
type Scheduler struct {
	runner   Runner
	interval time.Duration
	logger   *slog.Logger
}

// NewScheduler creates a scheduler that triggers the runner at the given interval.
func NewScheduler(runner Runner, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runner:   runner,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the loop. A failed run is logged and the loop keeps ticking;
// Run returns nil when ctx is cancelled (graceful shutdown).
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("starting scheduler", "interval", s.interval.String())

	s.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("shutting down scheduler")
			return nil
		case <-time.After(s.interval):
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := s.runner.Run(ctx); err != nil {
		s.logger.Error("digest run failed", "error", err)
	}
}
