package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GowthamanS-2001/Berlin-jobs/internal/match"
	"github.com/GowthamanS-2001/Berlin-jobs/internal/model"
	"github.com/GowthamanS-2001/Berlin-jobs/internal/normalize"
	"github.com/GowthamanS-2001/Berlin-jobs/internal/rank"
	"github.com/GowthamanS-2001/Berlin-jobs/internal/render"
	"github.com/GowthamanS-2001/Berlin-jobs/internal/serpapi"
)

// Collector produces the raw search hits for one run.
type Collector interface {
	Collect(ctx context.Context) ([]serpapi.Hit, error)
}

// Runner owns the full digest pipeline for one run:
// collect → normalize/filter → rank → render → send → archive.
type Runner struct {
	collector     Collector
	patterns      *match.Patterns
	scorer        *rank.Scorer
	sender        model.DigestSender
	store         model.RunStore
	digestSize    int
	subjectPrefix string
	logger        *slog.Logger
}

// NewRunner creates a runner wired with all its collaborators.
func NewRunner(
	collector Collector,
	patterns *match.Patterns,
	scorer *rank.Scorer,
	sender model.DigestSender,
	store model.RunStore,
	digestSize int,
	subjectPrefix string,
	logger *slog.Logger,
) *Runner {
	return &Runner{
		collector:     collector,
		patterns:      patterns,
		scorer:        scorer,
		sender:        sender,
		store:         store,
		digestSize:    digestSize,
		subjectPrefix: subjectPrefix,
		logger:        logger,
	}
}

// Run executes one digest run. Zero retained rows still sends an (empty)
// digest and records a zero-row run; a collect or send failure aborts with a
// wrapped error and nothing partial is delivered.
func (r *Runner) Run(ctx context.Context) error {
	hits, err := r.collector.Collect(ctx)
	if err != nil {
		return fmt.Errorf("digest run: %w", err)
	}

	// Fresh normalizer per run: the dedup seen-set must not leak across runs.
	norm := normalize.New(r.patterns)
	var kept []model.Listing
	for _, hit := range hits {
		if l, ok := norm.Normalize(hit); ok {
			kept = append(kept, l)
		}
	}

	ranked := r.scorer.Rank(kept, r.digestSize)

	digest, err := render.Render(ranked, r.subjectPrefix, time.Now())
	if err != nil {
		return fmt.Errorf("digest run: %w", err)
	}

	if err := r.sender.Send(digest); err != nil {
		return fmt.Errorf("digest run: sending: %w", err)
	}

	if _, err := r.store.RecordRun(digest); err != nil {
		return fmt.Errorf("digest run: archiving: %w", err)
	}

	r.logger.Info("digest run complete",
		"collected", len(hits),
		"kept", len(kept),
		"sent", digest.Count,
	)
	return nil
}
