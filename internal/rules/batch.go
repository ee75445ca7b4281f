package rules

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/a11yaudit/internal/model"
)

// defaultConcurrency bounds parallel page evaluation when no explicit limit
// is configured.
const defaultConcurrency = 8

// Target is one page queued for batch evaluation.
type Target struct {
	// URL identifies the page in the resulting audit.
	URL string

	// Markup is the page's raw HTML.
	Markup string
}

// BatchEvaluator evaluates many pages concurrently while preserving input
// order in the output.
//
// Design decision: Results are written into a pre-sized slice indexed by the
// input position instead of being collected from a channel. The evaluation
// itself is pure and order-independent, but everything downstream (sorting,
// export, comparison against earlier runs) assumes a deterministic baseline
// order, so the goroutine scheduling must not leak into the result.
type BatchEvaluator struct {
	evaluator   *Evaluator
	concurrency int
	logger      *slog.Logger
}

// BatchOption is a function that configures a BatchEvaluator.
type BatchOption func(*BatchEvaluator)

// WithConcurrency sets the maximum number of pages evaluated in parallel.
// Values below one fall back to the default.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchEvaluator) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithBatchLogger sets the logger used for per-page progress output.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchEvaluator) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBatchEvaluator creates a BatchEvaluator wrapping the given Evaluator.
func NewBatchEvaluator(evaluator *Evaluator, opts ...BatchOption) *BatchEvaluator {
	b := &BatchEvaluator{
		evaluator:   evaluator,
		concurrency: defaultConcurrency,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// EvaluateAll audits every target and returns the audits in input order.
// Evaluation stops early when ctx is canceled; the partial error is returned
// and the result slice discarded.
func (b *BatchEvaluator) EvaluateAll(ctx context.Context, targets []Target) ([]model.PageAudit, error) {
	audits := make([]model.PageAudit, len(targets))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(b.concurrency)

	for i, target := range targets {
		i, target := i, target
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			audit := b.evaluator.Evaluate(target.URL, target.Markup)
			audits[i] = audit

			b.logger.DebugContext(ctx, "page audited",
				slog.String("url", audit.URL),
				slog.Int("score", audit.Score),
				slog.Int("issues", len(audit.Issues)))
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return audits, nil
}
