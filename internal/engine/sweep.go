package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/valuelab/vehicle-appraisal/internal/metrics"
	"github.com/valuelab/vehicle-appraisal/internal/notify"
)

// SweepStale recomputes every appraisal whose current analysis is older
// than the staleness window, including appraisals never analyzed at all.
// Individual failures are logged and skipped so one bad appraisal cannot
// stall the cycle. Alerts raised during the sweep are dispatched at the
// end, batched when enough accumulate. Returns the number of appraisals
// recomputed.
func (eng *Engine) SweepStale(ctx context.Context) (int, error) {
	ctx, span := eng.tracer.Start(ctx, "engine.sweep")
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.SweepDuration.Observe(time.Since(start).Seconds())
	}()

	cutoff := time.Now().Add(-eng.staleAfter)
	stale, err := eng.store.ListStaleAppraisals(ctx, cutoff, defaultSweepLimit)
	if err != nil {
		return 0, fmt.Errorf("listing stale appraisals: %w", err)
	}
	if len(stale) == 0 {
		eng.log.Debug("sweep found nothing stale", "cutoff", cutoff)
		return 0, nil
	}

	eng.log.Info("sweeping stale appraisals",
		"count", len(stale),
		"cutoff", cutoff,
		"concurrency", eng.sweepConcurrency,
	)

	var (
		mu         sync.Mutex
		fired      []notify.AlertPayload
		recomputed int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(eng.sweepConcurrency)

	for i := range stale {
		id := stale[i].ID
		g.Go(func() error {
			_, payload, err := eng.recompute(gctx, id, false)
			if err != nil {
				eng.log.Error("sweep recompute failed", "appraisal_id", id, "error", err)
				metrics.SweepErrorsTotal.Inc()
				return nil
			}
			metrics.SweepRecomputesTotal.Inc()
			mu.Lock()
			recomputed++
			if payload != nil {
				fired = append(fired, *payload)
			}
			mu.Unlock()
			return nil
		})

		// Stagger submissions to avoid hammering the database.
		if i < len(stale)-1 && eng.staggerOffset > 0 {
			select {
			case <-gctx.Done():
				return recomputed, gctx.Err()
			case <-time.After(eng.staggerOffset):
			}
		}
	}

	if err := g.Wait(); err != nil {
		return recomputed, err
	}

	span.SetAttributes(
		attribute.Int("sweep.stale", len(stale)),
		attribute.Int("sweep.alerts", len(fired)),
	)

	eng.dispatchAlerts(ctx, fired, "stale sweep")

	return recomputed, nil
}

// PruneHistory removes analysis revisions older than the retention
// window, always keeping the most recent revisions of each appraisal.
// Returns the number of revisions removed.
func (eng *Engine) PruneHistory(ctx context.Context) (int, error) {
	if eng.historyRetention <= 0 {
		return 0, nil
	}

	cutoff := time.Now().Add(-eng.historyRetention)
	removed, err := eng.store.PruneAnalysisHistory(ctx, cutoff, eng.historyKeep)
	if err != nil {
		return 0, fmt.Errorf("pruning analysis history: %w", err)
	}

	metrics.AnalysesPrunedTotal.Add(float64(removed))
	eng.log.Info("analysis history pruned",
		"removed", removed,
		"cutoff", cutoff,
		"keep_latest", eng.historyKeep,
	)

	return removed, nil
}
