// Package engine hosts the valuation pipeline: it loads appraisal
// inputs, runs the comparable-sales computation, persists versioned
// analyses, and raises alerts for undervalued vehicles.
package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/valuelab/vehicle-appraisal/internal/metrics"
	"github.com/valuelab/vehicle-appraisal/internal/notify"
	"github.com/valuelab/vehicle-appraisal/internal/store"
	domain "github.com/valuelab/vehicle-appraisal/pkg/types"
	"github.com/valuelab/vehicle-appraisal/pkg/valuation"
)

// ErrRateLimited is returned by Recompute when an appraisal exhausts its
// recompute budget. The API maps it to 429.
var ErrRateLimited = errors.New("recompute rate limit exceeded")

const (
	// maxSaveAttempts bounds the revision-conflict retry loop.
	maxSaveAttempts = 3

	// defaultSweepLimit caps how many stale appraisals one sweep cycle
	// picks up.
	defaultSweepLimit = 200
)

// Engine orchestrates recomputes, stale sweeps, history pruning, and alerting.
type Engine struct {
	store    store.Store
	notifier notify.Notifier
	log      *slog.Logger
	tracer   trace.Tracer

	tables      valuation.Tables
	alertPolicy domain.AlertPolicy
	reAlerts    bool

	limiters *limiterPool

	staleAfter       time.Duration
	sweepConcurrency int
	staggerOffset    time.Duration

	historyRetention time.Duration
	historyKeep      int
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(s store.Store, n notify.Notifier, opts ...EngineOption) *Engine {
	eng := &Engine{
		store:            s,
		notifier:         n,
		log:              slog.Default(),
		tracer:           otel.Tracer("github.com/valuelab/vehicle-appraisal/internal/engine"),
		tables:           valuation.DefaultTables(time.Now().Year()),
		limiters:         newLimiterPool(0, 0),
		staleAfter:       24 * time.Hour,
		sweepConcurrency: 4,
		staggerOffset:    30 * time.Second,
		historyRetention: 90 * 24 * time.Hour,
		historyKeep:      5,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithTables sets the adjustment tables used for valuation.
func WithTables(t valuation.Tables) EngineOption {
	return func(e *Engine) {
		e.tables = t
	}
}

// WithAlertPolicy sets the thresholds an analysis must clear before an
// undervalued alert fires.
func WithAlertPolicy(p domain.AlertPolicy) EngineOption {
	return func(e *Engine) {
		e.alertPolicy = p
	}
}

// WithReAlerts makes every qualifying recompute fire an alert instead of
// only transitions into the undervalued state.
func WithReAlerts(enabled bool) EngineOption {
	return func(e *Engine) {
		e.reAlerts = enabled
	}
}

// WithRateLimit caps on-demand recomputes per appraisal. A perSecond of
// zero or less disables limiting.
func WithRateLimit(perSecond float64, burst int) EngineOption {
	return func(e *Engine) {
		e.limiters = newLimiterPool(perSecond, burst)
	}
}

// WithStaleAfter sets how old an analysis may grow before the sweep
// recomputes it.
func WithStaleAfter(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.staleAfter = d
	}
}

// WithSweepConcurrency bounds how many recomputes a sweep runs at once.
func WithSweepConcurrency(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.sweepConcurrency = n
		}
	}
}

// WithStaggerOffset sets the delay between submissions within a sweep.
func WithStaggerOffset(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.staggerOffset = d
	}
}

// WithRetention configures history pruning: analyses older than window are
// removed, always keeping the keepLatest most recent per appraisal.
func WithRetention(window time.Duration, keepLatest int) EngineOption {
	return func(e *Engine) {
		e.historyRetention = window
		e.historyKeep = keepLatest
	}
}

// Recompute runs the valuation pipeline for one appraisal on demand and
// delivers an alert if the result newly qualifies as undervalued. When
// force is false and the inputs are unchanged since the current analysis,
// that analysis is returned as-is.
func (eng *Engine) Recompute(ctx context.Context, id string, force bool) (*domain.MarketAnalysis, error) {
	if !eng.limiters.allow(id) {
		return nil, fmt.Errorf("appraisal %s: %w", id, ErrRateLimited)
	}

	analysis, payload, err := eng.recompute(ctx, id, force)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		eng.sendSingle(ctx, payload)
	}
	return analysis, nil
}

// recompute is the shared pipeline behind on-demand recomputes and the
// stale sweep. It returns the saved (or reused) analysis and, when the
// result crosses the alert policy, the payload to deliver. Delivery is
// the caller's job so the sweep can batch.
func (eng *Engine) recompute(ctx context.Context, id string, force bool) (analysis *domain.MarketAnalysis, payload *notify.AlertPayload, err error) {
	ctx, span := eng.tracer.Start(ctx, "engine.recompute",
		trace.WithAttributes(attribute.String("appraisal.id", id)))
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.RecomputeDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.RecomputeErrorsTotal.Inc()
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	appr, err := eng.store.GetAppraisal(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("loading appraisal %s: %w", id, err)
	}

	comps, err := eng.store.ListComparables(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("loading comparables for %s: %w", id, err)
	}

	current, err := eng.store.GetCurrentAnalysis(ctx, id)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, nil, fmt.Errorf("loading current analysis for %s: %w", id, err)
	}

	fp := fingerprint(appr, comps, eng.tables)
	if !force && current != nil && current.InputFingerprint == fp {
		metrics.RecomputeUnchangedTotal.Inc()
		span.SetAttributes(attribute.Bool("recompute.skipped", true))
		eng.log.Debug("recompute skipped, inputs unchanged",
			"appraisal_id", id,
			"revision", current.Revision,
		)
		return current, nil, nil
	}

	result := valuation.Compute(vehicleData(appr), compData(comps), appr.ReferenceValue, eng.tables)

	if err := eng.applyCompResults(ctx, comps, result.Comparables); err != nil {
		return nil, nil, fmt.Errorf("persisting comparable results for %s: %w", id, err)
	}

	saved, err := eng.saveAnalysis(ctx, id, fp, current, result)
	if err != nil {
		return nil, nil, fmt.Errorf("saving analysis for %s: %w", id, err)
	}

	metrics.RecomputesTotal.Inc()
	span.SetAttributes(
		attribute.Int64("analysis.revision", saved.Revision),
		attribute.Bool("analysis.undervalued", saved.Undervalued),
	)
	eng.log.Info("analysis recomputed",
		"appraisal_id", id,
		"revision", saved.Revision,
		"comparables_used", saved.ComparablesUsed,
		"confidence", saved.Confidence,
		"undervalued", saved.Undervalued,
	)

	return saved, eng.evaluateAlert(appr, current, saved), nil
}

// applyCompResults writes per-comparable scoring outcomes back to the
// store and observes the quality score distribution. Results arrive in
// the same order as comps.
func (eng *Engine) applyCompResults(ctx context.Context, comps []domain.Comparable, results []valuation.CompResult) error {
	for i := range comps {
		r := results[i]
		if r.Skipped {
			comps[i].QualityScore = nil
			comps[i].QualityBreakdown = nil
			comps[i].AdjustedPrice = nil
			comps[i].Adjustments = nil
			comps[i].Excluded = true
			comps[i].ExclusionReason = r.SkipReason
			continue
		}

		breakdown, err := json.Marshal(r.Quality)
		if err != nil {
			return fmt.Errorf("encoding quality breakdown for %s: %w", comps[i].ID, err)
		}
		adjustments, err := json.Marshal(r.Adjustments)
		if err != nil {
			return fmt.Errorf("encoding adjustments for %s: %w", comps[i].ID, err)
		}

		score := r.Quality.Total
		adjusted := r.Adjustments.AdjustedPrice
		comps[i].QualityScore = &score
		comps[i].QualityBreakdown = breakdown
		comps[i].AdjustedPrice = &adjusted
		comps[i].Adjustments = adjustments
		comps[i].Excluded = false
		comps[i].ExclusionReason = ""

		metrics.QualityScoreDistribution.Observe(score)
	}
	return eng.store.UpdateComparableResults(ctx, comps)
}

// saveAnalysis persists a new analysis revision, retrying on revision
// conflicts from concurrent recomputes.
func (eng *Engine) saveAnalysis(ctx context.Context, id, fp string, current *domain.MarketAnalysis, result valuation.Analysis) (*domain.MarketAnalysis, error) {
	for attempt := 1; attempt <= maxSaveAttempts; attempt++ {
		next, err := buildAnalysis(id, fp, current, result)
		if err != nil {
			return nil, err
		}

		err = eng.store.SaveAnalysis(ctx, next)
		if err == nil {
			return next, nil
		}
		if !errors.Is(err, store.ErrStaleRevision) {
			return nil, err
		}

		metrics.RevisionConflictsTotal.Inc()
		eng.log.Warn("revision conflict, retrying save",
			"appraisal_id", id,
			"revision", next.Revision,
			"attempt", attempt,
		)

		current, err = eng.store.GetCurrentAnalysis(ctx, id)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("re-reading current analysis: %w", err)
		}
	}
	return nil, fmt.Errorf("gave up after %d revision conflicts", maxSaveAttempts)
}

// buildAnalysis converts a computation result into its persisted form,
// assigning the next revision number after current.
func buildAnalysis(id, fp string, current *domain.MarketAnalysis, result valuation.Analysis) (*domain.MarketAnalysis, error) {
	factors, err := json.Marshal(result.ConfidenceFactors)
	if err != nil {
		return nil, fmt.Errorf("encoding confidence factors: %w", err)
	}
	tr, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encoding calculation trace: %w", err)
	}

	revision := int64(1)
	if current != nil {
		revision = current.Revision + 1
	}

	return &domain.MarketAnalysis{
		AppraisalID:        id,
		Revision:           revision,
		InputFingerprint:   fp,
		MarketValue:        result.MarketValue,
		ComparablesTotal:   result.ComparablesCount,
		ComparablesUsed:    result.UsedCount,
		ComparablesSkipped: result.SkippedCount,
		ReferenceValue:     result.ReferenceValue,
		ValueDifference:    result.ValueDifference,
		ValueDifferencePct: result.ValueDifferencePct,
		Undervalued:        result.Undervalued,
		Confidence:         result.Confidence,
		ConfidenceFactors:  factors,
		Trace:              tr,
		ComputedAt:         time.Now().UTC(),
	}, nil
}

func vehicleData(appr *domain.Appraisal) valuation.VehicleData {
	return valuation.VehicleData{
		Year:      appr.Year,
		Mileage:   appr.Mileage,
		Condition: string(appr.Condition),
		Equipment: appr.Equipment,
	}
}

func compData(comps []domain.Comparable) []valuation.CompData {
	out := make([]valuation.CompData, len(comps))
	for i, c := range comps {
		out[i] = valuation.CompData{
			Ref:           c.ID,
			Year:          c.Year,
			Mileage:       c.Mileage,
			DistanceMiles: c.DistanceMiles,
			Condition:     string(c.Condition),
			Equipment:     c.Equipment,
			ListPrice:     c.ListPrice,
		}
	}
	return out
}
