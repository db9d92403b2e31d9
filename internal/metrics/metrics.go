// Package metrics defines Prometheus metrics for the vehicle appraisal service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vappr"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Health probe gauges, set by the metrics middleware.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 when the last liveness probe succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 when the last readiness probe succeeded, 0 otherwise.",
	})
)

// Recompute metrics.
var (
	RecomputesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recomputes_total",
		Help:      "Total number of completed market analysis recomputes.",
	})

	RecomputeErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recompute_errors_total",
		Help:      "Total number of failed recompute attempts.",
	})

	RecomputeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "recompute_duration_seconds",
		Help:      "Duration of market analysis recomputes in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	RecomputeUnchangedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recompute_unchanged_total",
		Help:      "Total number of recomputes skipped because inputs were unchanged.",
	})

	RevisionConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "revision_conflicts_total",
		Help:      "Total number of analysis revision conflicts that forced a retry.",
	})
)

// Scoring metrics.
var (
	QualityScoreDistribution = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "comparable_quality_score_distribution",
		Help:      "Distribution of computed comparable quality scores.",
		Buckets:   prometheus.LinearBuckets(0, 10, 14), // 0, 10, 20, ..., 130
	})
)

// Sweep and retention metrics.
var (
	SweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sweep_duration_seconds",
		Help:      "Duration of stale appraisal sweeps in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	SweepRecomputesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sweep_recomputes_total",
		Help:      "Total number of recomputes triggered by the stale sweep.",
	})

	SweepErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sweep_errors_total",
		Help:      "Total number of sweep cycle errors.",
	})

	AnalysesPrunedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analyses_pruned_total",
		Help:      "Total number of analysis revisions removed by retention pruning.",
	})
)

// Scheduler metrics.
var (
	SchedulerNextSweepTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_sweep_timestamp_seconds",
		Help:      "Unix timestamp of the next scheduled stale sweep.",
	})

	SchedulerNextPruneTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_prune_timestamp_seconds",
		Help:      "Unix timestamp of the next scheduled history prune.",
	})

	SchedulerLockSkipsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scheduler_lock_skips_total",
		Help:      "Total number of job runs skipped because another instance held the lock.",
	})
)

// Alert metrics.
var (
	AlertsFiredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_fired_total",
		Help:      "Total number of undervalued alerts fired.",
	})

	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total number of notification send failures.",
	})
)

// Report metrics.
var (
	ReportDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "report_duration_seconds",
		Help:      "Duration of report rendering in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"format"})

	ReportFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_failures_total",
		Help:      "Total number of report rendering failures.",
	}, []string{"format"})
)
