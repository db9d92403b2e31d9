package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, RecomputesTotal)
	assert.NotNil(t, RecomputeErrorsTotal)
	assert.NotNil(t, RecomputeDuration)
	assert.NotNil(t, RecomputeUnchangedTotal)
	assert.NotNil(t, RevisionConflictsTotal)
	assert.NotNil(t, QualityScoreDistribution)
	assert.NotNil(t, SweepDuration)
	assert.NotNil(t, SweepRecomputesTotal)
	assert.NotNil(t, SweepErrorsTotal)
	assert.NotNil(t, AnalysesPrunedTotal)
	assert.NotNil(t, SchedulerNextSweepTimestamp)
	assert.NotNil(t, SchedulerNextPruneTimestamp)
	assert.NotNil(t, SchedulerLockSkipsTotal)
	assert.NotNil(t, AlertsFiredTotal)
	assert.NotNil(t, NotificationFailuresTotal)
	assert.NotNil(t, ReportDuration)
	assert.NotNil(t, ReportFailuresTotal)
}
