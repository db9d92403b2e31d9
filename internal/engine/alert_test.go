package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/valuelab/vehicle-appraisal/internal/metrics"
	"github.com/valuelab/vehicle-appraisal/internal/notify"
	notifyMocks "github.com/valuelab/vehicle-appraisal/internal/notify/mocks"
	storeMocks "github.com/valuelab/vehicle-appraisal/internal/store/mocks"
	domain "github.com/valuelab/vehicle-appraisal/pkg/types"
)

// testAnalysis returns a saved undervalued analysis with round numbers so
// payload formatting is easy to assert against.
func testAnalysis() *domain.MarketAnalysis {
	market := 26150.0
	reference := 20000.0
	diff := 6150.0
	pct := 30.75
	return &domain.MarketAnalysis{
		AppraisalID:        "appr-1",
		Revision:           2,
		MarketValue:        &market,
		ReferenceValue:     &reference,
		ValueDifference:    &diff,
		ValueDifferencePct: &pct,
		Undervalued:        true,
		Confidence:         70,
		ComparablesUsed:    3,
	}
}

func TestEvaluateAlert_FiresOnFirstUndervalued(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	payload := eng.evaluateAlert(testAppraisal(), nil, testAnalysis())
	require.NotNil(t, payload)

	assert.Equal(t, "appr-1", payload.AppraisalID)
	assert.Equal(t, "CLM-2024-0101", payload.ClaimRef)
	assert.Equal(t, "2020 Honda Accord", payload.Vehicle)
	assert.Equal(t, "$26150.00", payload.MarketValue)
	assert.Equal(t, "$20000.00", payload.ReferenceValue)
	assert.Equal(t, "$6150.00", payload.Difference)
	assert.InDelta(t, 30.75, payload.DifferencePct, 0.001)
	assert.Equal(t, 70, payload.Confidence)
	assert.Equal(t, 3, payload.ComparablesUsed)
	assert.Equal(t, int64(2), payload.Revision)
}

func TestEvaluateAlert_NotUndervalued(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	saved := testAnalysis()
	saved.Undervalued = false

	assert.Nil(t, eng.evaluateAlert(testAppraisal(), nil, saved))
}

func TestEvaluateAlert_SuppressedWhileStillUndervalued(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	previous := &domain.MarketAnalysis{Revision: 1, Undervalued: true}
	assert.Nil(t, eng.evaluateAlert(testAppraisal(), previous, testAnalysis()))

	// A previous analysis that was not undervalued is a transition.
	previous.Undervalued = false
	assert.NotNil(t, eng.evaluateAlert(testAppraisal(), previous, testAnalysis()))
}

func TestEvaluateAlert_ReAlertsIgnorePrevious(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := NewEngine(ms, mn,
		WithLogger(quietLogger()),
		WithReAlerts(true),
	)

	previous := &domain.MarketAnalysis{Revision: 1, Undervalued: true}
	assert.NotNil(t, eng.evaluateAlert(testAppraisal(), previous, testAnalysis()))
}

func TestEvaluateAlert_PolicyThresholds(t *testing.T) {
	t.Parallel()

	minConf80 := 80
	minConf60 := 60
	minPct40 := 40.0
	minPct20 := 20.0
	minComps5 := 5
	minComps3 := 3

	tests := []struct {
		name   string
		policy domain.AlertPolicy
		want   bool
	}{
		{
			name:   "empty policy passes",
			policy: domain.AlertPolicy{},
			want:   true,
		},
		{
			name:   "confidence below floor",
			policy: domain.AlertPolicy{MinConfidence: &minConf80},
			want:   false,
		},
		{
			name:   "confidence above floor",
			policy: domain.AlertPolicy{MinConfidence: &minConf60},
			want:   true,
		},
		{
			name:   "difference below floor",
			policy: domain.AlertPolicy{MinDifferencePct: &minPct40},
			want:   false,
		},
		{
			name:   "difference above floor",
			policy: domain.AlertPolicy{MinDifferencePct: &minPct20},
			want:   true,
		},
		{
			name:   "too few comparables",
			policy: domain.AlertPolicy{MinComparables: &minComps5},
			want:   false,
		},
		{
			name:   "enough comparables",
			policy: domain.AlertPolicy{MinComparables: &minComps3},
			want:   true,
		},
		{
			name: "all thresholds together",
			policy: domain.AlertPolicy{
				MinConfidence:    &minConf60,
				MinDifferencePct: &minPct20,
				MinComparables:   &minComps3,
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			mn := notifyMocks.NewMockNotifier(t)
			eng := NewEngine(ms, mn,
				WithLogger(quietLogger()),
				WithAlertPolicy(tt.policy),
			)

			payload := eng.evaluateAlert(testAppraisal(), nil, testAnalysis())
			if tt.want {
				assert.NotNil(t, payload)
			} else {
				assert.Nil(t, payload)
			}
		})
	}
}

func TestDispatchAlerts_Empty(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	// No notifier expectations; nothing should be sent.
	eng.dispatchAlerts(context.Background(), nil, "stale sweep")
}

func TestDispatchAlerts_SendsIndividuallyBelowThreshold(t *testing.T) {
	// Not parallel: checks the global alerts-fired counter.

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	fired := []notify.AlertPayload{
		{AppraisalID: "appr-1", Vehicle: "2020 Honda Accord"},
		{AppraisalID: "appr-2", Vehicle: "2019 Toyota Camry"},
	}

	firedBefore := ptestutil.ToFloat64(metrics.AlertsFiredTotal)

	mn.EXPECT().SendAlert(mock.Anything, mock.Anything).Return(nil).Times(2)

	eng.dispatchAlerts(context.Background(), fired, "stale sweep")

	assert.Equal(t, firedBefore+2, ptestutil.ToFloat64(metrics.AlertsFiredTotal))
}

func TestDispatchAlerts_BatchesAtThreshold(t *testing.T) {
	// Not parallel: checks the global alerts-fired counter.

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	fired := make([]notify.AlertPayload, batchThreshold)
	for i := range fired {
		fired[i] = notify.AlertPayload{AppraisalID: fmt.Sprintf("appr-%d", i+1)}
	}

	firedBefore := ptestutil.ToFloat64(metrics.AlertsFiredTotal)

	mn.EXPECT().
		SendBatchAlert(mock.Anything, mock.MatchedBy(func(alerts []notify.AlertPayload) bool {
			return len(alerts) == batchThreshold
		}), "stale sweep").
		Return(nil).
		Once()

	eng.dispatchAlerts(context.Background(), fired, "stale sweep")

	assert.Equal(t, firedBefore+float64(batchThreshold), ptestutil.ToFloat64(metrics.AlertsFiredTotal))
}

func TestDispatchAlerts_BatchFailureCounted(t *testing.T) {
	// Not parallel: checks the global alert counters.

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	fired := make([]notify.AlertPayload, batchThreshold)

	firedBefore := ptestutil.ToFloat64(metrics.AlertsFiredTotal)
	failuresBefore := ptestutil.ToFloat64(metrics.NotificationFailuresTotal)

	mn.EXPECT().
		SendBatchAlert(mock.Anything, mock.Anything, "stale sweep").
		Return(errors.New("discord 429")).
		Once()

	// Should not panic; the whole batch counts as one failure.
	eng.dispatchAlerts(context.Background(), fired, "stale sweep")

	assert.Equal(t, firedBefore, ptestutil.ToFloat64(metrics.AlertsFiredTotal))
	assert.Equal(t, failuresBefore+1, ptestutil.ToFloat64(metrics.NotificationFailuresTotal))
}

func TestFmtMoney(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", fmtMoney(nil))

	v := 12345.678
	assert.Equal(t, "$12345.68", fmtMoney(&v))

	zero := 0.0
	assert.Equal(t, "$0.00", fmtMoney(&zero))
}
