package engine

import (
	"context"
	"fmt"

	"github.com/valuelab/vehicle-appraisal/internal/metrics"
	"github.com/valuelab/vehicle-appraisal/internal/notify"
	domain "github.com/valuelab/vehicle-appraisal/pkg/types"
)

const batchThreshold = 5

// evaluateAlert decides whether a freshly saved analysis should raise an
// alert. Only transitions into the undervalued state fire unless
// re-alerting is enabled.
func (eng *Engine) evaluateAlert(appr *domain.Appraisal, previous, saved *domain.MarketAnalysis) *notify.AlertPayload {
	if !eng.alertPolicy.Match(saved) {
		return nil
	}
	if !eng.reAlerts && previous != nil && previous.Undervalued {
		return nil
	}
	return buildAlertPayload(appr, saved)
}

// dispatchAlerts delivers the alerts collected during a sweep. Once
// enough pile up they are sent as a batch rather than individually.
func (eng *Engine) dispatchAlerts(ctx context.Context, fired []notify.AlertPayload, source string) {
	if len(fired) == 0 {
		return
	}

	if len(fired) >= batchThreshold {
		if err := eng.notifier.SendBatchAlert(ctx, fired, source); err != nil {
			eng.log.Error("batch alert delivery failed",
				"count", len(fired),
				"source", source,
				"error", err,
			)
			metrics.NotificationFailuresTotal.Inc()
			return
		}
		metrics.AlertsFiredTotal.Add(float64(len(fired)))
		return
	}

	for i := range fired {
		eng.sendSingle(ctx, &fired[i])
	}
}

func (eng *Engine) sendSingle(ctx context.Context, payload *notify.AlertPayload) {
	if err := eng.notifier.SendAlert(ctx, payload); err != nil {
		eng.log.Error("alert delivery failed",
			"appraisal_id", payload.AppraisalID,
			"error", err,
		)
		metrics.NotificationFailuresTotal.Inc()
		return
	}

	metrics.AlertsFiredTotal.Inc()
	eng.log.Info("alert delivered",
		"appraisal_id", payload.AppraisalID,
		"vehicle", payload.Vehicle,
		"difference", payload.Difference,
	)
}

func buildAlertPayload(appr *domain.Appraisal, m *domain.MarketAnalysis) *notify.AlertPayload {
	var pct float64
	if m.ValueDifferencePct != nil {
		pct = *m.ValueDifferencePct
	}
	return &notify.AlertPayload{
		AppraisalID:     appr.ID,
		ClaimRef:        appr.ClaimRef,
		Vehicle:         fmt.Sprintf("%d %s %s", appr.Year, appr.Make, appr.Model),
		MarketValue:     fmtMoney(m.MarketValue),
		ReferenceValue:  fmtMoney(m.ReferenceValue),
		Difference:      fmtMoney(m.ValueDifference),
		DifferencePct:   pct,
		Confidence:      m.Confidence,
		ComparablesUsed: m.ComparablesUsed,
		Revision:        m.Revision,
	}
}

func fmtMoney(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("$%.2f", *v)
}
