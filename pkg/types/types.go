// Package domain defines the core business types for the vehicle appraisal service.
package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Condition represents a normalized vehicle condition rating.
type Condition string

// Condition constants.
const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
)

// Conditions lists the accepted condition ratings in descending order.
var Conditions = []Condition{ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor}

// ParseCondition normalizes raw user input into a Condition.
func ParseCondition(s string) (Condition, error) {
	switch Condition(strings.ToLower(strings.TrimSpace(s))) {
	case ConditionExcellent:
		return ConditionExcellent, nil
	case ConditionGood:
		return ConditionGood, nil
	case ConditionFair:
		return ConditionFair, nil
	case ConditionPoor:
		return ConditionPoor, nil
	}
	return "", fmt.Errorf("unknown condition %q", s)
}

// Valid reports whether c is one of the accepted ratings.
func (c Condition) Valid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

// Appraisal represents a vehicle under appraisal together with its
// reference value and intake metadata.
type Appraisal struct {
	ID       string `json:"id"                 db:"id"`
	ClaimRef string `json:"claim_ref"          db:"claim_ref"`
	VIN      string `json:"vin,omitempty"      db:"vin"`

	// Subject vehicle
	Year      int       `json:"year"      db:"year"`
	Make      string    `json:"make"      db:"make"`
	Model     string    `json:"model"     db:"model"`
	Mileage   int       `json:"mileage"   db:"mileage"`
	Condition Condition `json:"condition" db:"condition"`
	Equipment []string  `json:"equipment" db:"equipment"`

	// Valuation inputs
	ReferenceValue *float64 `json:"reference_value,omitempty" db:"reference_value"`
	Notes          string   `json:"notes,omitempty"           db:"notes"`

	// Timestamps
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Label returns a short human-readable identifier for logs and reports.
func (a *Appraisal) Label() string {
	desc := fmt.Sprintf("%d %s %s", a.Year, a.Make, a.Model)
	if a.ClaimRef != "" {
		return fmt.Sprintf("%s (%s)", desc, a.ClaimRef)
	}
	return desc
}

// Comparable represents a market listing used as a reference point for an
// appraisal. The engine-result columns are filled on each recompute.
type Comparable struct {
	ID          string `json:"id"               db:"id"`
	AppraisalID string `json:"appraisal_id"     db:"appraisal_id"`
	Source      string `json:"source,omitempty" db:"source"`

	// Listing
	Year          int       `json:"year"           db:"year"`
	Make          string    `json:"make"           db:"make"`
	Model         string    `json:"model"          db:"model"`
	Mileage       int       `json:"mileage"        db:"mileage"`
	DistanceMiles float64   `json:"distance_miles" db:"distance_miles"`
	Condition     Condition `json:"condition"      db:"condition"`
	Equipment     []string  `json:"equipment"      db:"equipment"`
	ListPrice     float64   `json:"list_price"     db:"list_price"`

	// Engine results
	QualityScore     *float64        `json:"quality_score,omitempty"     db:"quality_score"`
	QualityBreakdown json.RawMessage `json:"quality_breakdown,omitempty" db:"quality_breakdown"`
	AdjustedPrice    *float64        `json:"adjusted_price,omitempty"    db:"adjusted_price"`
	Adjustments      json.RawMessage `json:"adjustments,omitempty"       db:"adjustments"`
	Excluded         bool            `json:"excluded"                    db:"excluded"`
	ExclusionReason  string          `json:"exclusion_reason,omitempty"  db:"exclusion_reason"`

	// Timestamps
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// MarketAnalysis is a persisted snapshot of one engine run for an appraisal.
// Revision increases monotonically; a newer revision supersedes older ones.
type MarketAnalysis struct {
	ID               string `json:"id"                db:"id"`
	AppraisalID      string `json:"appraisal_id"      db:"appraisal_id"`
	Revision         int64  `json:"revision"          db:"revision"`
	InputFingerprint string `json:"input_fingerprint" db:"input_fingerprint"`

	// Aggregate result
	MarketValue        *float64 `json:"market_value,omitempty"         db:"market_value"`
	ComparablesTotal   int      `json:"comparables_total"              db:"comparables_total"`
	ComparablesUsed    int      `json:"comparables_used"               db:"comparables_used"`
	ComparablesSkipped int      `json:"comparables_skipped"            db:"comparables_skipped"`
	ReferenceValue     *float64 `json:"reference_value,omitempty"      db:"reference_value"`
	ValueDifference    *float64 `json:"value_difference,omitempty"     db:"value_difference"`
	ValueDifferencePct *float64 `json:"value_difference_pct,omitempty" db:"value_difference_pct"`
	Undervalued        bool     `json:"undervalued"                    db:"undervalued"`

	// Confidence
	Confidence        int             `json:"confidence"                   db:"confidence"`
	ConfidenceFactors json.RawMessage `json:"confidence_factors,omitempty" db:"confidence_factors"`

	// Calculation trace for report generation
	Trace json.RawMessage `json:"trace,omitempty" db:"trace"`

	ComputedAt time.Time `json:"computed_at" db:"computed_at"`
}

// SystemState holds a precomputed snapshot of aggregate system metrics.
type SystemState struct {
	AppraisalsTotal       int `json:"appraisals_total"       db:"appraisals_total"`
	AppraisalsUnanalyzed  int `json:"appraisals_unanalyzed"  db:"appraisals_unanalyzed"`
	AppraisalsUndervalued int `json:"appraisals_undervalued" db:"appraisals_undervalued"`
	ComparablesTotal      int `json:"comparables_total"      db:"comparables_total"`
	ComparablesExcluded   int `json:"comparables_excluded"   db:"comparables_excluded"`
	AnalysesTotal         int `json:"analyses_total"         db:"analyses_total"`
	AnalysisRevisions     int `json:"analysis_revisions"     db:"analysis_revisions"`
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}

// AlertPolicy defines when a completed analysis should raise a notification.
type AlertPolicy struct {
	// MinConfidence suppresses alerts for low-confidence results.
	MinConfidence *int `json:"min_confidence,omitempty"`
	// MinDifferencePct requires the value gap to exceed this percentage.
	MinDifferencePct *float64 `json:"min_difference_pct,omitempty"`
	// MinComparables requires at least this many usable comparables.
	MinComparables *int `json:"min_comparables,omitempty"`
}

// Match checks whether an analysis satisfies this policy. Only undervalued
// results are ever alertable.
func (p *AlertPolicy) Match(m *MarketAnalysis) bool {
	if !m.Undervalued {
		return false
	}
	if p.MinConfidence != nil && m.Confidence < *p.MinConfidence {
		return false
	}
	if p.MinDifferencePct != nil {
		if m.ValueDifferencePct == nil || *m.ValueDifferencePct < *p.MinDifferencePct {
			return false
		}
	}
	if p.MinComparables != nil && m.ComparablesUsed < *p.MinComparables {
		return false
	}
	return true
}
