package valuation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// VehicleData holds the subject-vehicle fields needed for valuation
// (decoupled from DB model).
type VehicleData struct {
	Year      int
	Mileage   int
	Condition string
	Equipment []string
}

// CompData holds one comparable listing's fields needed for valuation.
// Ref is an opaque caller identifier carried through into results.
type CompData struct {
	Ref           string
	Year          int
	Mileage       int
	DistanceMiles float64
	Condition     string
	Equipment     []string
	ListPrice     float64
}

// Component is one named penalty or bonus in a quality breakdown.
type Component struct {
	Name        string  `json:"name"`
	Points      float64 `json:"points"`
	Explanation string  `json:"explanation"`
}

// Quality component names.
const (
	ComponentDistance         = "distance"
	ComponentAge              = "age"
	ComponentAgeMatch         = "age_match"
	ComponentMileage          = "mileage"
	ComponentEquipmentMatch   = "equipment_match"
	ComponentEquipmentMissing = "equipment_missing"
	ComponentEquipmentExtra   = "equipment_extra"
)

// QualityBreakdown details the named components of a comparable's quality
// score. Total is unclamped; negative totals clamp to zero only when used
// as an aggregation weight.
type QualityBreakdown struct {
	Base             float64     `json:"base"`
	Components       []Component `json:"components"`
	MatchedEquipment []string    `json:"matched_equipment,omitempty"`
	MissingEquipment []string    `json:"missing_equipment,omitempty"`
	ExtraEquipment   []string    `json:"extra_equipment,omitempty"`
	Total            float64     `json:"total"`
}

// Weight returns the breakdown's total floored at zero, the value used in
// market-value aggregation.
func (b *QualityBreakdown) Weight() float64 {
	return math.Max(b.Total, 0)
}

// AdjustmentType categorizes one itemized price adjustment.
type AdjustmentType string

// Adjustment type constants.
const (
	AdjustmentMileage   AdjustmentType = "mileage"
	AdjustmentMissing   AdjustmentType = "missing"
	AdjustmentExtra     AdjustmentType = "extra"
	AdjustmentCondition AdjustmentType = "condition"
)

// Adjustment is one itemized step of the price normalization.
type Adjustment struct {
	Type        AdjustmentType `json:"type"`
	Feature     string         `json:"feature,omitempty"`
	Amount      float64        `json:"amount"`
	Explanation string         `json:"explanation"`
}

// PriceAdjustments details how a comparable's list price was normalized to
// the subject vehicle.
type PriceAdjustments struct {
	ListPrice           float64      `json:"list_price"`
	MileageRate         float64      `json:"mileage_rate"`
	ConditionMultiplier float64      `json:"condition_multiplier"`
	Items               []Adjustment `json:"items"`
	TotalAdjustment     float64      `json:"total_adjustment"`
	AdjustedPrice       float64      `json:"adjusted_price"`
	Clamped             bool         `json:"clamped,omitempty"`
}

// CompResult carries the engine outputs for one comparable.
type CompResult struct {
	Ref         string           `json:"ref,omitempty"`
	Index       int              `json:"index"`
	Skipped     bool             `json:"skipped,omitempty"`
	SkipReason  string           `json:"skip_reason,omitempty"`
	Quality     QualityBreakdown `json:"quality"`
	Adjustments PriceAdjustments `json:"adjustments"`
}

// WeightedValue is one comparable's contribution to the aggregate.
type WeightedValue struct {
	Ref           string  `json:"ref,omitempty"`
	Index         int     `json:"index"`
	AdjustedPrice float64 `json:"adjusted_price"`
	Weight        float64 `json:"weight"`
	WeightedValue float64 `json:"weighted_value"`
}

// CalculationBreakdown records the aggregation arithmetic and an ordered
// narrative suitable for audit and report rendering.
type CalculationBreakdown struct {
	Comparables        []WeightedValue `json:"comparables,omitempty"`
	TotalWeightedValue float64         `json:"total_weighted_value"`
	TotalWeight        float64         `json:"total_weight"`
	FinalValue         *float64        `json:"final_value,omitempty"`
	Steps              []string        `json:"steps"`
}

// ConfidenceFactor is one measured contribution to the confidence level.
type ConfidenceFactor struct {
	Points      int     `json:"points"`
	Value       float64 `json:"value"`
	Explanation string  `json:"explanation"`
}

// ConfidenceFactors itemizes the confidence estimate.
type ConfidenceFactors struct {
	ComparableCount      ConfidenceFactor `json:"comparable_count"`
	QualityScoreVariance ConfidenceFactor `json:"quality_score_variance"`
	PriceVariance        ConfidenceFactor `json:"price_variance"`
}

// Analysis is the complete result of one market value computation.
type Analysis struct {
	MarketValue        *float64             `json:"market_value,omitempty"`
	ComparablesCount   int                  `json:"comparables_count"`
	UsedCount          int                  `json:"used_count"`
	SkippedCount       int                  `json:"skipped_count"`
	Comparables        []CompResult         `json:"comparables"`
	Calculation        CalculationBreakdown `json:"calculation"`
	Confidence         int                  `json:"confidence"`
	ConfidenceFactors  ConfidenceFactors    `json:"confidence_factors"`
	ReferenceValue     *float64             `json:"reference_value,omitempty"`
	ValueDifference    *float64             `json:"value_difference,omitempty"`
	ValueDifferencePct *float64             `json:"value_difference_pct,omitempty"`
	Undervalued        bool                 `json:"undervalued"`
}

// normalizeFeature canonicalizes an equipment feature name for set
// comparison and table lookup.
func normalizeFeature(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// normalizeSet maps normalized feature names to their first display
// spelling, collapsing duplicates.
func normalizeSet(features []string) map[string]string {
	set := make(map[string]string, len(features))
	for _, f := range features {
		norm := normalizeFeature(f)
		if norm == "" {
			continue
		}
		if _, ok := set[norm]; !ok {
			set[norm] = strings.Join(strings.Fields(f), " ")
		}
	}
	return set
}

// formatMoney renders a dollar amount for explanations, e.g. "$1200.00"
// or "-$500.00".
func formatMoney(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", v)
}

// formatPoints renders a signed point value with no trailing zeros,
// e.g. "+10" or "-7.5".
func formatPoints(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v >= 0 {
		return "+" + s
	}
	return s
}
