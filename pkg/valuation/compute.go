// Package valuation implements the comparable-based market value engine
// for vehicle appraisals: it scores each comparable's relevance to the
// subject vehicle, normalizes each list price for mileage, equipment, and
// condition differences, aggregates the results into a quality-weighted
// market value, and estimates a confidence level from comparable count and
// statistical spread. The engine is a pure synchronous computation; all
// tunable dollar tables arrive through Tables and it performs no I/O and
// reads no clocks.
package valuation

import (
	"fmt"
	"math"
)

// Compute runs the full market analysis for a subject vehicle against a
// set of comparables. Malformed comparables are skipped and flagged rather
// than aborting the computation; an empty or fully skipped set yields an
// analysis with no market value and zero confidence. Identical inputs
// always produce identical results.
func Compute(subject VehicleData, comps []CompData, referenceValue *float64, t Tables) Analysis {
	a := Analysis{
		ComparablesCount: len(comps),
		ReferenceValue:   referenceValue,
	}

	results := make([]CompResult, 0, len(comps))
	var scores, prices []float64
	for i, c := range comps {
		r := CompResult{Ref: c.Ref, Index: i}
		if reason := validateComp(c); reason != "" {
			r.Skipped = true
			r.SkipReason = reason
			a.SkippedCount++
			results = append(results, r)
			continue
		}
		r.Quality = ScoreQuality(subject, c, t)
		r.Adjustments = AdjustPrice(subject, c, t)
		scores = append(scores, r.Quality.Total)
		prices = append(prices, r.Adjustments.AdjustedPrice)
		a.UsedCount++
		results = append(results, r)
	}
	a.Comparables = results

	a.Calculation = aggregate(results)
	a.MarketValue = a.Calculation.FinalValue

	a.ValueDifference, a.ValueDifferencePct, a.Undervalued =
		compareReference(a.MarketValue, referenceValue, t.UndervaluedThresholdPct)

	a.Confidence, a.ConfidenceFactors = EstimateConfidence(scores, prices)
	return a
}

// validateComp reports why a comparable cannot be scored, or "" when it is
// well-formed.
func validateComp(c CompData) string {
	switch {
	case math.IsNaN(c.ListPrice) || math.IsInf(c.ListPrice, 0):
		return "list price is not a finite number"
	case math.IsNaN(c.DistanceMiles) || math.IsInf(c.DistanceMiles, 0):
		return "distance is not a finite number"
	case c.Year <= 0:
		return fmt.Sprintf("model year %d is not valid", c.Year)
	case c.Mileage < 0:
		return fmt.Sprintf("mileage %d is negative", c.Mileage)
	case c.ListPrice < 0:
		return fmt.Sprintf("list price %s is negative", formatMoney(c.ListPrice))
	}
	return ""
}
