package valuation

import (
	"fmt"
	"math"
	"strconv"
)

// aggregate combines per-comparable results into a quality-weighted market
// value, recording every step of the arithmetic as an ordered narrative.
// Skipped comparables contribute a narrative line but no weight.
func aggregate(results []CompResult) CalculationBreakdown {
	calc := CalculationBreakdown{}

	var prices []float64
	for _, r := range results {
		if r.Skipped {
			calc.Steps = append(calc.Steps, fmt.Sprintf("comparable %d skipped: %s", r.Index+1, r.SkipReason))
			continue
		}
		weight := r.Quality.Weight()
		weighted := r.Adjustments.AdjustedPrice * weight
		calc.Comparables = append(calc.Comparables, WeightedValue{
			Ref:           r.Ref,
			Index:         r.Index,
			AdjustedPrice: r.Adjustments.AdjustedPrice,
			Weight:        weight,
			WeightedValue: weighted,
		})
		calc.TotalWeightedValue += weighted
		calc.TotalWeight += weight
		prices = append(prices, r.Adjustments.AdjustedPrice)
		calc.Steps = append(calc.Steps, fmt.Sprintf("comparable %d: %s weighted by quality score %s = %s",
			r.Index+1, formatMoney(r.Adjustments.AdjustedPrice), trimFloat(weight), formatMoney(weighted)))
	}

	if len(prices) == 0 {
		calc.Steps = append(calc.Steps, "no usable comparables; market value not computed")
		return calc
	}

	if calc.TotalWeight > 0 {
		value := calc.TotalWeightedValue / calc.TotalWeight
		calc.FinalValue = &value
		calc.Steps = append(calc.Steps,
			fmt.Sprintf("total weighted value %s over total weight %s", formatMoney(calc.TotalWeightedValue), trimFloat(calc.TotalWeight)),
			fmt.Sprintf("market value = %s / %s = %s", formatMoney(calc.TotalWeightedValue), trimFloat(calc.TotalWeight), formatMoney(value)))
		return calc
	}

	// Every quality score clamped to zero: fall back to the unweighted mean.
	var sum float64
	for _, p := range prices {
		sum += p
	}
	value := sum / float64(len(prices))
	calc.FinalValue = &value
	calc.Steps = append(calc.Steps,
		fmt.Sprintf("all quality scores clamped to zero; using the unweighted mean of %d adjusted prices", len(prices)),
		fmt.Sprintf("market value = %s / %d = %s", formatMoney(sum), len(prices), formatMoney(value)))
	return calc
}

// compareReference derives the value-difference fields against an optional
// third-party reference value. The percentage is undefined when the
// reference is zero or absent, and a vehicle is undervalued only when the
// market value exceeds the reference by more than thresholdPct percent.
func compareReference(marketValue, referenceValue *float64, thresholdPct float64) (diff, pct *float64, undervalued bool) {
	if marketValue == nil || referenceValue == nil {
		return nil, nil, false
	}
	d := *marketValue - *referenceValue
	diff = &d
	if *referenceValue == 0 {
		return diff, nil, false
	}
	p := d / *referenceValue * 100
	pct = &p
	undervalued = d > 0 && math.Abs(p) > thresholdPct
	return diff, pct, undervalued
}

// trimFloat renders a value with at most two decimals, trimming zeros.
func trimFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
