package valuation

import (
	"fmt"
	"math"
)

// Confidence bonus thresholds.
const (
	confidenceCap = 95

	qualityStddevTight = 10.0
	qualityStddevLoose = 20.0

	priceCVTight = 0.15
	priceCVLoose = 0.25
)

// EstimateConfidence derives a 0-95 confidence level from the number of
// usable comparables and the statistical spread of their quality scores
// and adjusted prices. Both slices must be parallel over the same
// comparables.
func EstimateConfidence(qualityScores, adjustedPrices []float64) (int, ConfidenceFactors) {
	n := len(qualityScores)
	if n == 0 {
		return 0, ConfidenceFactors{
			ComparableCount:      ConfidenceFactor{Explanation: "no usable comparables"},
			QualityScoreVariance: ConfidenceFactor{Explanation: "no quality scores to measure"},
			PriceVariance:        ConfidenceFactor{Explanation: "no adjusted prices to measure"},
		}
	}

	base := countConfidence(n)
	basePoints := int(math.Round(base))
	factors := ConfidenceFactors{
		ComparableCount: ConfidenceFactor{
			Points:      basePoints,
			Value:       float64(n),
			Explanation: fmt.Sprintf("%d usable comparable(s)", n),
		},
	}

	factors.QualityScoreVariance = qualityConsistency(qualityScores)
	factors.PriceVariance = priceConsistency(adjustedPrices)

	level := basePoints + factors.QualityScoreVariance.Points + factors.PriceVariance.Points
	if level > confidenceCap {
		level = confidenceCap
	}
	return level, factors
}

// countConfidence maps comparable count to base confidence. Above five the
// curve rises smoothly toward 90 and never reaches it.
func countConfidence(n int) float64 {
	switch {
	case n <= 0:
		return 0
	case n == 1:
		return 20
	case n == 2:
		return 40
	case n <= 4:
		return 65
	default:
		return 90 - 10/float64(n-4)
	}
}

// qualityConsistency rewards tightly clustered quality scores.
func qualityConsistency(scores []float64) ConfidenceFactor {
	sd := stddev(scores)
	f := ConfidenceFactor{Value: sd}
	switch {
	case sd < qualityStddevTight:
		f.Points = 20
		f.Explanation = fmt.Sprintf("quality scores tightly clustered (stddev %.1f)", sd)
	case sd <= qualityStddevLoose:
		f.Points = 10
		f.Explanation = fmt.Sprintf("quality scores moderately clustered (stddev %.1f)", sd)
	default:
		f.Explanation = fmt.Sprintf("quality scores widely spread (stddev %.1f)", sd)
	}
	return f
}

// priceConsistency rewards a low coefficient of variation across adjusted
// prices. A zero mean makes the spread unmeasurable and earns no bonus.
func priceConsistency(prices []float64) ConfidenceFactor {
	m := mean(prices)
	if m == 0 {
		return ConfidenceFactor{Explanation: "mean adjusted price is zero; spread not measurable"}
	}
	cv := stddev(prices) / m
	f := ConfidenceFactor{Value: cv}
	switch {
	case cv < priceCVTight:
		f.Points = 20
		f.Explanation = fmt.Sprintf("adjusted prices vary by %.1f%% of the mean", cv*100)
	case cv <= priceCVLoose:
		f.Points = 10
		f.Explanation = fmt.Sprintf("adjusted prices vary by %.1f%% of the mean", cv*100)
	default:
		f.Explanation = fmt.Sprintf("adjusted prices widely spread (%.1f%% of the mean)", cv*100)
	}
	return f
}

// mean returns the arithmetic mean of vs, or 0 for an empty slice.
func mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

// stddev returns the population standard deviation of vs.
func stddev(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	m := mean(vs)
	var sumSq float64
	for _, v := range vs {
		d := v - m
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(vs)))
}
