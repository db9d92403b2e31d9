package valuation

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestCompute_SingleCloseComparable(t *testing.T) {
	t.Parallel()

	subject := VehicleData{
		Year:      2020,
		Mileage:   50000,
		Condition: "good",
		Equipment: []string{"Navigation", "Sunroof"},
	}
	comps := []CompData{{
		Ref:           "comp-1",
		Year:          2020,
		Mileage:       48000,
		DistanceMiles: 20,
		Condition:     "good",
		Equipment:     []string{"Navigation", "Sunroof"},
		ListPrice:     25000,
	}}

	a := Compute(subject, comps, nil, testTables())

	assert.Equal(t, 1, a.ComparablesCount)
	assert.Equal(t, 1, a.UsedCount)
	assert.Equal(t, 0, a.SkippedCount)

	require.Len(t, a.Comparables, 1)
	assert.InDelta(t, 125.0, a.Comparables[0].Quality.Total, 0.001)
	assert.InDelta(t, 24500.0, a.Comparables[0].Adjustments.AdjustedPrice, 0.001)

	// A single comparable's adjusted price is the market value.
	require.NotNil(t, a.MarketValue)
	assert.InDelta(t, 24500.0, *a.MarketValue, 0.001)

	assert.Nil(t, a.ValueDifference)
	assert.False(t, a.Undervalued)
}

func TestCompute_UndervaluedAgainstReference(t *testing.T) {
	t.Parallel()

	subject := VehicleData{Year: 2020, Mileage: 50000, Condition: "good"}
	comps := []CompData{{
		Year:      2020,
		Mileage:   50000,
		Condition: "good",
		ListPrice: 25500,
	}}

	a := Compute(subject, comps, floatPtr(20000), testTables())

	require.NotNil(t, a.MarketValue)
	assert.InDelta(t, 25500.0, *a.MarketValue, 0.001)
	require.NotNil(t, a.ValueDifference)
	assert.InDelta(t, 5500.0, *a.ValueDifference, 0.001)
	require.NotNil(t, a.ValueDifferencePct)
	assert.InDelta(t, 27.5, *a.ValueDifferencePct, 0.001)
	assert.True(t, a.Undervalued)
}

func TestCompute_NoComparables(t *testing.T) {
	t.Parallel()

	subject := VehicleData{Year: 2020, Mileage: 50000, Condition: "good"}

	a := Compute(subject, nil, floatPtr(20000), testTables())

	assert.Nil(t, a.MarketValue, "empty set carries no market value")
	assert.Equal(t, 0, a.Confidence)
	assert.Equal(t, 0, a.ComparablesCount)
	assert.False(t, a.Undervalued)
	assert.Nil(t, a.ValueDifference)
}

func TestCompute_SkipsMalformedComparables(t *testing.T) {
	t.Parallel()

	subject := VehicleData{Year: 2020, Mileage: 50000, Condition: "good"}
	comps := []CompData{
		{Ref: "bad-mileage", Year: 2020, Mileage: -1, ListPrice: 20000},
		{Ref: "bad-year", Year: 0, Mileage: 50000, ListPrice: 20000},
		{Ref: "bad-price", Year: 2020, Mileage: 50000, ListPrice: -100},
		{Ref: "nan-price", Year: 2020, Mileage: 50000, ListPrice: math.NaN()},
		{Ref: "ok", Year: 2020, Mileage: 50000, Condition: "good", ListPrice: 21000},
	}

	a := Compute(subject, comps, nil, testTables())

	assert.Equal(t, 5, a.ComparablesCount)
	assert.Equal(t, 1, a.UsedCount)
	assert.Equal(t, 4, a.SkippedCount)

	require.Len(t, a.Comparables, 5)
	assert.True(t, a.Comparables[0].Skipped)
	assert.Contains(t, a.Comparables[0].SkipReason, "negative")
	assert.True(t, a.Comparables[1].Skipped)
	assert.Contains(t, a.Comparables[1].SkipReason, "model year")
	assert.True(t, a.Comparables[3].Skipped)
	assert.Contains(t, a.Comparables[3].SkipReason, "finite")
	assert.False(t, a.Comparables[4].Skipped)

	// The one good comparable still produces a market value.
	require.NotNil(t, a.MarketValue)
	assert.InDelta(t, 21000.0, *a.MarketValue, 0.001)
}

func TestCompute_ZeroListPriceScored(t *testing.T) {
	t.Parallel()

	// A $0 list price is unusual but well-formed; only negative prices
	// are malformed.
	subject := VehicleData{Year: 2020, Mileage: 50000, Condition: "good"}
	comps := []CompData{
		{Ref: "free", Year: 2020, Mileage: 50000, Condition: "good", ListPrice: 0},
	}

	a := Compute(subject, comps, nil, testTables())

	assert.Equal(t, 1, a.UsedCount)
	assert.Equal(t, 0, a.SkippedCount)
	require.Len(t, a.Comparables, 1)
	assert.False(t, a.Comparables[0].Skipped)
	require.NotNil(t, a.MarketValue)
	assert.InDelta(t, 0.0, *a.MarketValue, 0.001)
}

func TestCompute_AllComparablesMalformed(t *testing.T) {
	t.Parallel()

	subject := VehicleData{Year: 2020, Mileage: 50000, Condition: "good"}
	comps := []CompData{
		{Year: 2020, Mileage: -10, ListPrice: 9000},
		{Year: -3, Mileage: 10000, ListPrice: 9000},
	}

	a := Compute(subject, comps, nil, testTables())

	assert.Nil(t, a.MarketValue)
	assert.Equal(t, 0, a.Confidence)
	assert.Equal(t, 2, a.SkippedCount)
}

func TestCompute_Deterministic(t *testing.T) {
	t.Parallel()

	subject := VehicleData{
		Year:      2017,
		Mileage:   80000,
		Condition: "fair",
		Equipment: []string{"Sunroof", "Leather Seats"},
	}
	comps := []CompData{
		{Ref: "a", Year: 2018, Mileage: 70000, DistanceMiles: 45, Condition: "good", Equipment: []string{"Sunroof"}, ListPrice: 14000},
		{Ref: "b", Year: 2016, Mileage: 95000, DistanceMiles: 180, Condition: "fair", Equipment: []string{"Sunroof", "Leather Seats", "Navigation"}, ListPrice: 12500},
		{Ref: "c", Year: 2015, Mileage: 130000, DistanceMiles: 320, Condition: "poor", Equipment: nil, ListPrice: 8000},
	}

	first := Compute(subject, comps, floatPtr(11000), testTables())
	second := Compute(subject, comps, floatPtr(11000), testTables())

	// Pure function: identical inputs give byte-identical results.
	fj, err := json.Marshal(first)
	require.NoError(t, err)
	sj, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(fj), string(sj))
}

func TestCompute_CalculationNarrativeOrder(t *testing.T) {
	t.Parallel()

	subject := VehicleData{Year: 2020, Mileage: 50000, Condition: "good"}
	comps := []CompData{
		{Year: 2020, Mileage: 48000, DistanceMiles: 10, Condition: "good", ListPrice: 21000},
		{Year: 2019, Mileage: 55000, DistanceMiles: 60, Condition: "good", ListPrice: 19500},
	}

	a := Compute(subject, comps, nil, testTables())

	steps := a.Calculation.Steps
	require.GreaterOrEqual(t, len(steps), 4)
	assert.Contains(t, steps[0], "comparable 1")
	assert.Contains(t, steps[1], "comparable 2")
	assert.Contains(t, steps[len(steps)-2], "total weighted value")
	assert.Contains(t, steps[len(steps)-1], "market value =")
}

func TestCompute_ConfidenceUsesOnlyUsableComparables(t *testing.T) {
	t.Parallel()

	subject := VehicleData{Year: 2020, Mileage: 50000, Condition: "good"}
	comps := []CompData{
		{Year: 2020, Mileage: 50000, Condition: "good", ListPrice: 20000},
		{Year: 2020, Mileage: 51000, Condition: "good", ListPrice: 20400},
		{Year: 2020, Mileage: -5, Condition: "good", ListPrice: 20000},
	}

	a := Compute(subject, comps, nil, testTables())

	// Two usable comparables: base 40, consistency bonuses apply on top.
	assert.Equal(t, 2.0, a.ConfidenceFactors.ComparableCount.Value)
	assert.Equal(t, 40, a.ConfidenceFactors.ComparableCount.Points)
}

func TestCompute_WeightMonotonicity(t *testing.T) {
	t.Parallel()

	subject := VehicleData{Year: 2020, Mileage: 50000, Condition: "good", Equipment: []string{"Navigation"}}

	// Identical listings except quality: the better-matched comparable
	// pulls the market value toward its own adjusted price.
	cheapFar := CompData{Year: 2014, Mileage: 140000, DistanceMiles: 400, ListPrice: 10000, Condition: "good"}
	closeMatch := CompData{Year: 2020, Mileage: 50000, DistanceMiles: 5, Equipment: []string{"Navigation"}, ListPrice: 20000, Condition: "good"}

	a := Compute(subject, []CompData{cheapFar, closeMatch}, nil, testTables())

	require.NotNil(t, a.MarketValue)
	closePrice := a.Comparables[1].Adjustments.AdjustedPrice
	farPrice := a.Comparables[0].Adjustments.AdjustedPrice
	assert.Greater(t, math.Abs(farPrice-*a.MarketValue), math.Abs(closePrice-*a.MarketValue),
		"market value should sit nearer the higher-quality comparable")
}
