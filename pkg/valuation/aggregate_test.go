package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usedResult(idx int, price, score float64) CompResult {
	return CompResult{
		Index:       idx,
		Quality:     QualityBreakdown{Base: baseScore, Total: score},
		Adjustments: PriceAdjustments{AdjustedPrice: price},
	}
}

func TestAggregate_WeightedMean(t *testing.T) {
	t.Parallel()

	calc := aggregate([]CompResult{
		usedResult(0, 10000, 100),
		usedResult(1, 20000, 50),
	})

	require.NotNil(t, calc.FinalValue)
	// (10000x100 + 20000x50) / 150
	assert.InDelta(t, 13333.3333, *calc.FinalValue, 0.001)
	assert.InDelta(t, 2000000.0, calc.TotalWeightedValue, 0.001)
	assert.InDelta(t, 150.0, calc.TotalWeight, 0.001)
	require.Len(t, calc.Comparables, 2)
	assert.InDelta(t, 1000000.0, calc.Comparables[0].WeightedValue, 0.001)
	assert.NotEmpty(t, calc.Steps)
}

func TestAggregate_EqualWeightsReduceToMean(t *testing.T) {
	t.Parallel()

	calc := aggregate([]CompResult{
		usedResult(0, 9000, 110),
		usedResult(1, 12000, 110),
		usedResult(2, 15000, 110),
	})

	require.NotNil(t, calc.FinalValue)
	assert.InDelta(t, 12000.0, *calc.FinalValue, 0.001)
}

func TestAggregate_NegativeScoreCarriesNoWeight(t *testing.T) {
	t.Parallel()

	calc := aggregate([]CompResult{
		usedResult(0, 10000, 100),
		usedResult(1, 99999, -40),
	})

	require.NotNil(t, calc.FinalValue)
	assert.InDelta(t, 10000.0, *calc.FinalValue, 0.001, "clamped weight excludes the comparable from the average")
	assert.InDelta(t, 100.0, calc.TotalWeight, 0.001)
	require.Len(t, calc.Comparables, 2)
	assert.Equal(t, 0.0, calc.Comparables[1].Weight)
}

func TestAggregate_ZeroTotalWeightFallsBackToMean(t *testing.T) {
	t.Parallel()

	calc := aggregate([]CompResult{
		usedResult(0, 8000, -10),
		usedResult(1, 12000, 0),
	})

	require.NotNil(t, calc.FinalValue)
	assert.InDelta(t, 10000.0, *calc.FinalValue, 0.001)
	assert.Equal(t, 0.0, calc.TotalWeight)
	assert.Contains(t, calc.Steps[len(calc.Steps)-2], "unweighted mean")
}

func TestAggregate_EmptySet(t *testing.T) {
	t.Parallel()

	calc := aggregate(nil)

	assert.Nil(t, calc.FinalValue, "no comparables means no market value, not zero")
	require.Len(t, calc.Steps, 1)
	assert.Contains(t, calc.Steps[0], "no usable comparables")
}

func TestAggregate_SkippedComparablesNarrated(t *testing.T) {
	t.Parallel()

	calc := aggregate([]CompResult{
		{Index: 0, Skipped: true, SkipReason: "mileage -5 is negative"},
		usedResult(1, 15000, 120),
	})

	require.NotNil(t, calc.FinalValue)
	assert.InDelta(t, 15000.0, *calc.FinalValue, 0.001)
	assert.Contains(t, calc.Steps[0], "skipped")
	assert.Len(t, calc.Comparables, 1, "skipped comparables carry no weight row")
}

func TestCompareReference(t *testing.T) {
	t.Parallel()

	ref := func(v float64) *float64 { return &v }

	tests := []struct {
		name            string
		marketValue     *float64
		referenceValue  *float64
		wantDiff        *float64
		wantPct         *float64
		wantUndervalued bool
	}{
		{
			name:            "undervalued past threshold",
			marketValue:     ref(25500),
			referenceValue:  ref(20000),
			wantDiff:        ref(5500),
			wantPct:         ref(27.5),
			wantUndervalued: true,
		},
		{
			name:            "above reference but inside threshold",
			marketValue:     ref(23000),
			referenceValue:  ref(20000),
			wantDiff:        ref(3000),
			wantPct:         ref(15),
			wantUndervalued: false,
		},
		{
			name:            "exactly at threshold is not undervalued",
			marketValue:     ref(24000),
			referenceValue:  ref(20000),
			wantDiff:        ref(4000),
			wantPct:         ref(20),
			wantUndervalued: false,
		},
		{
			name:            "overvalued never flags",
			marketValue:     ref(15000),
			referenceValue:  ref(20000),
			wantDiff:        ref(-5000),
			wantPct:         ref(-25),
			wantUndervalued: false,
		},
		{
			name:           "zero reference leaves percentage undefined",
			marketValue:    ref(15000),
			referenceValue: ref(0),
			wantDiff:       ref(15000),
		},
		{
			name:           "absent reference",
			marketValue:    ref(15000),
			referenceValue: nil,
		},
		{
			name:           "absent market value",
			marketValue:    nil,
			referenceValue: ref(20000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diff, pct, undervalued := compareReference(tt.marketValue, tt.referenceValue, 20)

			if tt.wantDiff == nil {
				assert.Nil(t, diff)
			} else {
				require.NotNil(t, diff)
				assert.InDelta(t, *tt.wantDiff, *diff, 0.001)
			}
			if tt.wantPct == nil {
				assert.Nil(t, pct)
			} else {
				require.NotNil(t, pct)
				assert.InDelta(t, *tt.wantPct, *pct, 0.001)
			}
			assert.Equal(t, tt.wantUndervalued, undervalued)
		})
	}
}

func TestCompareReference_ConfigurableThreshold(t *testing.T) {
	t.Parallel()

	mv, rv := 23000.0, 20000.0
	_, _, undervalued := compareReference(&mv, &rv, 10)
	assert.True(t, undervalued, "15%% gap clears a 10%% threshold")
}
