package valuation

import "strings"

// DepreciationTier maps a comparable-age band to a per-mile dollar rate.
// MaxAgeYears is inclusive; a negative value means the tier is open-ended.
type DepreciationTier struct {
	MaxAgeYears int
	RatePerMile float64
}

// Tables holds the tunable constants of the valuation engine. All values
// are external configuration; the engine hard-codes no dollar amounts.
type Tables struct {
	// ValuationYear anchors comparable-age calculations so results stay
	// reproducible regardless of when the computation runs.
	ValuationYear int

	// EquipmentValues maps feature names to standard dollar values.
	// Features not listed fall back to DefaultEquipmentValue.
	EquipmentValues       map[string]float64
	DefaultEquipmentValue float64

	// DepreciationTiers must be ordered by ascending MaxAgeYears with an
	// open-ended final tier.
	DepreciationTiers []DepreciationTier

	// ConditionMultipliers is keyed by lowercase condition rating.
	// Unknown ratings resolve to 1.0.
	ConditionMultipliers map[string]float64

	// AgeMatchBonus is the magnitude of the exact-year-match component.
	AgeMatchBonus float64

	// UndervaluedThresholdPct is the percentage gap beyond which a market
	// value above the reference value flags the vehicle as undervalued.
	UndervaluedThresholdPct float64
}

// DefaultTables returns the standard valuation tables anchored at year.
func DefaultTables(year int) Tables {
	return Tables{
		ValuationYear: year,
		EquipmentValues: map[string]float64{
			"Navigation":      1200,
			"Sunroof":         1200,
			"Premium Audio":   800,
			"Sport Package":   1500,
			"Leather Seats":   1000,
			"All-Wheel Drive": 2000,
		},
		DefaultEquipmentValue: 500,
		DepreciationTiers: []DepreciationTier{
			{MaxAgeYears: 3, RatePerMile: 0.25},
			{MaxAgeYears: 7, RatePerMile: 0.15},
			{MaxAgeYears: -1, RatePerMile: 0.05},
		},
		ConditionMultipliers: map[string]float64{
			"excellent": 1.05,
			"good":      1.00,
			"fair":      0.95,
			"poor":      0.85,
		},
		AgeMatchBonus:           0,
		UndervaluedThresholdPct: 20,
	}
}

// equipmentValue looks up a feature's standard dollar value, matching
// names case-insensitively.
func (t Tables) equipmentValue(feature string) float64 {
	norm := normalizeFeature(feature)
	for name, v := range t.EquipmentValues {
		if normalizeFeature(name) == norm {
			return v
		}
	}
	return t.DefaultEquipmentValue
}

// rateForAge returns the per-mile depreciation rate for a comparable age.
func (t Tables) rateForAge(age int) float64 {
	var open *DepreciationTier
	for i := range t.DepreciationTiers {
		tier := &t.DepreciationTiers[i]
		if tier.MaxAgeYears < 0 {
			open = tier
			continue
		}
		if age <= tier.MaxAgeYears {
			return tier.RatePerMile
		}
	}
	if open != nil {
		return open.RatePerMile
	}
	if n := len(t.DepreciationTiers); n > 0 {
		return t.DepreciationTiers[n-1].RatePerMile
	}
	return 0
}

// conditionMultiplier returns the price multiplier for a condition rating.
func (t Tables) conditionMultiplier(condition string) float64 {
	if m, ok := t.ConditionMultipliers[strings.ToLower(strings.TrimSpace(condition))]; ok {
		return m
	}
	return 1.0
}
