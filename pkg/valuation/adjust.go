package valuation

import (
	"fmt"
	"sort"
)

// AdjustPrice normalizes a comparable's list price to what it would be if
// the vehicle shared the subject's mileage, equipment, and condition. The
// result is itemized step by step and clamped at zero. Input validation is
// the caller's job; Compute skips malformed comparables before this runs.
func AdjustPrice(subject VehicleData, comp CompData, t Tables) PriceAdjustments {
	age := t.ValuationYear - comp.Year
	if age < 0 {
		age = 0
	}
	rate := t.rateForAge(age)

	p := PriceAdjustments{
		ListPrice:           comp.ListPrice,
		MileageRate:         rate,
		ConditionMultiplier: t.conditionMultiplier(comp.Condition),
	}

	mileageAdj := mileageAdjustment(subject.Mileage, comp.Mileage, rate, age)
	p.Items = append(p.Items, mileageAdj)

	equipItems, equipTotal := equipmentAdjustments(subject.Equipment, comp.Equipment, t)
	p.Items = append(p.Items, equipItems...)

	running := comp.ListPrice + mileageAdj.Amount + equipTotal
	condAdj := running * (p.ConditionMultiplier - 1)
	p.Items = append(p.Items, Adjustment{
		Type:        AdjustmentCondition,
		Amount:      condAdj,
		Explanation: fmt.Sprintf("%s condition applies a %.2f multiplier (%s)", conditionLabel(comp.Condition), p.ConditionMultiplier, formatMoney(condAdj)),
	})

	adjusted := running + condAdj
	if adjusted < 0 {
		adjusted = 0
		p.Clamped = true
	}
	p.AdjustedPrice = adjusted
	p.TotalAdjustment = adjusted - comp.ListPrice
	return p
}

// mileageAdjustment prices the mileage gap at the age-tiered rate. A
// comparable with more miles than the subject adjusts upward.
func mileageAdjustment(subjectMiles, compMiles int, rate float64, age int) Adjustment {
	diff := compMiles - subjectMiles
	amount := float64(diff) * rate

	var explanation string
	switch {
	case diff > 0:
		explanation = fmt.Sprintf("%d more miles than the subject at %s/mile (vehicle age %d)", diff, formatMoney(rate), age)
	case diff < 0:
		explanation = fmt.Sprintf("%d fewer miles than the subject at %s/mile (vehicle age %d)", -diff, formatMoney(rate), age)
	default:
		explanation = "mileage equal to the subject"
	}
	return Adjustment{Type: AdjustmentMileage, Amount: amount, Explanation: explanation}
}

// equipmentAdjustments itemizes per-feature dollar corrections: features
// the comparable is missing add value, features only it has subtract value.
func equipmentAdjustments(subjectEq, compEq []string, t Tables) (items []Adjustment, total float64) {
	subjSet := normalizeSet(subjectEq)
	compSet := normalizeSet(compEq)

	var missing, extra []string
	for norm, display := range subjSet {
		if _, ok := compSet[norm]; !ok {
			missing = append(missing, display)
		}
	}
	for norm, display := range compSet {
		if _, ok := subjSet[norm]; !ok {
			extra = append(extra, display)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)

	for _, f := range missing {
		v := t.equipmentValue(f)
		items = append(items, Adjustment{
			Type:        AdjustmentMissing,
			Feature:     f,
			Amount:      v,
			Explanation: fmt.Sprintf("comparable lacks %s (%s)", f, formatMoney(v)),
		})
		total += v
	}
	for _, f := range extra {
		v := t.equipmentValue(f)
		items = append(items, Adjustment{
			Type:        AdjustmentExtra,
			Feature:     f,
			Amount:      -v,
			Explanation: fmt.Sprintf("comparable has %s the subject lacks (%s)", f, formatMoney(-v)),
		})
		total -= v
	}
	return items, total
}

// conditionLabel renders a condition rating for explanations, falling back
// to "unrated" for unrecognized input.
func conditionLabel(condition string) string {
	if condition == "" {
		return "unrated"
	}
	return condition
}
