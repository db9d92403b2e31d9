package valuation

import (
	"fmt"
	"math"
	"sort"
)

// Quality scoring constants. Dollar tables live in Tables; these rates are
// part of the scoring model itself.
const (
	baseScore = 100

	distanceThresholdMiles = 100.0
	distancePenaltyPerMile = 0.1
	distanceFloor          = -20.0

	agePenaltyPerYear = 2.0
	ageFloor          = -10.0

	mileageCloseBonus    = 10.0
	mileageNearPenalty   = -5.0
	mileageFarPenalty    = -10.0
	mileageRemotePenalty = -15.0

	equipmentMatchBonus    = 15.0
	equipmentMissingPoints = -10.0
	equipmentExtraPoints   = 5.0
)

// ScoreQuality computes the relevance of one comparable to the subject
// vehicle: a base of 100 plus named penalty and bonus components. The total
// is unclamped; callers floor it at zero when using it as a weight.
func ScoreQuality(subject VehicleData, comp CompData, t Tables) QualityBreakdown {
	b := QualityBreakdown{Base: baseScore}

	b.Components = append(b.Components, distanceComponent(comp.DistanceMiles))
	b.Components = append(b.Components, ageComponents(subject.Year, comp.Year, t)...)
	b.Components = append(b.Components, mileageComponent(subject.Mileage, comp.Mileage))

	eq, matched, missing, extra := equipmentComponents(subject.Equipment, comp.Equipment)
	b.Components = append(b.Components, eq...)
	b.MatchedEquipment = matched
	b.MissingEquipment = missing
	b.ExtraEquipment = extra

	b.Total = b.Base
	for _, c := range b.Components {
		b.Total += c.Points
	}
	return b
}

// distanceComponent penalizes comparables beyond the search radius.
func distanceComponent(miles float64) Component {
	if miles < 0 || math.IsNaN(miles) {
		miles = 0
	}
	if miles <= distanceThresholdMiles {
		return Component{
			Name:        ComponentDistance,
			Points:      0,
			Explanation: fmt.Sprintf("%.0f miles away, within the %.0f-mile radius", miles, distanceThresholdMiles),
		}
	}
	over := miles - distanceThresholdMiles
	points := math.Max(-distancePenaltyPerMile*over, distanceFloor)
	return Component{
		Name:        ComponentDistance,
		Points:      points,
		Explanation: fmt.Sprintf("%.0f miles away, %.0f beyond the %.0f-mile radius (%s)", miles, over, distanceThresholdMiles, formatPoints(points)),
	}
}

// ageComponents penalizes model-year distance and emits the distinct
// exact-match component when the years line up.
func ageComponents(subjectYear, compYear int, t Tables) []Component {
	diff := compYear - subjectYear
	if diff == 0 {
		return []Component{
			{Name: ComponentAge, Points: 0, Explanation: "same model year as the subject"},
			{Name: ComponentAgeMatch, Points: t.AgeMatchBonus, Explanation: "exact model-year match"},
		}
	}
	years := diff
	relation := "newer than"
	if years < 0 {
		years = -years
		relation = "older than"
	}
	points := math.Max(-agePenaltyPerYear*float64(years), ageFloor)
	return []Component{{
		Name:        ComponentAge,
		Points:      points,
		Explanation: fmt.Sprintf("%d year(s) %s the subject (%s)", years, relation, formatPoints(points)),
	}}
}

// mileageComponent scores mileage similarity as a percentage of the
// subject's mileage. A subject reading zero miles matches only a comparable
// that also reads zero; any other comparable falls in the worst band.
func mileageComponent(subjectMiles, compMiles int) Component {
	if subjectMiles <= 0 {
		if compMiles <= 0 {
			return Component{
				Name:        ComponentMileage,
				Points:      mileageCloseBonus,
				Explanation: "both vehicles read zero miles",
			}
		}
		return Component{
			Name:        ComponentMileage,
			Points:      mileageRemotePenalty,
			Explanation: fmt.Sprintf("subject mileage unknown, comparable reads %d miles", compMiles),
		}
	}

	pct := math.Abs(float64(compMiles-subjectMiles)) / float64(subjectMiles) * 100
	var points float64
	switch {
	case pct <= 20:
		points = mileageCloseBonus
	case pct <= 40:
		points = mileageNearPenalty
	case pct <= 60:
		points = mileageFarPenalty
	default:
		points = mileageRemotePenalty
	}
	return Component{
		Name:        ComponentMileage,
		Points:      points,
		Explanation: fmt.Sprintf("mileage differs by %.1f%% (%s)", pct, formatPoints(points)),
	}
}

// equipmentComponents compares equipment sets. A perfect match earns the
// flat bonus; otherwise missing and extra features are itemized, uncapped.
// The two forms are mutually exclusive.
func equipmentComponents(subjectEq, compEq []string) (comps []Component, matched, missing, extra []string) {
	subjSet := normalizeSet(subjectEq)
	compSet := normalizeSet(compEq)

	for norm, display := range subjSet {
		if _, ok := compSet[norm]; ok {
			matched = append(matched, display)
		} else {
			missing = append(missing, display)
		}
	}
	for norm, display := range compSet {
		if _, ok := subjSet[norm]; !ok {
			extra = append(extra, display)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	sort.Strings(extra)

	if len(missing) == 0 && len(extra) == 0 {
		explanation := "equipment identical to the subject"
		if len(matched) == 0 {
			explanation = "no listed equipment on either vehicle"
		}
		comps = append(comps, Component{
			Name:        ComponentEquipmentMatch,
			Points:      equipmentMatchBonus,
			Explanation: explanation,
		})
		return comps, matched, nil, nil
	}

	for _, f := range missing {
		comps = append(comps, Component{
			Name:        ComponentEquipmentMissing,
			Points:      equipmentMissingPoints,
			Explanation: fmt.Sprintf("missing %s", f),
		})
	}
	for _, f := range extra {
		comps = append(comps, Component{
			Name:        ComponentEquipmentExtra,
			Points:      equipmentExtraPoints,
			Explanation: fmt.Sprintf("has %s, absent from the subject", f),
		})
	}
	return comps, matched, missing, extra
}
