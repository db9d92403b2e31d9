package engine

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"
	"strings"

	domain "github.com/valuelab/vehicle-appraisal/pkg/types"
	"github.com/valuelab/vehicle-appraisal/pkg/valuation"
)

// fingerprint hashes everything a recompute depends on: the subject
// vehicle, every comparable listing, and the adjustment tables. A stable
// fingerprint means a recompute would reproduce the current analysis, so
// unforced recomputes can skip. Comparable IDs are included so deleting
// and re-adding a listing forces fresh persisted results, and tables are
// included so configuration changes invalidate all analyses.
func fingerprint(appr *domain.Appraisal, comps []domain.Comparable, t valuation.Tables) string {
	h := fnv.New64a()

	fmt.Fprintf(h, "v|%d|%s|%s|%d|%s|%s|",
		appr.Year, appr.Make, appr.Model, appr.Mileage, appr.Condition,
		canonicalSet(appr.Equipment))
	if appr.ReferenceValue != nil {
		fmt.Fprintf(h, "%.2f", *appr.ReferenceValue)
	}

	sorted := make([]domain.Comparable, len(comps))
	copy(sorted, comps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	for _, c := range sorted {
		fmt.Fprintf(h, "\nc|%s|%d|%s|%s|%d|%.1f|%s|%s|%.2f",
			c.ID, c.Year, c.Make, c.Model, c.Mileage, c.DistanceMiles,
			c.Condition, canonicalSet(c.Equipment), c.ListPrice)
	}

	writeTables(h, t)

	return strconv.FormatUint(h.Sum64(), 16)
}

func writeTables(h interface{ Write([]byte) (int, error) }, t valuation.Tables) {
	fmt.Fprintf(h, "\nt|%d|%.2f|%.2f|%.2f",
		t.ValuationYear, t.DefaultEquipmentValue, t.AgeMatchBonus, t.UndervaluedThresholdPct)

	for _, name := range sortedKeys(t.EquipmentValues) {
		fmt.Fprintf(h, "|e:%s=%.2f", name, t.EquipmentValues[name])
	}
	for _, tier := range t.DepreciationTiers {
		fmt.Fprintf(h, "|d:%d=%.4f", tier.MaxAgeYears, tier.RatePerMile)
	}
	for _, name := range sortedKeys(t.ConditionMultipliers) {
		fmt.Fprintf(h, "|m:%s=%.4f", name, t.ConditionMultipliers[name])
	}
}

// canonicalSet renders an equipment list order-independently.
func canonicalSet(features []string) string {
	out := make([]string, len(features))
	copy(out, features)
	sort.Strings(out)
	return strings.Join(out, ",")
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
