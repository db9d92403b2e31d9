// Package report renders appraisal valuation reports as markdown, HTML,
// and PDF from the persisted analysis trace.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	domain "github.com/valuelab/vehicle-appraisal/pkg/types"
	"github.com/valuelab/vehicle-appraisal/pkg/valuation"
)

// ErrNoTrace is returned when an analysis carries no calculation trace.
var ErrNoTrace = errors.New("analysis has no calculation trace")

// BuildMarkdown renders the full appraisal report for one analysis revision.
// Comparables are joined to the trace by ID; listings added or removed since
// the analysis ran degrade gracefully to their trace reference.
func BuildMarkdown(appr *domain.Appraisal, comps []domain.Comparable, analysis *domain.MarketAnalysis) (string, error) {
	if len(analysis.Trace) == 0 {
		return "", ErrNoTrace
	}
	var trace valuation.Analysis
	if err := json.Unmarshal(analysis.Trace, &trace); err != nil {
		return "", fmt.Errorf("parsing analysis trace: %w", err)
	}

	byID := make(map[string]*domain.Comparable, len(comps))
	for i := range comps {
		byID[comps[i].ID] = &comps[i]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Vehicle Appraisal Report\n\n")
	fmt.Fprintf(&b, "- Vehicle: %d %s %s\n", appr.Year, appr.Make, appr.Model)
	if appr.ClaimRef != "" {
		fmt.Fprintf(&b, "- Claim: %s\n", appr.ClaimRef)
	}
	if appr.VIN != "" {
		fmt.Fprintf(&b, "- VIN: %s\n", appr.VIN)
	}
	fmt.Fprintf(&b, "- Mileage: %d mi\n", appr.Mileage)
	fmt.Fprintf(&b, "- Condition: %s\n", appr.Condition)
	fmt.Fprintf(&b, "- Equipment: %s\n", joinOrNone(appr.Equipment))
	fmt.Fprintf(&b, "- Analysis revision: %d\n", analysis.Revision)
	fmt.Fprintf(&b, "- Computed: %s\n\n", analysis.ComputedAt.UTC().Format("2006-01-02 15:04:05 MST"))

	writeMarketValue(&b, &trace)
	writeComparables(&b, &trace, byID)
	writeConfidence(&b, &trace)
	writeCalculation(&b, &trace)

	fmt.Fprintf(&b, "## Appendix\n\n")
	fmt.Fprintf(&b, "### Calculation Trace (JSON)\n\n```json\n%s\n```\n", prettyJSON(&trace))

	return b.String(), nil
}

func writeMarketValue(b *strings.Builder, trace *valuation.Analysis) {
	fmt.Fprintf(b, "## Market Value\n\n")
	if trace.MarketValue == nil {
		fmt.Fprintf(b, "No market value could be computed: none of the %d comparables were usable.\n\n",
			trace.ComparablesCount)
		return
	}
	fmt.Fprintf(b, "Estimated market value: **%s**\n\n", fmtMoney(*trace.MarketValue))
	fmt.Fprintf(b, "- Comparables: %d used, %d skipped (%d total)\n",
		trace.UsedCount, trace.SkippedCount, trace.ComparablesCount)
	fmt.Fprintf(b, "- Confidence: %d/100\n", trace.Confidence)

	if trace.ReferenceValue != nil {
		fmt.Fprintf(b, "- Reference value: %s\n", fmtMoney(*trace.ReferenceValue))
		if trace.ValueDifference != nil {
			fmt.Fprintf(b, "- Difference: %s", fmtMoney(*trace.ValueDifference))
			if trace.ValueDifferencePct != nil {
				fmt.Fprintf(b, " (%+.1f%%)", *trace.ValueDifferencePct)
			}
			b.WriteString("\n")
		}
		if trace.Undervalued {
			fmt.Fprintf(b, "- Verdict: **Undervalued** relative to the reference value\n")
		} else {
			fmt.Fprintf(b, "- Verdict: within expected range of the reference value\n")
		}
	}
	b.WriteString("\n")
}

func writeComparables(b *strings.Builder, trace *valuation.Analysis, byID map[string]*domain.Comparable) {
	fmt.Fprintf(b, "## Comparable Vehicles\n\n")
	if len(trace.Comparables) == 0 {
		fmt.Fprintf(b, "No comparables were recorded for this analysis.\n\n")
		return
	}

	fmt.Fprintf(b, "| # | Listing | Mileage | Distance | Condition | List Price | Adjusted | Quality |\n")
	fmt.Fprintf(b, "|---|---------|--------:|---------:|-----------|-----------:|---------:|--------:|\n")
	for _, cr := range trace.Comparables {
		comp := byID[cr.Ref]
		if cr.Skipped {
			fmt.Fprintf(b, "| %d | %s | %s | %s | %s | %s | excluded | excluded |\n",
				cr.Index+1, describeComp(comp, cr.Ref),
				compMileage(comp), compDistance(comp), compCondition(comp), compListPrice(comp))
			continue
		}
		fmt.Fprintf(b, "| %d | %s | %s | %s | %s | %s | %s | %.1f |\n",
			cr.Index+1, describeComp(comp, cr.Ref),
			compMileage(comp), compDistance(comp), compCondition(comp),
			fmtMoney(cr.Adjustments.ListPrice),
			fmtMoney(cr.Adjustments.AdjustedPrice), cr.Quality.Total)
	}
	b.WriteString("\n")

	for _, cr := range trace.Comparables {
		writeCompDetail(b, &cr, byID[cr.Ref])
	}
}

func writeCompDetail(b *strings.Builder, cr *valuation.CompResult, comp *domain.Comparable) {
	fmt.Fprintf(b, "### Comparable %d: %s\n\n", cr.Index+1, describeComp(comp, cr.Ref))
	if comp != nil && comp.Source != "" {
		fmt.Fprintf(b, "Source: %s\n\n", comp.Source)
	}
	if cr.Skipped {
		fmt.Fprintf(b, "Excluded from the market value: %s.\n\n", cr.SkipReason)
		return
	}

	fmt.Fprintf(b, "Quality score: %.1f (base %.0f)\n\n", cr.Quality.Total, cr.Quality.Base)
	for _, c := range cr.Quality.Components {
		fmt.Fprintf(b, "- %s (%s points): %s\n", c.Name, fmtPoints(c.Points), c.Explanation)
	}
	b.WriteString("\n")

	fmt.Fprintf(b, "Price normalization: %s list → %s adjusted\n\n",
		fmtMoney(cr.Adjustments.ListPrice), fmtMoney(cr.Adjustments.AdjustedPrice))
	for _, item := range cr.Adjustments.Items {
		fmt.Fprintf(b, "- %s\n", item.Explanation)
	}
	if len(cr.Adjustments.Items) == 0 {
		fmt.Fprintf(b, "- No adjustments required.\n")
	}
	if cr.Adjustments.Clamped {
		fmt.Fprintf(b, "- Adjusted price clamped at zero.\n")
	}
	b.WriteString("\n")
}

func writeConfidence(b *strings.Builder, trace *valuation.Analysis) {
	fmt.Fprintf(b, "## Confidence\n\n")
	fmt.Fprintf(b, "Overall confidence: %d/100\n\n", trace.Confidence)
	for _, f := range []struct {
		name   string
		factor valuation.ConfidenceFactor
	}{
		{"Comparable count", trace.ConfidenceFactors.ComparableCount},
		{"Quality consistency", trace.ConfidenceFactors.QualityScoreVariance},
		{"Price consistency", trace.ConfidenceFactors.PriceVariance},
	} {
		fmt.Fprintf(b, "- %s (%+d points): %s\n", f.name, f.factor.Points, f.factor.Explanation)
	}
	b.WriteString("\n")
}

func writeCalculation(b *strings.Builder, trace *valuation.Analysis) {
	fmt.Fprintf(b, "## Calculation\n\n")
	for i, step := range trace.Calculation.Steps {
		fmt.Fprintf(b, "%d. %s\n", i+1, step)
	}
	if len(trace.Calculation.Steps) == 0 {
		fmt.Fprintf(b, "No calculation steps were recorded.\n")
	}
	b.WriteString("\n")
}

// describeComp renders a comparable's listing description, falling back to
// its trace reference when the listing no longer exists.
func describeComp(comp *domain.Comparable, ref string) string {
	if comp == nil {
		if ref == "" {
			return "unknown listing"
		}
		return fmt.Sprintf("listing %s", ref)
	}
	return fmt.Sprintf("%d %s %s", comp.Year, comp.Make, comp.Model)
}

func compMileage(comp *domain.Comparable) string {
	if comp == nil {
		return "-"
	}
	return fmt.Sprintf("%d", comp.Mileage)
}

func compDistance(comp *domain.Comparable) string {
	if comp == nil {
		return "-"
	}
	return fmt.Sprintf("%.0f mi", comp.DistanceMiles)
}

func compCondition(comp *domain.Comparable) string {
	if comp == nil {
		return "-"
	}
	return string(comp.Condition)
}

func compListPrice(comp *domain.Comparable) string {
	if comp == nil {
		return "-"
	}
	return fmtMoney(comp.ListPrice)
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func fmtMoney(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", v)
}

func fmtPoints(v float64) string {
	return fmt.Sprintf("%+g", v)
}

func prettyJSON(v any) string {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(out)
}
