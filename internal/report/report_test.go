package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/valuelab/vehicle-appraisal/pkg/types"
	"github.com/valuelab/vehicle-appraisal/pkg/valuation"
)

func testAppraisal() *domain.Appraisal {
	ref := 20000.0
	return &domain.Appraisal{
		ID:             "appr-1",
		ClaimRef:       "CLM-2024-0101",
		Year:           2020,
		Make:           "Honda",
		Model:          "Accord",
		Mileage:        45000,
		Condition:      domain.ConditionGood,
		Equipment:      []string{"Navigation", "Sunroof"},
		ReferenceValue: &ref,
	}
}

func testComparables() []domain.Comparable {
	return []domain.Comparable{
		{
			ID: "comp-1", AppraisalID: "appr-1", Source: "dealer listing",
			Year: 2020, Make: "Honda", Model: "Accord", Mileage: 45000,
			DistanceMiles: 12, Condition: domain.ConditionGood,
			Equipment: []string{"Navigation", "Sunroof"}, ListPrice: 26000,
		},
		{
			ID: "comp-2", AppraisalID: "appr-1", Source: "auction",
			Year: 2020, Make: "Honda", Model: "Accord", Mileage: 45000,
			DistanceMiles: 30, Condition: domain.ConditionGood,
			Equipment: []string{"Navigation", "Sunroof"}, ListPrice: 26500,
		},
		{
			ID: "comp-3", AppraisalID: "appr-1", Source: "private sale",
			Year: 0, Make: "Honda", Model: "Accord", Mileage: 50000,
			DistanceMiles: 45, Condition: domain.ConditionGood,
			Equipment: []string{"Navigation", "Sunroof"}, ListPrice: 25900,
		},
	}
}

// testAnalysis runs a real computation so the trace shape matches what the
// engine persists.
func testAnalysis(t *testing.T, appr *domain.Appraisal, comps []domain.Comparable) *domain.MarketAnalysis {
	t.Helper()

	subject := valuation.VehicleData{
		Year:      appr.Year,
		Mileage:   appr.Mileage,
		Condition: string(appr.Condition),
		Equipment: appr.Equipment,
	}
	compData := make([]valuation.CompData, len(comps))
	for i, c := range comps {
		compData[i] = valuation.CompData{
			Ref:           c.ID,
			Year:          c.Year,
			Mileage:       c.Mileage,
			DistanceMiles: c.DistanceMiles,
			Condition:     string(c.Condition),
			Equipment:     c.Equipment,
			ListPrice:     c.ListPrice,
		}
	}
	result := valuation.Compute(subject, compData, appr.ReferenceValue, valuation.DefaultTables(2024))

	trace, err := json.Marshal(result)
	require.NoError(t, err)

	return &domain.MarketAnalysis{
		ID:          "an-1",
		AppraisalID: appr.ID,
		Revision:    3,
		MarketValue: result.MarketValue,
		Undervalued: result.Undervalued,
		Confidence:  result.Confidence,
		Trace:       trace,
		ComputedAt:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestBuildMarkdown_FullReport(t *testing.T) {
	t.Parallel()

	appr := testAppraisal()
	comps := testComparables()
	analysis := testAnalysis(t, appr, comps)

	md, err := BuildMarkdown(appr, comps, analysis)
	require.NoError(t, err)

	assert.Contains(t, md, "# Vehicle Appraisal Report")
	assert.Contains(t, md, "- Vehicle: 2020 Honda Accord")
	assert.Contains(t, md, "- Claim: CLM-2024-0101")
	assert.Contains(t, md, "- Analysis revision: 3")
	assert.Contains(t, md, "- Computed: 2024-06-01 12:00:00 UTC")

	assert.Contains(t, md, "## Market Value")
	assert.Contains(t, md, "- Comparables: 2 used, 1 skipped (3 total)")
	assert.Contains(t, md, "- Reference value: $20000.00")
	assert.Contains(t, md, "**Undervalued**")

	assert.Contains(t, md, "## Comparable Vehicles")
	assert.Contains(t, md, "| 1 | 2020 Honda Accord | 45000 | 12 mi | good | $26000.00 |")
	assert.Contains(t, md, "### Comparable 1: 2020 Honda Accord")
	assert.Contains(t, md, "Source: dealer listing")
	assert.Contains(t, md, "### Comparable 3:")
	assert.Contains(t, md, "Excluded from the market value: model year 0 is not valid.")

	assert.Contains(t, md, "## Confidence")
	assert.Contains(t, md, "Comparable count")
	assert.Contains(t, md, "## Calculation")
	assert.Contains(t, md, "## Appendix")
	assert.Contains(t, md, "```json")
}

func TestBuildMarkdown_NoTrace(t *testing.T) {
	t.Parallel()

	appr := testAppraisal()
	analysis := &domain.MarketAnalysis{AppraisalID: appr.ID, Revision: 1}

	_, err := BuildMarkdown(appr, nil, analysis)
	assert.ErrorIs(t, err, ErrNoTrace)
}

func TestBuildMarkdown_CorruptTrace(t *testing.T) {
	t.Parallel()

	appr := testAppraisal()
	analysis := &domain.MarketAnalysis{
		AppraisalID: appr.ID,
		Revision:    1,
		Trace:       json.RawMessage(`{not json`),
	}

	_, err := BuildMarkdown(appr, nil, analysis)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing analysis trace")
}

func TestBuildMarkdown_MissingComparableFallsBack(t *testing.T) {
	t.Parallel()

	appr := testAppraisal()
	comps := testComparables()
	analysis := testAnalysis(t, appr, comps)

	// A listing deleted after the analysis ran still renders by reference.
	md, err := BuildMarkdown(appr, comps[:1], analysis)
	require.NoError(t, err)

	assert.Contains(t, md, "| 1 | 2020 Honda Accord |")
	assert.Contains(t, md, "listing comp-2")
}

func TestBuildMarkdown_NoUsableComparables(t *testing.T) {
	t.Parallel()

	appr := testAppraisal()
	comps := testComparables()
	for i := range comps {
		comps[i].Year = 0
	}
	analysis := testAnalysis(t, appr, comps)

	md, err := BuildMarkdown(appr, comps, analysis)
	require.NoError(t, err)

	assert.Contains(t, md, "No market value could be computed")
	assert.NotContains(t, md, "Estimated market value")
}

func TestRenderHTML(t *testing.T) {
	t.Parallel()

	appr := testAppraisal()
	comps := testComparables()
	analysis := testAnalysis(t, appr, comps)

	md, err := BuildMarkdown(appr, comps, analysis)
	require.NoError(t, err)

	doc, err := RenderHTML(md, "Appraisal <CLM-2024-0101>")
	require.NoError(t, err)

	assert.Contains(t, doc, "<!doctype html>")
	assert.Contains(t, doc, "<title>Appraisal &lt;CLM-2024-0101&gt;</title>")
	assert.Contains(t, doc, "<h1")
	assert.Contains(t, doc, "<table>")
	assert.Contains(t, doc, "</html>")
}
