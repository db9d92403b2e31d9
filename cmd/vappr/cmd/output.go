package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	domain "github.com/valuelab/vehicle-appraisal/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printAppraisalsTable(appraisals []domain.Appraisal) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tCLAIM\tVEHICLE\tMILEAGE\tCONDITION\tREFERENCE\n")
	for i := range appraisals {
		a := &appraisals[i]
		tw.writef("%s\t%s\t%d %s %s\t%d\t%s\t%s\n",
			a.ID,
			orDash(a.ClaimRef),
			a.Year,
			a.Make,
			a.Model,
			a.Mileage,
			a.Condition,
			moneyOrDash(a.ReferenceValue),
		)
	}
	return tw.finish()
}

func printAppraisalDetail(a *domain.Appraisal) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", a.ID)
	tw.writef("Claim:\t%s\n", orDash(a.ClaimRef))
	tw.writef("VIN:\t%s\n", orDash(a.VIN))
	tw.writef("Vehicle:\t%d %s %s\n", a.Year, a.Make, a.Model)
	tw.writef("Mileage:\t%d mi\n", a.Mileage)
	tw.writef("Condition:\t%s\n", a.Condition)
	tw.writef("Equipment:\t%s\n", joinOrDash(a.Equipment))
	tw.writef("Reference:\t%s\n", moneyOrDash(a.ReferenceValue))
	if a.Notes != "" {
		tw.writef("Notes:\t%s\n", a.Notes)
	}
	tw.writef("Created:\t%s\n", a.CreatedAt.Format("2006-01-02 15:04:05"))
	tw.writef("Updated:\t%s\n", a.UpdatedAt.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func printComparablesTable(comps []domain.Comparable) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tSOURCE\tVEHICLE\tMILEAGE\tDISTANCE\tCONDITION\tLIST\tADJUSTED\tQUALITY\tSTATUS\n")
	for i := range comps {
		c := &comps[i]
		status := "used"
		if c.Excluded {
			status = "excluded: " + c.ExclusionReason
		}
		quality := "-"
		if c.QualityScore != nil {
			quality = fmt.Sprintf("%.1f", *c.QualityScore)
		}
		tw.writef("%s\t%s\t%d %s %s\t%d\t%.0f mi\t%s\t$%.2f\t%s\t%s\t%s\n",
			c.ID,
			orDash(c.Source),
			c.Year,
			c.Make,
			c.Model,
			c.Mileage,
			c.DistanceMiles,
			c.Condition,
			c.ListPrice,
			moneyOrDash(c.AdjustedPrice),
			quality,
			status,
		)
	}
	return tw.finish()
}

func printAnalysisDetail(a *domain.MarketAnalysis) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Appraisal:\t%s\n", a.AppraisalID)
	tw.writef("Revision:\t%d\n", a.Revision)
	tw.writef("Market Value:\t%s\n", moneyOrDash(a.MarketValue))
	tw.writef("Comparables:\t%d used, %d skipped (%d total)\n",
		a.ComparablesUsed, a.ComparablesSkipped, a.ComparablesTotal)
	tw.writef("Confidence:\t%d/100\n", a.Confidence)
	tw.writef("Reference:\t%s\n", moneyOrDash(a.ReferenceValue))
	if a.ValueDifference != nil && a.ValueDifferencePct != nil {
		tw.writef("Difference:\t%s (%+.1f%%)\n",
			moneyOrDash(a.ValueDifference), *a.ValueDifferencePct)
	}
	tw.writef("Undervalued:\t%v\n", a.Undervalued)
	tw.writef("Computed:\t%s\n", a.ComputedAt.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func printAnalysisHistoryTable(history []domain.MarketAnalysis) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("REVISION\tMARKET VALUE\tUSED\tCONFIDENCE\tUNDERVALUED\tCOMPUTED\n")
	for i := range history {
		a := &history[i]
		tw.writef("%d\t%s\t%d/%d\t%d\t%v\t%s\n",
			a.Revision,
			moneyOrDash(a.MarketValue),
			a.ComparablesUsed,
			a.ComparablesTotal,
			a.Confidence,
			a.Undervalued,
			a.ComputedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.finish()
}

func printStateDetail(s *domain.SystemState) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Appraisals:\t%d\n", s.AppraisalsTotal)
	tw.writef("  unanalyzed:\t%d\n", s.AppraisalsUnanalyzed)
	tw.writef("  undervalued:\t%d\n", s.AppraisalsUndervalued)
	tw.writef("Comparables:\t%d\n", s.ComparablesTotal)
	tw.writef("  excluded:\t%d\n", s.ComparablesExcluded)
	tw.writef("Analyses:\t%d\n", s.AnalysesTotal)
	tw.writef("  revisions:\t%d\n", s.AnalysisRevisions)
	return tw.finish()
}

func printJobRunsTable(runs []domain.JobRun) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tROWS\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format("2006-01-02 15:04:05")
		}
		rows := "-"
		if r.RowsAffected != nil {
			rows = fmt.Sprintf("%d", *r.RowsAffected)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			completed,
			rows,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

func moneyOrDash(v *float64) string {
	if v == nil {
		return "-"
	}
	if *v < 0 {
		return fmt.Sprintf("-$%.2f", -*v)
	}
	return fmt.Sprintf("$%.2f", *v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
