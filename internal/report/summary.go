package report

import (
	"fmt"
	"io"

	"github.com/danielpatrickdp/travel-eval/internal/eval"
)

// #region summary-table

// PrintSummary writes a per-case comparison table to w.
func PrintSummary(w io.Writer, r eval.Report) {
	fmt.Fprintf(w, "%-20s| %-6s| %-10s| %s\n", "Destination", "Days", "Mean", "Result")
	fmt.Fprintf(w, "%-20s+%-7s+%-11s+%s\n",
		"--------------------", "-------", "-----------", "--------")

	for _, c := range r.Cases {
		result := "FAIL"
		if c.Passed {
			result = "PASS"
		}
		fmt.Fprintf(w, "%-20s| %-6d| %-10.2f| %s\n", c.Destination, c.NumDays, c.MeanScore, result)
	}

	fmt.Fprintf(w, "\nSummary: %d total, %d pass, %d fail\n",
		r.Summary.TotalCases, r.Summary.PassCount, r.Summary.FailCount)
	for _, m := range r.Summary.Metrics {
		fmt.Fprintf(w, "  %-20s mean=%.2f pass=%d/%d\n", m.Metric, m.MeanScore, m.PassCount, r.Summary.TotalCases)
	}
	if len(r.Skipped) > 0 {
		fmt.Fprintf(w, "  skipped (malformed): %d\n", len(r.Skipped))
	}
}

// #endregion summary-table
