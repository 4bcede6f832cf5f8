package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/danielpatrickdp/travel-eval/internal/eval"
)

// #region markdown

// Markdown renders the human-readable evaluation report.
func Markdown(r eval.Report) string {
	var b strings.Builder

	b.WriteString("# Travel Agent Evaluation Report\n\n")

	b.WriteString("## Summary\n")
	fmt.Fprintf(&b, "- Total Tests: %d\n", r.Summary.TotalCases)
	fmt.Fprintf(&b, "- Passed: %d\n", r.Summary.PassCount)
	fmt.Fprintf(&b, "- Failed: %d\n", r.Summary.FailCount)
	if len(r.Skipped) > 0 {
		fmt.Fprintf(&b, "- Skipped (malformed): %d\n", len(r.Skipped))
	}
	b.WriteString("\n")

	b.WriteString("## Metrics\n")
	b.WriteString("| Metric | Mean Score | Passed |\n")
	b.WriteString("|--------|-----------:|-------:|\n")
	for _, m := range r.Summary.Metrics {
		fmt.Fprintf(&b, "| %s | %.2f | %d/%d |\n", m.Metric, m.MeanScore, m.PassCount, r.Summary.TotalCases)
	}
	b.WriteString("\n")

	b.WriteString("## Failed Cases\n")
	failed := failingMetrics(r)
	if len(failed) == 0 {
		b.WriteString("- No failed cases\n")
	}
	for _, f := range failed {
		fmt.Fprintf(&b, "- **%s (%d days)**: %s scored %.2f\n", f.Destination, f.NumDays, f.Metric, f.Score)
	}
	b.WriteString("\n")

	b.WriteString("## Insights\n")
	for _, line := range insights(r) {
		fmt.Fprintf(&b, "- %s\n", line)
	}
	b.WriteString("\n")

	b.WriteString("## Recommendations\n")
	for _, line := range recommendations(r) {
		fmt.Fprintf(&b, "- %s\n", line)
	}
	b.WriteString("\n")

	b.WriteString("## Next Steps\n")
	b.WriteString("1. Review failed test cases and improve agent prompts\n")
	b.WriteString("2. Add more diverse test cases to the evaluation set\n")
	b.WriteString("3. Consider implementing additional quality metrics\n")
	b.WriteString("4. Set up automated evaluation pipeline\n")

	return b.String()
}

// WriteMarkdown persists the Markdown report.
func WriteMarkdown(path string, r eval.Report) error {
	if err := os.WriteFile(path, []byte(Markdown(r)), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

// #endregion markdown

// #region failing

// failingMetric identifies one failed (case, metric) pair for the report.
type failingMetric struct {
	Destination string
	NumDays     int
	Metric      string
	Score       float64
}

// failingMetrics lists every gated metric failure in case order.
func failingMetrics(r eval.Report) []failingMetric {
	var out []failingMetric
	for _, c := range r.Cases {
		for _, s := range c.Scores {
			if !s.Passed {
				out = append(out, failingMetric{
					Destination: c.Destination,
					NumDays:     c.NumDays,
					Metric:      s.Metric,
					Score:       s.Score,
				})
			}
		}
	}
	return out
}

// #endregion failing

// #region insights

func insights(r eval.Report) []string {
	var out []string
	if r.Summary.FailCount > 0 {
		out = append(out, fmt.Sprintf("Found %d failed test cases that need attention", r.Summary.FailCount))
	}
	if r.Summary.FailCount == 0 && r.Summary.TotalCases > 0 {
		out = append(out, "All tests passed - agent is performing well")
	}
	if len(r.Skipped) > 0 {
		out = append(out, fmt.Sprintf("%d malformed test cases were skipped", len(r.Skipped)))
	}
	return out
}

func recommendations(r eval.Report) []string {
	var out []string
	if r.Summary.FailCount > 0 {
		out = append(out, "Review and improve agent prompts for failed test cases")
	}
	out = append(out, "Add more diverse test cases to the evaluation set")
	return out
}

// #endregion insights
