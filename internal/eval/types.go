package eval

import (
	"errors"
	"time"
)

// ErrInvalidTestCase marks a malformed test case: missing destination or
// non-positive day count. The case is skipped and logged; the run continues.
var ErrInvalidTestCase = errors.New("invalid test case")

// #region score-result
// ScoreResult captures a single (test case, metric) grading. Never mutated
// after creation.
type ScoreResult struct {
	Metric string  `json:"metric"`
	Score  float64 `json:"score"`
	Passed bool    `json:"passed"`
}
// #endregion score-result

// #region case-result
// CaseResult holds every metric result for one test case. Passed is true
// when all gated metrics (threshold > 0) passed; informational metrics never
// fail a case. MeanScore averages all metric scores.
type CaseResult struct {
	Destination string        `json:"destination"`
	NumDays     int           `json:"num_days"`
	Scores      []ScoreResult `json:"scores"`
	Passed      bool          `json:"passed"`
	MeanScore   float64       `json:"mean_score"`
}
// #endregion case-result

// #region summary
// MetricSummary aggregates one metric across all evaluated cases.
type MetricSummary struct {
	Metric    string  `json:"metric"`
	MeanScore float64 `json:"mean_score"`
	PassCount int     `json:"pass_count"`
}

// Summary aggregates case-level outcomes for a run.
type Summary struct {
	TotalCases int             `json:"total_cases"`
	PassCount  int             `json:"pass_count"`
	FailCount  int             `json:"fail_count"`
	Metrics    []MetricSummary `json:"metrics"`
}
// #endregion summary

// #region skipped-case
// SkippedCase records a malformed input that was dropped from the run.
type SkippedCase struct {
	Index       int    `json:"index"`
	Destination string `json:"destination,omitempty"`
	Reason      string `json:"reason"`
}
// #endregion skipped-case

// #region report
// Report is the output of one evaluation run. Case order matches input
// order. A new run supersedes, never merges with, the previous artifact.
type Report struct {
	RunID     string        `json:"run_id"`
	CreatedAt time.Time     `json:"created_at"`
	Cases     []CaseResult  `json:"cases"`
	Skipped   []SkippedCase `json:"skipped,omitempty"`
	Summary   Summary       `json:"summary"`
}
// #endregion report
