package logging

import "time"

// #region run-record
// RunRecord is a single row in the eval_runs table. One row is written per
// evaluation run; the latest run supersedes earlier artifacts but the history
// is kept for inspection.
type RunRecord struct {
	RunID        string
	CaseCount    int
	PassCount    int
	FailCount    int
	ArtifactPath string
	CreatedAt    time.Time
}
// #endregion run-record
