package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region log-run
// LogRun writes a run record to the eval_runs table.
func LogRun(db *sql.DB, rec RunRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO eval_runs (run_id, case_count, pass_count, fail_count, artifact_path, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.RunID,
		rec.CaseCount,
		rec.PassCount,
		rec.FailCount,
		nullIfEmpty(rec.ArtifactPath),
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log run: %w", err)
	}
	return nil
}
// #endregion log-run

// #region list-runs
// ListRuns returns the most recent run records, newest first.
func ListRuns(db *sql.DB, limit int) ([]RunRecord, error) {
	rows, err := db.Query(
		`SELECT run_id, case_count, pass_count, fail_count, artifact_path, created_at
		 FROM eval_runs ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var artifact sql.NullString
		var createdStr string
		if err := rows.Scan(&rec.RunID, &rec.CaseCount, &rec.PassCount, &rec.FailCount, &artifact, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if artifact.Valid {
			rec.ArtifactPath = artifact.String
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}
// #endregion list-runs

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
// #endregion helpers
