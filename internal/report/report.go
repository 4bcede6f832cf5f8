// Package report renders evaluation results to their artifacts: a
// structured JSON document, a Markdown summary, and a terminal table.
package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielpatrickdp/travel-eval/internal/eval"
)

// #region encode

// Encode serializes a report to its canonical JSON form. Field names and
// case ordering are stable, so identical reports always produce identical
// bytes.
func Encode(r eval.Report) ([]byte, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return append(b, '\n'), nil
}

// #endregion encode

// #region write-json

// WriteJSON persists the structured artifact. On failure the in-memory
// report remains available to the caller.
func WriteJSON(path string, r eval.Report) error {
	b, err := Encode(r)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write results %s: %w", path, err)
	}
	return nil
}

// #endregion write-json

// #region load

// Load reads a previously written artifact so it can be re-analyzed without
// recomputation.
func Load(path string) (eval.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return eval.Report{}, fmt.Errorf("read results %s: %w", path, err)
	}
	var r eval.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return eval.Report{}, fmt.Errorf("parse results %s: %w", path, err)
	}
	return r, nil
}

// #endregion load
