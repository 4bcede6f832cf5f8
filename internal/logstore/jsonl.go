package logstore

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// #region jsonl-record

// jsonlRecord mirrors the logs.jsonl line format produced by the original
// Python prototype, so log data round-trips between both encodings.
type jsonlRecord struct {
	Timestamp        string         `json:"timestamp"`
	UserInput        jsonlUserInput `json:"user_input"`
	PlannerOutput    string         `json:"planner_output"`
	ResearcherOutput string         `json:"researcher_output,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
}

type jsonlUserInput struct {
	Destination string `json:"destination"`
	NumDays     int    `json:"num_days"`
}

// #endregion jsonl-record

// #region read

// ReadJSONL parses a logs.jsonl file into entries. Blank lines are skipped.
func ReadJSONL(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec jsonlRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("parse %s line %d: %w", path, lineNum, err)
		}
		entries = append(entries, rec.toEntry())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return entries, nil
}

func (r jsonlRecord) toEntry() Entry {
	e := Entry{
		Destination:     r.UserInput.Destination,
		NumDays:         r.UserInput.NumDays,
		Response:        r.PlannerOutput,
		ResearcherNotes: r.ResearcherOutput,
	}
	if r.Timestamp != "" {
		if ts, err := time.Parse(time.RFC3339Nano, r.Timestamp); err == nil {
			e.CreatedAt = ts
		}
	}
	if len(r.Metadata) > 0 {
		if b, err := json.Marshal(r.Metadata); err == nil {
			e.MetadataJSON = string(b)
		}
	}
	return e
}

// #endregion read

// #region write

// WriteJSONL serializes entries to a logs.jsonl file, one record per line.
func WriteJSONL(path string, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create log file %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, e := range entries {
		rec := jsonlRecord{
			Timestamp: e.CreatedAt.UTC().Format(time.RFC3339Nano),
			UserInput: jsonlUserInput{
				Destination: e.Destination,
				NumDays:     e.NumDays,
			},
			PlannerOutput:    e.Response,
			ResearcherOutput: e.ResearcherNotes,
		}
		if e.MetadataJSON != "" {
			var meta map[string]any
			if err := json.Unmarshal([]byte(e.MetadataJSON), &meta); err == nil {
				rec.Metadata = meta
			}
		}
		b, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal entry %s: %w", e.ID, err)
		}
		if _, err := w.Write(append(b, '\n')); err != nil {
			return fmt.Errorf("write log file %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush log file %s: %w", path, err)
	}
	return nil
}

// #endregion write

// #region import-export

// ImportJSONL appends every record of a logs.jsonl file to the store and
// returns the number of imported entries.
func (s *Store) ImportJSONL(path string) (int, error) {
	entries, err := ReadJSONL(path)
	if err != nil {
		return 0, err
	}
	for _, e := range entries {
		if _, err := s.Append(e); err != nil {
			return 0, fmt.Errorf("import %s: %w", path, err)
		}
	}
	return len(entries), nil
}

// ExportJSONL writes the full interaction log to a logs.jsonl file and
// returns the number of exported entries.
func (s *Store) ExportJSONL(path string) (int, error) {
	entries, err := s.All()
	if err != nil {
		return 0, err
	}
	if err := WriteJSONL(path, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}

// #endregion import-export
