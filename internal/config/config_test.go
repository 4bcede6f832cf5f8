package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.DBPath != "travel_eval.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.Results.JSONPath != "eval_results.json" {
		t.Errorf("JSONPath = %q", cfg.Results.JSONPath)
	}
	if cfg.Results.MarkdownPath != "evaluation_report.md" {
		t.Errorf("MarkdownPath = %q", cfg.Results.MarkdownPath)
	}
	if cfg.Thresholds.AnswerRelevance != 0.7 || cfg.Thresholds.QualityRubric != 0.7 {
		t.Errorf("gating thresholds = %+v, want 0.7", cfg.Thresholds)
	}
	if cfg.Thresholds.ContentValidation != 0 {
		t.Errorf("content validation threshold = %f, want 0 (informational)", cfg.Thresholds.ContentValidation)
	}
	if cfg.Model.Name != "gemini-2.5-flash" || !cfg.Model.ResearchEnabled {
		t.Errorf("model = %+v", cfg.Model)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `db_path: /tmp/other.db
thresholds:
  answer_relevance: 0.9
model:
  research_enabled: false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/other.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.Thresholds.AnswerRelevance != 0.9 {
		t.Errorf("relevance threshold = %f, want 0.9", cfg.Thresholds.AnswerRelevance)
	}
	if cfg.Model.ResearchEnabled {
		t.Error("expected research disabled")
	}
	// Untouched fields keep defaults.
	if cfg.Results.JSONPath != "eval_results.json" {
		t.Errorf("JSONPath = %q, want default", cfg.Results.JSONPath)
	}
	if cfg.Thresholds.QualityRubric != 0.7 {
		t.Errorf("quality threshold = %f, want default 0.7", cfg.Thresholds.QualityRubric)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("db_path: [not a scalar"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TRAVEL_EVAL_DB", "/tmp/env.db")
	t.Setenv("TRAVEL_EVAL_MODEL", "gemini-2.5-pro")
	t.Setenv("TRAVEL_EVAL_RELEVANCE_THRESHOLD", "0.5")

	cfg := Default()
	if cfg.DBPath != "/tmp/env.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.Model.Name != "gemini-2.5-pro" {
		t.Errorf("model = %q", cfg.Model.Name)
	}
	if cfg.Thresholds.AnswerRelevance != 0.5 {
		t.Errorf("relevance threshold = %f, want 0.5", cfg.Thresholds.AnswerRelevance)
	}
}

func TestEnvOverridesWinOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("db_path: /tmp/file.db\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	t.Setenv("TRAVEL_EVAL_DB", "/tmp/env.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/env.db" {
		t.Errorf("DBPath = %q, want env override", cfg.DBPath)
	}
}

func TestEnvIgnoresBadFloat(t *testing.T) {
	t.Setenv("TRAVEL_EVAL_QUALITY_THRESHOLD", "not-a-number")

	cfg := Default()
	if cfg.Thresholds.QualityRubric != 0.7 {
		t.Errorf("quality threshold = %f, want default 0.7", cfg.Thresholds.QualityRubric)
	}
}
