package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// #region types

// Config holds all knobs for the evaluation harness and the agent pipeline.
type Config struct {
	DBPath     string     `yaml:"db_path"`
	Results    Results    `yaml:"results"`
	Thresholds Thresholds `yaml:"thresholds"`
	Model      Model      `yaml:"model"`
}

// Results names the run artifacts.
type Results struct {
	JSONPath     string `yaml:"json_path"`
	MarkdownPath string `yaml:"markdown_path"`
}

// Thresholds holds the pass cutoff per metric. A zero value marks the metric
// as informational.
type Thresholds struct {
	AnswerRelevance   float64 `yaml:"answer_relevance"`
	ContentValidation float64 `yaml:"content_validation"`
	QualityRubric     float64 `yaml:"quality_rubric"`
}

// Model configures the agent pipeline.
type Model struct {
	Name            string `yaml:"name"`
	ResearchEnabled bool   `yaml:"research_enabled"`
}

// #endregion types

// #region defaults

// Default returns the configuration used when no file is supplied.
// Env vars override: TRAVEL_EVAL_DB, TRAVEL_EVAL_RESULTS,
// TRAVEL_EVAL_REPORT, TRAVEL_EVAL_MODEL, TRAVEL_EVAL_RELEVANCE_THRESHOLD,
// TRAVEL_EVAL_QUALITY_THRESHOLD.
func Default() Config {
	cfg := base()
	cfg.applyEnv()
	return cfg
}

func base() Config {
	return Config{
		DBPath: "travel_eval.db",
		Results: Results{
			JSONPath:     "eval_results.json",
			MarkdownPath: "evaluation_report.md",
		},
		Thresholds: Thresholds{
			AnswerRelevance:   0.7,
			ContentValidation: 0,
			QualityRubric:     0.7,
		},
		Model: Model{
			Name:            "gemini-2.5-flash",
			ResearchEnabled: true,
		},
	}
}

// #endregion defaults

// #region load

// Load reads a YAML config file and applies env overrides on top. Missing
// fields keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := base()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyEnv()
	return cfg, nil
}

// #endregion load

// #region env

func (c *Config) applyEnv() {
	if v := os.Getenv("TRAVEL_EVAL_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("TRAVEL_EVAL_RESULTS"); v != "" {
		c.Results.JSONPath = v
	}
	if v := os.Getenv("TRAVEL_EVAL_REPORT"); v != "" {
		c.Results.MarkdownPath = v
	}
	if v := os.Getenv("TRAVEL_EVAL_MODEL"); v != "" {
		c.Model.Name = v
	}
	if v := os.Getenv("TRAVEL_EVAL_RELEVANCE_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Thresholds.AnswerRelevance = f
		}
	}
	if v := os.Getenv("TRAVEL_EVAL_QUALITY_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Thresholds.QualityRubric = f
		}
	}
}

// #endregion env
