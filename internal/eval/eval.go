package eval

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/travel-eval/internal/scorer"
	"github.com/danielpatrickdp/travel-eval/internal/testcase"
)

// #region evaluator
// Evaluator runs every scorer against every test case and aggregates the
// outcomes into a Report. Pure with respect to its inputs; a low score is a
// normal, reportable outcome, never an error.
type Evaluator struct {
	scorers []scorer.Scorer
	logger  *slog.Logger
}

// New creates an Evaluator. logger may be nil; skipped cases are then
// discarded silently from the log (they still appear in the report).
func New(scorers []scorer.Scorer, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Evaluator{scorers: scorers, logger: logger}
}
// #endregion evaluator

// #region validate
// Validate checks a test case for the two malformations that make scoring
// meaningless: an empty destination and a non-positive day count.
func Validate(tc testcase.TestCase) error {
	if strings.TrimSpace(tc.Destination) == "" {
		return fmt.Errorf("%w: missing destination", ErrInvalidTestCase)
	}
	if tc.NumDays < 1 {
		return fmt.Errorf("%w: non-positive day count %d", ErrInvalidTestCase, tc.NumDays)
	}
	return nil
}
// #endregion validate

// #region run
// Run scores every valid test case with every scorer, preserving input
// order in the report. Malformed cases are skipped and logged. Returns an
// error only when no valid case remains.
func (e *Evaluator) Run(cases []testcase.TestCase) (Report, error) {
	report := Report{
		RunID:     uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}

	sums := make([]float64, len(e.scorers))
	passes := make([]int, len(e.scorers))

	for i, tc := range cases {
		if err := Validate(tc); err != nil {
			e.logger.Warn("skipping malformed test case",
				"index", i,
				"destination", tc.Destination,
				"reason", err.Error(),
			)
			report.Skipped = append(report.Skipped, SkippedCase{
				Index:       i,
				Destination: tc.Destination,
				Reason:      err.Error(),
			})
			continue
		}

		cr := CaseResult{
			Destination: tc.Destination,
			NumDays:     tc.NumDays,
			Passed:      true,
		}

		var total float64
		for j, s := range e.scorers {
			score := s.Score(tc)
			passed := score >= s.Threshold()
			cr.Scores = append(cr.Scores, ScoreResult{
				Metric: s.Name(),
				Score:  score,
				Passed: passed,
			})
			total += score
			sums[j] += score
			if passed {
				passes[j]++
			}
			if s.Threshold() > 0 && !passed {
				cr.Passed = false
			}
		}
		if len(e.scorers) > 0 {
			cr.MeanScore = total / float64(len(e.scorers))
		}

		report.Cases = append(report.Cases, cr)
		if cr.Passed {
			report.Summary.PassCount++
		} else {
			report.Summary.FailCount++
		}
	}

	if len(report.Cases) == 0 {
		return Report{}, fmt.Errorf("%w: no valid test cases after validation", testcase.ErrEmptyInput)
	}

	report.Summary.TotalCases = len(report.Cases)
	for j, s := range e.scorers {
		report.Summary.Metrics = append(report.Summary.Metrics, MetricSummary{
			Metric:    s.Name(),
			MeanScore: sums[j] / float64(len(report.Cases)),
			PassCount: passes[j],
		})
	}

	return report, nil
}
// #endregion run
