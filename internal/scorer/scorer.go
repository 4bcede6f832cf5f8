// Package scorer implements the heuristic metrics used to grade itinerary
// responses. Every scorer is a deterministic pure function of its test case:
// identical input always reproduces an identical score in [0, 1].
//
// All matching is case-insensitive substring search with no tokenization or
// stemming. A destination name that is a substring of an unrelated word will
// false-positive; documented limitation, not corrected.
package scorer

import (
	"strings"

	"github.com/danielpatrickdp/travel-eval/internal/testcase"
)

// #region interface

// Scorer grades a single test case against one metric.
type Scorer interface {
	// Name returns the metric identifier used in reports.
	Name() string
	// Threshold is the pass cutoff for this metric. A zero threshold marks
	// the metric as informational: it is reported but never gates a case.
	Threshold() float64
	// Score maps the test case to a value in [0, 1].
	Score(tc testcase.TestCase) float64
}

// #endregion interface

// #region thresholds

// Thresholds holds the pass cutoff per metric.
type Thresholds struct {
	AnswerRelevance   float64
	ContentValidation float64
	QualityRubric     float64
}

// DefaultThresholds returns the standard cutoffs. Content validation defaults
// to informational.
func DefaultThresholds() Thresholds {
	return Thresholds{
		AnswerRelevance:   0.7,
		ContentValidation: 0,
		QualityRubric:     0.7,
	}
}

// Defaults returns the full scorer set in report order.
func Defaults(t Thresholds) []Scorer {
	return []Scorer{
		Relevance{threshold: t.AnswerRelevance},
		ContentValidation{threshold: t.ContentValidation},
		QualityRubric{threshold: t.QualityRubric},
	}
}

// #endregion thresholds

// #region keywords

var travelKeywords = []string{"visit", "explore", "see", "tour", "accommodation", "hotel", "restaurant"}

var activityKeywords = []string{"visit", "explore", "see", "tour", "museum", "park", "restaurant"}

var accommodationKeywords = []string{"hotel", "accommodation", "stay", "lodging"}

// #endregion keywords

// #region helpers

// containsAny reports whether any keyword appears in the lowercased text.
func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// clamp restricts v to [0, 1].
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion helpers
