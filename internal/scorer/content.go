package scorer

import (
	"strings"

	"github.com/danielpatrickdp/travel-eval/internal/testcase"
)

// #region content-validation

// ContentValidation checks for the elements every itinerary response is
// expected to contain. Informational by default: it carries no pass
// threshold unless one is configured.
type ContentValidation struct {
	threshold float64
}

// Name implements Scorer.
func (c ContentValidation) Name() string { return "content_validation" }

// Threshold implements Scorer.
func (c ContentValidation) Threshold() float64 { return c.threshold }

// Score computes a weighted sum capped at 1.0:
//   - +0.4 destination mentioned
//   - +0.3 "day 1" or "day one" present
//   - +0.3 "itinerary" present
func (c ContentValidation) Score(tc testcase.TestCase) float64 {
	lower := strings.ToLower(tc.Response)
	var score float64

	if strings.Contains(lower, strings.ToLower(tc.Destination)) {
		score += 0.4
	}

	if strings.Contains(lower, "day 1") || strings.Contains(lower, "day one") {
		score += 0.3
	}

	if strings.Contains(lower, "itinerary") {
		score += 0.3
	}

	return clamp(score)
}

// #endregion content-validation
