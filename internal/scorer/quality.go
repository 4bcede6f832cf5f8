package scorer

import (
	"strings"

	"github.com/danielpatrickdp/travel-eval/internal/testcase"
)

// minSubstantialLength is the response length, in bytes, above which the
// substance check passes.
const minSubstantialLength = 200

// #region quality-rubric

// QualityRubric grades overall response quality with five independent
// checks worth 0.2 each.
type QualityRubric struct {
	threshold float64
}

// Name implements Scorer.
func (q QualityRubric) Name() string { return "quality_rubric" }

// Threshold implements Scorer.
func (q QualityRubric) Threshold() float64 { return q.threshold }

// Score computes a weighted sum capped at 1.0:
//   - +0.2 structural: "day" appears anywhere
//   - +0.2 activity coverage: any activity keyword
//   - +0.2 accommodation coverage: any accommodation keyword
//   - +0.2 substance: response longer than 200 characters
//   - +0.2 day-count coverage: occurrences of "day" >= requested days
func (q QualityRubric) Score(tc testcase.TestCase) float64 {
	lower := strings.ToLower(tc.Response)
	var score float64

	if strings.Contains(lower, "day") {
		score += 0.2
	}

	if containsAny(lower, activityKeywords) {
		score += 0.2
	}

	if containsAny(lower, accommodationKeywords) {
		score += 0.2
	}

	if len(tc.Response) > minSubstantialLength {
		score += 0.2
	}

	if strings.Count(lower, "day") >= tc.NumDays {
		score += 0.2
	}

	return clamp(score)
}

// #endregion quality-rubric
