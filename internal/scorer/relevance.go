package scorer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danielpatrickdp/travel-eval/internal/testcase"
)

// #region relevance

// Relevance checks that the response actually answers the request: right
// destination, right duration, day-by-day structure, travel content.
type Relevance struct {
	threshold float64
}

// Name implements Scorer.
func (r Relevance) Name() string { return "answer_relevance" }

// Threshold implements Scorer.
func (r Relevance) Threshold() float64 { return r.threshold }

// Score computes a weighted sum capped at 1.0:
//   - +0.3 destination mentioned
//   - +0.3 literal day count or "<N>-day" present
//   - +0.2 "day" together with "1" or "first" (day-by-day structure)
//   - +0.2 any travel-action keyword
func (r Relevance) Score(tc testcase.TestCase) float64 {
	lower := strings.ToLower(tc.Response)
	var score float64

	if strings.Contains(lower, strings.ToLower(tc.Destination)) {
		score += 0.3
	}

	if strings.Contains(tc.Response, strconv.Itoa(tc.NumDays)) ||
		strings.Contains(lower, fmt.Sprintf("%d-day", tc.NumDays)) {
		score += 0.3
	}

	if strings.Contains(lower, "day") &&
		(strings.Contains(tc.Response, "1") || strings.Contains(lower, "first")) {
		score += 0.2
	}

	if containsAny(lower, travelKeywords) {
		score += 0.2
	}

	return clamp(score)
}

// #endregion relevance
