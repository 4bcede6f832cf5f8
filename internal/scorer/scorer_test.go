package scorer

import (
	"math"
	"strings"
	"testing"

	"github.com/danielpatrickdp/travel-eval/internal/testcase"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func allScorers() []Scorer {
	return Defaults(DefaultThresholds())
}

func TestScoresStayInRange(t *testing.T) {
	cases := []testcase.TestCase{
		{Destination: "Paris", NumDays: 3, Response: ""},
		{Destination: "Paris", NumDays: 1, Response: "day day day 1 first visit hotel itinerary paris 1-day"},
		{Destination: "New York", NumDays: 30, Response: strings.Repeat("visit explore tour museum park hotel day 1 itinerary New York 30 ", 50)},
	}

	for _, tc := range cases {
		for _, s := range allScorers() {
			score := s.Score(tc)
			if score < 0 || score > 1 {
				t.Errorf("%s(%q) = %f, out of [0,1]", s.Name(), tc.Destination, score)
			}
		}
	}
}

func TestScorersAreDeterministic(t *testing.T) {
	tc := testcase.TestCase{
		Destination: "Tokyo",
		NumDays:     7,
		Response:    "Day 1: visit temples. Stay at a hotel. A 7-day itinerary for Tokyo.",
	}

	for _, s := range allScorers() {
		first := s.Score(tc)
		for i := 0; i < 10; i++ {
			if got := s.Score(tc); got != first {
				t.Fatalf("%s not deterministic: %f then %f", s.Name(), first, got)
			}
		}
	}
}

func TestEmptyResponseScoresZero(t *testing.T) {
	tc := testcase.TestCase{Destination: "Paris", NumDays: 3, Response: ""}

	for _, s := range allScorers() {
		if got := s.Score(tc); got != 0 {
			t.Errorf("%s on empty response = %f, want 0", s.Name(), got)
		}
	}
}

// Adding the literal destination to a response that lacked it never lowers
// the relevance or content-validation score.
func TestDestinationMonotonicity(t *testing.T) {
	responses := []string{
		"",
		"A pleasant trip with no city named.",
		"Day 1: visit a museum. Stay at a hotel. Full itinerary below.",
	}

	for _, base := range responses {
		tc := testcase.TestCase{Destination: "Lisbon", NumDays: 4, Response: base}
		withDest := tc
		withDest.Response = base + " Lisbon"

		for _, s := range []Scorer{
			Relevance{threshold: 0.7},
			ContentValidation{},
		} {
			before := s.Score(tc)
			after := s.Score(withDest)
			if after < before {
				t.Errorf("%s decreased after adding destination: %f -> %f (base %q)",
					s.Name(), before, after, base)
			}
		}
	}
}

// The canned Paris sample is the reference passing case: full credit on
// every metric.
func TestParisSampleScenario(t *testing.T) {
	tc := testcase.Fallback()[0]
	if tc.Destination != "Paris" || tc.NumDays != 3 {
		t.Fatalf("unexpected first sample case: %s/%d", tc.Destination, tc.NumDays)
	}

	for _, s := range allScorers() {
		got := s.Score(tc)
		if !almostEqual(got, 1.0) {
			t.Errorf("%s = %f, want 1.0", s.Name(), got)
		}
		if got < s.Threshold() {
			t.Errorf("%s should pass its threshold %f", s.Name(), s.Threshold())
		}
	}
}

func TestContainsAny(t *testing.T) {
	if !containsAny("we will visit the museum", activityKeywords) {
		t.Error("expected match on 'visit'")
	}
	if containsAny("nothing relevant here", accommodationKeywords) {
		t.Error("expected no match")
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(1.2); got != 1.0 {
		t.Errorf("clamp(1.2) = %f, want 1.0", got)
	}
	if got := clamp(-0.1); got != 0 {
		t.Errorf("clamp(-0.1) = %f, want 0", got)
	}
	if got := clamp(0.5); got != 0.5 {
		t.Errorf("clamp(0.5) = %f, want 0.5", got)
	}
}
