package scorer

import (
	"testing"

	"github.com/danielpatrickdp/travel-eval/internal/testcase"
)

func TestRelevanceScore(t *testing.T) {
	tests := []struct {
		name     string
		tc       testcase.TestCase
		want     float64
		wantPass bool
	}{
		{
			name: "full credit",
			tc: testcase.TestCase{
				Destination: "Paris",
				NumDays:     3,
				Response: "Day 1: Visit the Eiffel Tower. Day 2: Explore the Louvre. " +
					"Day 3: Relax and depart. Stay at a central hotel. " +
					"This itinerary for Paris covers 3-day highlights.",
			},
			want:     1.0,
			wantPass: true,
		},
		{
			name: "missing destination",
			tc: testcase.TestCase{
				Destination: "Oslo",
				NumDays:     2,
				Response:    "Day 1: visit the fjords. A 2-day plan.",
			},
			want:     0.7,
			wantPass: true,
		},
		{
			name: "hyphenated day count only",
			tc: testcase.TestCase{
				Destination: "Rome",
				NumDays:     4,
				Response:    "rome has a lovely four-day feel, try the 4-day pass",
			},
			// destination + day count + keyword-free text without structure
			want:     0.6,
			wantPass: false,
		},
		{
			name: "structure via first",
			tc: testcase.TestCase{
				Destination: "Berlin",
				NumDays:     5,
				Response:    "On the first day in Berlin, wander without a plan.",
			},
			// destination + structure; no literal 5, no keywords
			want:     0.5,
			wantPass: false,
		},
		{
			name: "keywords only",
			tc: testcase.TestCase{
				Destination: "Cairo",
				NumDays:     9,
				Response:    "visit the pyramids and tour the museum",
			},
			want:     0.2,
			wantPass: false,
		},
		{
			name:     "empty response",
			tc:       testcase.TestCase{Destination: "Paris", NumDays: 3, Response: ""},
			want:     0,
			wantPass: false,
		},
	}

	r := Relevance{threshold: 0.7}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Score(tt.tc)
			if !almostEqual(got, tt.want) {
				t.Errorf("Score = %f, want %f", got, tt.want)
			}
			if pass := got >= r.Threshold(); pass != tt.wantPass {
				t.Errorf("pass = %v, want %v (score %f)", pass, tt.wantPass, got)
			}
		})
	}
}

func TestRelevanceCapsAtOne(t *testing.T) {
	tc := testcase.TestCase{
		Destination: "Paris",
		NumDays:     1,
		Response:    "Paris 1-day day 1 first visit explore see tour hotel restaurant",
	}
	r := Relevance{threshold: 0.7}
	if got := r.Score(tc); !almostEqual(got, 1.0) {
		t.Errorf("Score = %f, want capped 1.0", got)
	}
}
