package testcase

import (
	"errors"

	"github.com/danielpatrickdp/travel-eval/internal/logstore"
)

// ErrEmptyInput is returned when no test cases are available and the
// fallback set produced nothing. Unreachable with the hard-coded fallback;
// kept so callers can handle the condition explicitly.
var ErrEmptyInput = errors.New("no test cases available")

// #region testcase
// TestCase is a single evaluation input. Owned by one evaluator run and
// never mutated.
type TestCase struct {
	Destination string
	NumDays     int
	Response    string
}
// #endregion testcase

// #region from-entries
// FromEntries converts logged interactions to test cases, preserving order.
func FromEntries(entries []logstore.Entry) []TestCase {
	cases := make([]TestCase, 0, len(entries))
	for _, e := range entries {
		cases = append(cases, TestCase{
			Destination: e.Destination,
			NumDays:     e.NumDays,
			Response:    e.Response,
		})
	}
	return cases
}
// #endregion from-entries

// #region build
// Build produces the evaluation inputs for a run. When the log store has no
// entries it falls back to the synthetic sample set so the evaluator can
// always run.
func Build(entries []logstore.Entry) ([]TestCase, error) {
	cases := FromEntries(entries)
	if len(cases) == 0 {
		cases = Fallback()
	}
	if len(cases) == 0 {
		return nil, ErrEmptyInput
	}
	return cases, nil
}
// #endregion build

// #region fallback
// Fallback returns the fixed synthetic sample set: a short trip, a long trip,
// a multi-word destination, and one deliberately thin response so reports
// exercise the failure path.
func Fallback() []TestCase {
	return []TestCase{
		{
			Destination: "Paris",
			NumDays:     3,
			Response: "Here is a 3-day itinerary for Paris. " +
				"Day 1: Visit the Eiffel Tower and explore the Latin Quarter, then dinner at a classic bistro restaurant. " +
				"Day 2: Tour the Louvre in the morning and see Montmartre in the afternoon. " +
				"Day 3: Explore the Musée d'Orsay, stroll the Luxembourg park, and relax before departure. " +
				"Stay at a central hotel near the Seine for easy access to every day of the plan.",
		},
		{
			Destination: "Tokyo",
			NumDays:     7,
			Response: "A 7-day Tokyo itinerary. " +
				"Day 1: Arrive and check in to your hotel in Shinjuku. " +
				"Day 2: Explore Asakusa and the Senso-ji temple, then visit the national museum in Ueno park. " +
				"Day 3: See Shibuya and Harajuku, with a sushi restaurant for dinner. " +
				"Day 4: Day trip to Nikko to tour the shrines. " +
				"Day 5: Visit Akihabara and the Imperial Palace gardens. " +
				"Day 6: Explore Odaiba and see the bay. " +
				"Day 7: Last souvenirs and departure. " +
				"Accommodation stays in Shinjuku for the whole week.",
		},
		{
			Destination: "New York",
			NumDays:     5,
			Response: "Your 5-day New York itinerary. " +
				"Day 1: Visit Times Square and see a Broadway show. " +
				"Day 2: Explore Central Park and tour the Metropolitan Museum. " +
				"Day 3: Walk the Brooklyn Bridge and eat at a famous pizza restaurant. " +
				"Day 4: See the Statue of Liberty and explore the Financial District. " +
				"Day 5: Shopping in SoHo before departure. " +
				"Stay at a midtown hotel for short subway rides each day.",
		},
		{
			Destination: "London",
			NumDays:     4,
			Response: "A 4-day London itinerary. " +
				"Day 1: Visit the Tower of London and tour Tower Bridge. " +
				"Day 2: Explore the British Museum and see Covent Garden. " +
				"Day 3: Day out at Greenwich park and the observatory. " +
				"Day 4: Westminster, Big Ben, and a farewell dinner at a pub restaurant. " +
				"Accommodation in a hotel near King's Cross keeps every day simple.",
		},
		{
			// Thin response: under 50 characters, no day markers.
			Destination: "Sydney",
			NumDays:     6,
			Response:    "Sydney is nice. Go to the beach.",
		},
	}
}
// #endregion fallback
