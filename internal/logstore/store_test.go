package logstore

import (
	"path/filepath"
	"testing"
	"time"
)

// #region helpers

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// #endregion helpers

func TestAppendFillsDefaults(t *testing.T) {
	s := tempStore(t)

	got, err := s.Append(Entry{Destination: "Paris", NumDays: 3, Response: "plan"})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if got.ID == "" {
		t.Error("expected generated entry ID")
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected generated timestamp")
	}
}

func TestAllReturnsAppendOrder(t *testing.T) {
	s := tempStore(t)

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	dests := []string{"Paris", "Tokyo", "London"}
	for i, d := range dests {
		_, err := s.Append(Entry{
			Destination: d,
			NumDays:     i + 1,
			Response:    "plan for " + d,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Append %s: %v", d, err)
		}
	}

	entries, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(entries) != len(dests) {
		t.Fatalf("expected %d entries, got %d", len(dests), len(entries))
	}
	for i, e := range entries {
		if e.Destination != dests[i] {
			t.Errorf("entry %d destination = %s, want %s", i, e.Destination, dests[i])
		}
	}
}

func TestRecentReturnsNewestFirst(t *testing.T) {
	s := tempStore(t)

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i, d := range []string{"Paris", "Tokyo", "London"} {
		if _, err := s.Append(Entry{
			Destination: d,
			NumDays:     1,
			Response:    "plan",
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("Append %s: %v", d, err)
		}
	}

	entries, err := s.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Destination != "London" || entries[1].Destination != "Tokyo" {
		t.Errorf("unexpected order: %s, %s", entries[0].Destination, entries[1].Destination)
	}
}

func TestCount(t *testing.T) {
	s := tempStore(t)

	if n, err := s.Count(); err != nil || n != 0 {
		t.Fatalf("Count on empty store = %d, %v", n, err)
	}
	if _, err := s.Append(Entry{Destination: "Paris", NumDays: 3, Response: "plan"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if n, err := s.Count(); err != nil || n != 1 {
		t.Fatalf("Count = %d, %v, want 1", n, err)
	}
}

func TestOptionalFieldsRoundTrip(t *testing.T) {
	s := tempStore(t)

	full := Entry{
		Destination:     "Paris",
		NumDays:         3,
		Response:        "plan",
		ResearcherNotes: "museum hours, metro passes",
		MetadataJSON:    `{"agent_name":"planner"}`,
	}
	bare := Entry{
		Destination: "Tokyo",
		NumDays:     7,
		Response:    "plan",
		CreatedAt:   time.Now().UTC().Add(time.Second),
	}

	if _, err := s.Append(full); err != nil {
		t.Fatalf("Append full: %v", err)
	}
	if _, err := s.Append(bare); err != nil {
		t.Fatalf("Append bare: %v", err)
	}

	entries, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if entries[0].ResearcherNotes != full.ResearcherNotes {
		t.Errorf("notes = %q, want %q", entries[0].ResearcherNotes, full.ResearcherNotes)
	}
	if entries[0].MetadataJSON != full.MetadataJSON {
		t.Errorf("metadata = %q, want %q", entries[0].MetadataJSON, full.MetadataJSON)
	}
	if entries[1].ResearcherNotes != "" || entries[1].MetadataJSON != "" {
		t.Errorf("expected empty optional fields, got %q / %q",
			entries[1].ResearcherNotes, entries[1].MetadataJSON)
	}
}
