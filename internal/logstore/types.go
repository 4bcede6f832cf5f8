package logstore

import "time"

// #region entry
// Entry is a single logged agent interaction. Entries are append-only and
// never mutated after insert.
type Entry struct {
	ID              string
	Destination     string
	NumDays         int
	Response        string
	ResearcherNotes string
	MetadataJSON    string
	CreatedAt       time.Time
}
// #endregion entry
