package logstore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS interaction_log (
	entry_id         TEXT PRIMARY KEY,
	destination      TEXT NOT NULL,
	num_days         INTEGER NOT NULL,
	response         TEXT NOT NULL,
	researcher_notes TEXT,
	metadata_json    TEXT,
	created_at       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS eval_runs (
	run_id        TEXT PRIMARY KEY,
	case_count    INTEGER NOT NULL,
	pass_count    INTEGER NOT NULL,
	fail_count    INTEGER NOT NULL,
	artifact_path TEXT,
	created_at    TEXT NOT NULL
);
`
// #endregion schema

// #region store-struct
// Store manages the append-only interaction log in SQLite.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}
// #endregion db-accessor

// #region append
// Append inserts a new interaction at the end of the log. The entry ID and
// timestamp are filled in when empty. Returns the entry as stored.
func (s *Store) Append(e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO interaction_log (entry_id, destination, num_days, response, researcher_notes, metadata_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID,
		e.Destination,
		e.NumDays,
		e.Response,
		nullIfEmpty(e.ResearcherNotes),
		nullIfEmpty(e.MetadataJSON),
		e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("append entry: %w", err)
	}
	return e, nil
}
// #endregion append

// #region all
// All returns every logged interaction in append order.
func (s *Store) All() ([]Entry, error) {
	return s.query(`SELECT entry_id, destination, num_days, response, researcher_notes, metadata_json, created_at
		 FROM interaction_log ORDER BY created_at ASC, entry_id ASC`)
}
// #endregion all

// #region recent
// Recent returns the most recent interactions, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	return s.query(`SELECT entry_id, destination, num_days, response, researcher_notes, metadata_json, created_at
		 FROM interaction_log ORDER BY created_at DESC, entry_id DESC LIMIT ?`, limit)
}
// #endregion recent

// #region count
// Count returns the number of logged interactions.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM interaction_log`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}
// #endregion count

// #region query
func (s *Store) query(q string, args ...interface{}) ([]Entry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var notes, metadata sql.NullString
		var createdStr string
		if err := rows.Scan(&e.ID, &e.Destination, &e.NumDays, &e.Response, &notes, &metadata, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if notes.Valid {
			e.ResearcherNotes = notes.String
		}
		if metadata.Valid {
			e.MetadataJSON = metadata.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
// #endregion query

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
// #endregion helpers
