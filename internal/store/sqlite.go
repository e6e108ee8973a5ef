package store

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/GowthamanS-2001/Berlin-jobs/internal/model"
)

// Ensure SQLiteStore implements model.RunStore.
var _ model.RunStore = (*SQLiteStore)(nil)

// SQLiteStore archives each sent digest so past runs can be inspected with
// the history and browse commands. The pipeline only writes to it: nothing
// reads the archive to influence a later run.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and ensures
// the archive tables exist.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS runs (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		ran_at    TEXT NOT NULL,
		queries   TEXT NOT NULL,
		row_count INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS run_listings (
		run_id   INTEGER NOT NULL REFERENCES runs(id),
		position INTEGER NOT NULL,
		title    TEXT NOT NULL,
		company  TEXT NOT NULL,
		location TEXT NOT NULL,
		posted   TEXT NOT NULL,
		source   TEXT NOT NULL,
		link     TEXT NOT NULL,
		query    TEXT NOT NULL,
		salary   TEXT NOT NULL,
		PRIMARY KEY (run_id, position)
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating archive tables: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// RecordRun inserts the digest and its rows in one transaction and returns
// the new run ID.
func (s *SQLiteStore) RecordRun(d model.Digest) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO runs (ran_at, queries, row_count) VALUES (?, ?, ?)",
		d.RanAt.UTC().Format(time.RFC3339), distinctQueries(d.Rows), d.Count,
	)
	if err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}

	for i, r := range d.Rows {
		_, err := tx.Exec(
			`INSERT INTO run_listings (run_id, position, title, company, location, posted, source, link, query, salary)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, i, r.Title, r.Company, r.Location, r.Posted, r.Source, r.Link, r.Query, r.Salary,
		)
		if err != nil {
			return 0, fmt.Errorf("recording run listing %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}
	return runID, nil
}

// ListRuns returns up to limit archived runs, newest first.
func (s *SQLiteStore) ListRuns(limit int) ([]model.RunSummary, error) {
	rows, err := s.db.Query(
		"SELECT id, ran_at, queries, row_count FROM runs ORDER BY id DESC LIMIT ?", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []model.RunSummary
	for rows.Next() {
		var run model.RunSummary
		var ranAt string
		if err := rows.Scan(&run.ID, &ranAt, &run.Queries, &run.RowCount); err != nil {
			return nil, fmt.Errorf("listing runs: %w", err)
		}
		run.RanAt, err = time.Parse(time.RFC3339, ranAt)
		if err != nil {
			return nil, fmt.Errorf("listing runs: parsing ran_at %q: %w", ranAt, err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return runs, nil
}

// RunListings returns the rows of one archived run in digest order.
func (s *SQLiteStore) RunListings(runID int64) ([]model.Listing, error) {
	rows, err := s.db.Query(
		`SELECT title, company, location, posted, source, link, query, salary
		 FROM run_listings WHERE run_id = ? ORDER BY position`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("loading run %d: %w", runID, err)
	}
	defer rows.Close()

	var listings []model.Listing
	for rows.Next() {
		var l model.Listing
		if err := rows.Scan(&l.Title, &l.Company, &l.Location, &l.Posted, &l.Source, &l.Link, &l.Query, &l.Salary); err != nil {
			return nil, fmt.Errorf("loading run %d: %w", runID, err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading run %d: %w", runID, err)
	}
	return listings, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// distinctQueries returns the sorted distinct Query values of the rows,
// comma-separated, for the run summary.
func distinctQueries(rows []model.Listing) string {
	set := make(map[string]struct{})
	for _, r := range rows {
		if r.Query != "" {
			set[r.Query] = struct{}{}
		}
	}
	queries := make([]string, 0, len(set))
	for q := range set {
		queries = append(queries, q)
	}
	sort.Strings(queries)
	return strings.Join(queries, ", ")
}
