package model

import "time"

// Listing is the canonical row carried through the digest pipeline. It is
// created exactly once by the normalizer and never mutated afterwards;
// ranking and rendering only read its fields.
type Listing struct {
	Title    string // required, trimmed
	Company  string // trimmed, may be empty
	Location string
	Source   string // referring site/aggregator, if known
	Link     string // best-available apply URL, empty if none
	Posted   string // free-text recency signal ("Just posted", "3 days ago")
	Salary   string
	Query    string // the search keyword that produced this row
}

// Key is the identity triple used to deduplicate listings within one run.
// Listings have no identity beyond this triple.
type Key struct {
	Title   string
	Company string
	Link    string
}

// Key returns the listing's identity triple.
func (l Listing) Key() Key {
	return Key{Title: l.Title, Company: l.Company, Link: l.Link}
}

// Digest is the rendered output of one pipeline run: the HTML body, the CSV
// attachment, and the ranked rows they were built from.
type Digest struct {
	Subject        string
	HTML           string
	CSV            []byte
	AttachmentName string
	Rows           []Listing
	Count          int
	RanAt          time.Time
}

// RunSummary describes one archived digest run.
type RunSummary struct {
	ID       int64
	RanAt    time.Time
	Queries  string // comma-separated distinct queries that produced rows
	RowCount int
}

// DigestSender delivers one rendered digest to its destination.
type DigestSender interface {
	Send(d Digest) error
}

// RunStore archives sent digests for later inspection. It is never consulted
// by the pipeline itself: deduplication stays scoped to a single run.
type RunStore interface {
	RecordRun(d Digest) (int64, error)
	ListRuns(limit int) ([]RunSummary, error)
	RunListings(runID int64) ([]Listing, error)
	Close() error
}
