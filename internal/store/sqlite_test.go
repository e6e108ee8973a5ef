package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/GowthamanS-2001/Berlin-jobs/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleDigest(ranAt time.Time) model.Digest {
	return model.Digest{
		Subject: "Digest (2026-08-31)",
		Rows: []model.Listing{
			{
				Title:    "Junior Supply Chain Analyst",
				Company:  "Acme GmbH",
				Location: "Berlin, Germany",
				Posted:   "Just posted",
				Source:   "LinkedIn",
				Link:     "https://jobs.acme.example/1",
				Query:    "supply chain Berlin",
				Salary:   "45K a year",
			},
			{
				Title:   "Procurement Trainee",
				Company: "Beta AG",
				Query:   "procurement Berlin",
			},
		},
		Count: 2,
		RanAt: ranAt,
	}
}

func TestRecordRunRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ranAt := time.Date(2026, 8, 31, 11, 0, 0, 0, time.UTC)
	d := sampleDigest(ranAt)

	runID, err := s.RecordRun(d)
	if err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	run := runs[0]
	if run.ID != runID {
		t.Errorf("run ID = %d, want %d", run.ID, runID)
	}
	if !run.RanAt.Equal(ranAt) {
		t.Errorf("RanAt = %v, want %v", run.RanAt, ranAt)
	}
	if run.RowCount != 2 {
		t.Errorf("RowCount = %d, want 2", run.RowCount)
	}
	if run.Queries != "procurement Berlin, supply chain Berlin" {
		t.Errorf("Queries = %q", run.Queries)
	}

	listings, err := s.RunListings(runID)
	if err != nil {
		t.Fatalf("RunListings: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("got %d listings, want 2", len(listings))
	}
	for i, want := range d.Rows {
		if listings[i] != want {
			t.Errorf("listing %d:\n got %+v\nwant %+v", i, listings[i], want)
		}
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2026, 8, 29, 11, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		d := model.Digest{RanAt: base.AddDate(0, 0, i)}
		if _, err := s.RecordRun(d); err != nil {
			t.Fatalf("RecordRun %d: %v", i, err)
		}
	}

	runs, err := s.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want limit of 2", len(runs))
	}
	if !runs[0].RanAt.After(runs[1].RanAt) {
		t.Errorf("runs not newest-first: %v then %v", runs[0].RanAt, runs[1].RanAt)
	}
}

func TestEmptyRunIsRecorded(t *testing.T) {
	s := newTestStore(t)

	runID, err := s.RecordRun(model.Digest{RanAt: time.Now().UTC()})
	if err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	listings, err := s.RunListings(runID)
	if err != nil {
		t.Fatalf("RunListings: %v", err)
	}
	if len(listings) != 0 {
		t.Errorf("got %d listings, want 0", len(listings))
	}

	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].RowCount != 0 {
		t.Error("zero-row run should still appear in history")
	}
}
