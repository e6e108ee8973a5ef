package serpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
)

// scriptedSearcher returns canned pages keyed by (query, page).
type scriptedSearcher struct {
	pages map[string][]RawListing
	err   error
	calls []string
}

func (s *scriptedSearcher) SearchPage(_ context.Context, query string, page int) ([]RawListing, error) {
	key := fmt.Sprintf("%s/%d", query, page)
	s.calls = append(s.calls, key)
	if s.err != nil {
		return nil, s.err
	}
	return s.pages[key], nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func listing(title string) RawListing {
	return RawListing{Title: title}
}

func TestCollect_KeywordThenPageOrder(t *testing.T) {
	searcher := &scriptedSearcher{pages: map[string][]RawListing{
		"alpha/0": {listing("a0-1"), listing("a0-2")},
		"alpha/1": {listing("a1-1")},
		"beta/0":  {listing("b0-1")},
	}}

	c := NewCollector(searcher, []string{"alpha", "beta"}, 2, discardLogger())
	hits, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	wantTitles := []string{"a0-1", "a0-2", "a1-1", "b0-1"}
	if len(hits) != len(wantTitles) {
		t.Fatalf("got %d hits, want %d", len(hits), len(wantTitles))
	}
	for i, want := range wantTitles {
		if hits[i].Raw.Title != want {
			t.Errorf("hit %d = %q, want %q", i, hits[i].Raw.Title, want)
		}
	}

	// Each hit carries its originating query.
	if hits[0].Query != "alpha" || hits[3].Query != "beta" {
		t.Errorf("provenance lost: %q / %q", hits[0].Query, hits[3].Query)
	}
}

func TestCollect_EmptyPageStopsPagingThatQuery(t *testing.T) {
	searcher := &scriptedSearcher{pages: map[string][]RawListing{
		"alpha/0": {listing("a0-1")},
		// alpha/1 empty: alpha/2 must never be requested.
		"alpha/2": {listing("unreachable")},
		"beta/0":  {listing("b0-1")},
	}}

	c := NewCollector(searcher, []string{"alpha", "beta"}, 3, discardLogger())
	hits, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2", len(hits))
	}
	for _, call := range searcher.calls {
		if call == "alpha/2" {
			t.Error("paging should stop after an empty page")
		}
	}
}

func TestCollect_NoListingsAtAllIsNotAnError(t *testing.T) {
	searcher := &scriptedSearcher{pages: map[string][]RawListing{}}

	c := NewCollector(searcher, []string{"alpha", "beta"}, 2, discardLogger())
	hits, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("got %d hits, want 0", len(hits))
	}
}

func TestCollect_HardFailureAborts(t *testing.T) {
	searcher := &scriptedSearcher{err: errors.New("connection refused")}

	c := NewCollector(searcher, []string{"alpha", "beta"}, 2, discardLogger())
	_, err := c.Collect(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if len(searcher.calls) != 1 {
		t.Errorf("collector should abort on first hard failure, made %d calls", len(searcher.calls))
	}
}
