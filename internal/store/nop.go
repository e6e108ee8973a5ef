package store

import "github.com/GowthamanS-2001/Berlin-jobs/internal/model"

// NopStore is a no-op archive used in dry-run mode. Nothing is recorded and
// the history is always empty.
type NopStore struct{}

func NewNopStore() *NopStore { return &NopStore{} }

func (s *NopStore) RecordRun(d model.Digest) (int64, error)          { return 0, nil }
func (s *NopStore) ListRuns(limit int) ([]model.RunSummary, error)   { return nil, nil }
func (s *NopStore) RunListings(runID int64) ([]model.Listing, error) { return nil, nil }
func (s *NopStore) Close() error                                     { return nil }
