// Copyright 2026 The Globalise Places Explorer Authors
// SPDX-License-Identifier: Apache-2.0

package gazetteer

import (
	"slices"
	"sync"
)

// Store holds the working set of place records for one session. It is
// append-only: uploads are concatenated, never deduplicated row-wise, and
// individual records are never mutated or deleted. An upload fingerprint is
// merged at most once, so re-processing the same file is a no-op.
//
// Merges swap in a freshly built slice under the lock, so a slice handed out
// by Snapshot is never written to again: concurrent searches can scan it
// without further locking, and a reader sees either the pre- or post-merge
// sequence, never a partial one.
type Store struct {
	mu      sync.RWMutex
	records []PlaceRecord
	merged  map[string]struct{}
}

// NewStore creates a store seeded with the base dataset.
func NewStore(initial []PlaceRecord) *Store {
	return &Store{
		records: slices.Clone(initial),
		merged:  make(map[string]struct{}),
	}
}

// MergeResult reports what a merge did.
type MergeResult struct {
	Added     int  `json:"added"`
	Total     int  `json:"total"`
	Duplicate bool `json:"duplicate"`
}

// Merge appends rows to the store unless sourceKey has already been merged
// in this session. A duplicate merge leaves the store untouched and reports
// the current total instead.
func (s *Store) Merge(rows []PlaceRecord, sourceKey string) MergeResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.merged[sourceKey]; ok {
		return MergeResult{Total: len(s.records), Duplicate: true}
	}

	s.merged[sourceKey] = struct{}{}

	next := make([]PlaceRecord, 0, len(s.records)+len(rows))
	next = append(next, s.records...)
	next = append(next, rows...)
	s.records = next

	return MergeResult{Added: len(rows), Total: len(next)}
}

// Snapshot returns the current record sequence. The returned slice is
// immutable; callers may scan it concurrently.
func (s *Store) Snapshot() []PlaceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.records
}

// Len returns the current record count.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}

// DatasetStats summarizes a record sequence.
type DatasetStats struct {
	Records         int `json:"records"`
	UniquePlaces    int `json:"unique_places"`
	UniquePreferred int `json:"unique_preferred"`
	UsableLocations int `json:"usable_locations"`
}

// ComputeStats counts records, distinct places, distinct preferred spellings,
// and rows with a usable location.
func ComputeStats(records []PlaceRecord) DatasetStats {
	places := make(map[string]struct{})
	preferred := make(map[string]struct{})
	usable := 0

	for i := range records {
		places[records[i].GlobID] = struct{}{}
		preferred[records[i].PrefLabel] = struct{}{}

		if _, ok := records[i].Location(); ok {
			usable++
		}
	}

	return DatasetStats{
		Records:         len(records),
		UniquePlaces:    len(places),
		UniquePreferred: len(preferred),
		UsableLocations: usable,
	}
}
