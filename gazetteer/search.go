// Copyright 2026 The Globalise Places Explorer Authors
// SPDX-License-Identifier: Apache-2.0

package gazetteer

import (
	"sort"
	"strings"

	"github.com/KayWP/globalise-places-explorer/utils/textutils"
)

const (
	// MinScore is the relevance floor: matches scoring at or below it are
	// dropped from results.
	MinScore = 0.3

	// PreferredBonus is added to a record's score when its label is the
	// canonical spelling. The sum is not clamped, so a preferred exact
	// match can score above 1.0.
	PreferredBonus = 0.1

	// Result count bounds exposed to callers.
	DefaultTopN = 10
	MinTopN     = 5
	MaxTopN     = 50
)

// Score computes the case-insensitive similarity between a query and a label,
// in [0,1]. Symmetric and deterministic; Score(q, q) is 1 for any q.
func Score(query, label string) float64 {
	return MatchRatio(strings.ToLower(query), strings.ToLower(label))
}

// ScoredMatch is a gazetteer record ranked against a query. Transient: built
// per search, never stored.
type ScoredMatch struct {
	PlaceRecord
	Score float64 `json:"score"`
}

// SearchOptions tune a search. The zero value gives the defaults.
type SearchOptions struct {
	// TopN caps the result count; non-positive means DefaultTopN.
	TopN int

	// Fold enables accent-insensitive scoring, so a query without
	// diacritics matches a transcribed label exactly. Off by default:
	// plain lowercase comparison is the reference behavior.
	Fold bool
}

// Search ranks every record's label against the query and returns the
// surviving matches in descending score order.
//
// An empty query returns nil, not an error. Ties keep the records' original
// order. The TopN cap applies before the MinScore filter, so a low cap can
// drop rows that would otherwise clear the threshold.
func Search(records []PlaceRecord, query string, opts SearchOptions) []ScoredMatch {
	if query == "" {
		return nil
	}

	topN := opts.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	score := Score
	if opts.Fold {
		folded := textutils.LowerASCIIFolding(query)
		score = func(_, label string) float64 {
			return MatchRatio(folded, textutils.LowerASCIIFolding(label))
		}
	}

	matches := make([]ScoredMatch, 0, len(records))

	for _, rec := range records {
		s := score(query, rec.Label)
		if rec.IsPreferred() {
			s += PreferredBonus
		}

		matches = append(matches, ScoredMatch{PlaceRecord: rec, Score: s})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > topN {
		matches = matches[:topN]
	}

	kept := matches[:0]

	for _, m := range matches {
		if m.Score > MinScore {
			kept = append(kept, m)
		}
	}

	return kept
}

// ClampTopN bounds a user-supplied result count to [MinTopN, MaxTopN],
// substituting DefaultTopN for non-positive input.
func ClampTopN(n int) int {
	switch {
	case n <= 0:
		return DefaultTopN
	case n < MinTopN:
		return MinTopN
	case n > MaxTopN:
		return MaxTopN
	default:
		return n
	}
}

// PlaceGroup collects all matches that share a GlobID. Matches keep the
// score order they had in the flat result list, so the first element is the
// group's best match.
type PlaceGroup struct {
	GlobID  string        `json:"glob_id"`
	Matches []ScoredMatch `json:"matches"`
}

// Best returns the group's highest-scoring match.
func (g *PlaceGroup) Best() ScoredMatch {
	return g.Matches[0]
}

// Variants returns the deduplicated spellings of the group: every matched
// label plus the shared preferred label, in first-seen order.
func (g *PlaceGroup) Variants() []string {
	seen := make(map[string]struct{}, len(g.Matches)+1)

	var variants []string

	add := func(label string) {
		if _, ok := seen[label]; ok {
			return
		}

		seen[label] = struct{}{}
		variants = append(variants, label)
	}

	for _, m := range g.Matches {
		add(m.Label)
	}

	if len(g.Matches) > 0 {
		add(g.Matches[0].PrefLabel)
	}

	return variants
}

// GroupByPlace splits an already ranked match list into per-place groups,
// preserving the order in which each GlobID was first seen. Matches sharing
// a GlobID always land in the same group.
func GroupByPlace(matches []ScoredMatch) []PlaceGroup {
	index := make(map[string]int, len(matches))

	var groups []PlaceGroup

	for _, m := range matches {
		if i, ok := index[m.GlobID]; ok {
			groups[i].Matches = append(groups[i].Matches, m)

			continue
		}

		index[m.GlobID] = len(groups)
		groups = append(groups, PlaceGroup{
			GlobID:  m.GlobID,
			Matches: []ScoredMatch{m},
		})
	}

	return groups
}
