// Copyright 2026 The Globalise Places Explorer Authors
// SPDX-License-Identifier: Apache-2.0

package gazetteer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchRatio(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{"identical", "abarkuh", "abarkuh", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "abarkuh", "", 0.0},
		{"no overlap", "abc", "xyz", 0.0},
		// "abark" + "h" = 6 matched runes out of 7+7.
		{"diacritic variant", "abarkuh", "abarkūh", 2.0 * 6 / 14},
		// "ab" + "uh" + "r" = 5 matched runes out of 7+8.
		{"historical variant", "abarkuh", "abercouh", 2.0 * 5 / 15},
		// Longest block "anana" found before the leading "b" can fragment it.
		{"recursive blocks", "banana", "ananas", 2.0 * 5 / 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, MatchRatio(tc.a, tc.b), 1e-12)
		})
	}
}

func TestMatchRatioSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"abarkuh", "abercouh"},
		{"ternate", "ternaten"},
		{"amsterdam", "nieuw amsterdam"},
		{"", "x"},
	}

	for _, p := range pairs {
		assert.InDelta(t, MatchRatio(p[0], p[1]), MatchRatio(p[1], p[0]), 1e-12)
	}
}

func TestMatchRatioRuneSafety(t *testing.T) {
	// Multi-byte runes count as one unit each, not per byte.
	assert.InDelta(t, 1.0, MatchRatio("ū", "ū"), 1e-12)
	assert.InDelta(t, 0.0, MatchRatio("ū", "é"), 1e-12)
}
