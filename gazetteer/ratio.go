// Copyright 2026 The Globalise Places Explorer Authors
// SPDX-License-Identifier: Apache-2.0

package gazetteer

// MatchRatio computes the Ratcliff/Obershelp similarity between two strings:
// 2*M/T, where M is the total length of the non-overlapping matching blocks
// found by recursively taking the longest common substring, and T is the sum
// of both lengths. The result is in [0,1]; two empty strings are a perfect
// match. Operates on runes, so multi-byte transcriptions compare correctly.
func MatchRatio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)

	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}

	matched := matchedRunes(ra, rb, 0, len(ra), 0, len(rb))

	return 2.0 * float64(matched) / float64(total)
}

// matchedRunes sums matching block lengths over a[alo:ahi] vs b[blo:bhi]:
// the longest block first, then recursion on the pieces to its left and right.
func matchedRunes(a, b []rune, alo, ahi, blo, bhi int) int {
	i, j, size := longestMatch(a, b, alo, ahi, blo, bhi)
	if size == 0 {
		return 0
	}

	return size +
		matchedRunes(a, b, alo, i, blo, j) +
		matchedRunes(a, b, i+size, ahi, j+size, bhi)
}

// longestMatch finds the longest matching block between a[alo:ahi] and
// b[blo:bhi]. Ties go to the block starting earliest in a, then earliest
// in b, which keeps the recursion deterministic.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo

	// j2len[j] is the length of the match ending at a[i-1], b[j].
	j2len := make(map[int]int)

	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)

		for j := blo; j < bhi; j++ {
			if a[i] != b[j] {
				continue
			}

			k := j2len[j-1] + 1
			newj2len[j] = k

			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}

		j2len = newj2len
	}

	return besti, bestj, bestsize
}
