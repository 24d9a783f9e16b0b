// Package matcher resolves free-text names against a fixed universe
// of known keys using edit-distance similarity.
package matcher

import (
	"strings"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// DefaultThreshold is the minimum fuzzy similarity required for a
// match to be considered confident.
const DefaultThreshold = 0.7

// Distance returns the Levenshtein edit distance between a and b:
// the minimum number of single-character insertions, deletions or
// substitutions needed to turn a into b. Case handling is the
// caller's responsibility.
func Distance(a, b string) int {
	return edlib.LevenshteinDistance(a, b)
}

// FindClosestMatch resolves input against candidates and returns the
// best candidate together with a similarity score in [0,1]. ok
// reports whether the match is confident; the score is still
// returned on failure so callers can surface it diagnostically.
//
// Resolution is a three-stage pipeline:
//
//  1. Case-insensitive exact match, score 1.0. Short-circuits
//     everything else.
//  2. Substring containment either way, fixed score 0.9. The first
//     candidate in iteration order wins, so callers must keep
//     candidates in a stable (database insertion) order.
//  3. Fuzzy match: similarity = 1 - distance/max(len), best
//     candidate wins if it clears threshold.
//
// An empty candidate set yields ("", 0, false). The function never
// fails.
func FindClosestMatch(input string, candidates []string, threshold float64) (match string, score float64, ok bool) {
	input = strings.ToLower(input)

	for _, c := range candidates {
		if strings.ToLower(c) == input {
			return c, 1.0, true
		}
	}

	for _, c := range candidates {
		lc := strings.ToLower(c)
		if strings.Contains(lc, input) || strings.Contains(input, lc) {
			return c, 0.9, true
		}
	}

	best := ""
	bestScore := 0.0
	inputLen := utf8.RuneCountInString(input)
	for _, c := range candidates {
		lc := strings.ToLower(c)
		maxLen := utf8.RuneCountInString(lc)
		if inputLen > maxLen {
			maxLen = inputLen
		}
		if maxLen == 0 {
			// Both strings empty; nothing to normalize by.
			continue
		}
		similarity := 1 - float64(Distance(input, lc))/float64(maxLen)
		if similarity > bestScore {
			bestScore = similarity
			best = c
		}
	}

	if bestScore >= threshold {
		return best, bestScore, true
	}
	return "", bestScore, false
}
