package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"identical", "selenium", "selenium", 0},
		{"empty vs empty", "", "", 0},
		{"empty vs non-empty", "", "tcs", 3},
		{"single substitution", "tcs", "tps", 1},
		{"single insertion", "tcs", "tcss", 1},
		{"unrelated", "zzz", "tcs", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
		})
	}
}

func TestDistanceSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"infosys", "infosis"},
		{"google", "goggle"},
		{"a", "abcdef"},
		{"", "accenture"},
	}

	for _, p := range pairs {
		assert.Equal(t, Distance(p[0], p[1]), Distance(p[1], p[0]),
			"distance(%q,%q) should be symmetric", p[0], p[1])
	}
}

func TestFindClosestMatch_Exact(t *testing.T) {
	match, score, ok := FindClosestMatch("TCS", []string{"TCS", "Infosys"}, DefaultThreshold)
	assert.True(t, ok)
	assert.Equal(t, "TCS", match)
	assert.Equal(t, 1.0, score)
}

func TestFindClosestMatch_ExactIsCaseInsensitive(t *testing.T) {
	match, score, ok := FindClosestMatch("infosys", []string{"TCS", "Infosys"}, DefaultThreshold)
	assert.True(t, ok)
	assert.Equal(t, "Infosys", match)
	assert.Equal(t, 1.0, score)
}

func TestFindClosestMatch_Substring(t *testing.T) {
	match, score, ok := FindClosestMatch("info", []string{"TCS", "Infosys"}, DefaultThreshold)
	assert.True(t, ok)
	assert.Equal(t, "Infosys", match)
	assert.Equal(t, 0.9, score)
}

func TestFindClosestMatch_SubstringFirstInOrderWins(t *testing.T) {
	// Both candidates contain "tech"; iteration order decides.
	match, _, ok := FindClosestMatch("tech", []string{"TechMahindra", "HCL Tech"}, DefaultThreshold)
	assert.True(t, ok)
	assert.Equal(t, "TechMahindra", match)

	match, _, ok = FindClosestMatch("tech", []string{"HCL Tech", "TechMahindra"}, DefaultThreshold)
	assert.True(t, ok)
	assert.Equal(t, "HCL Tech", match)
}

func TestFindClosestMatch_Fuzzy(t *testing.T) {
	// "tcds" neither contains nor is contained in "tcs", so only the
	// fuzzy stage can match: one edit over length 4, similarity 0.75.
	match, score, ok := FindClosestMatch("tcds", []string{"TCS", "Infosys"}, 0.6)
	assert.True(t, ok)
	assert.Equal(t, "TCS", match)
	assert.GreaterOrEqual(t, score, 0.6)
	assert.InDelta(t, 0.75, score, 1e-9)
}

func TestFindClosestMatch_InputContainingCandidateIsSubstring(t *testing.T) {
	// An input that contains a candidate resolves at the substring
	// stage, not the fuzzy stage.
	match, score, ok := FindClosestMatch("tcss", []string{"TCS", "Infosys"}, 0.6)
	assert.True(t, ok)
	assert.Equal(t, "TCS", match)
	assert.Equal(t, 0.9, score)
}

func TestFindClosestMatch_BelowThreshold(t *testing.T) {
	match, score, ok := FindClosestMatch("zzz", []string{"TCS", "Infosys"}, DefaultThreshold)
	assert.False(t, ok)
	assert.Empty(t, match)
	assert.Less(t, score, DefaultThreshold)
}

func TestFindClosestMatch_ScorePropagatedOnFailure(t *testing.T) {
	// One substitution over length 6: similarity ~0.833, below a
	// strict threshold, but the score still comes back for
	// diagnostics.
	match, score, ok := FindClosestMatch("goggle", []string{"Google"}, 0.95)
	assert.False(t, ok)
	assert.Empty(t, match)
	assert.InDelta(t, 1.0-1.0/6.0, score, 1e-9)
}

func TestFindClosestMatch_EmptyCandidates(t *testing.T) {
	match, score, ok := FindClosestMatch("tcs", nil, DefaultThreshold)
	assert.False(t, ok)
	assert.Empty(t, match)
	assert.Equal(t, 0.0, score)
}
