package distractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSuffix(t *testing.T) {
	tests := []struct {
		word, base, suffix string
	}{
		{"education", "educat", "ion"},
		{"apple", "ap", "ple"},
		{"ship", "sh", "ip"},
		{"cat", "c", "at"},
		{"at", "a", "t"},
		{"a", "", "a"},
	}
	for _, tc := range tests {
		base, suffix := splitSuffix(tc.word)
		assert.Equal(t, tc.base, base, "word %q", tc.word)
		assert.Equal(t, tc.suffix, suffix, "word %q", tc.word)
	}
}

func TestSuffixCompletion_Reconstructs(t *testing.T) {
	s := NewSeeded(3)
	for _, word := range sampleWords {
		sc := s.SuffixCompletion(word)
		assert.Equal(t, word, sc.BaseWord+sc.CorrectSuffix, "word %q", word)
	}
}

func TestSuffixCompletion_Options(t *testing.T) {
	s := NewSeeded(11)
	for _, word := range sampleWords {
		sc := s.SuffixCompletion(word)
		require.Len(t, sc.Options, 4, "word %q", word)

		seen := map[string]int{}
		for _, o := range sc.Options {
			assert.NotEmpty(t, o, "word %q", word)
			seen[o]++
		}
		assert.Equal(t, 1, seen[sc.CorrectSuffix], "correct suffix once for %q", word)
		for o, n := range seen {
			assert.Equal(t, 1, n, "duplicate option %q for %q", o, word)
		}
	}
}

func TestWrongSuffixes_TableHit(t *testing.T) {
	s := NewSeeded(5)
	got := s.wrongSuffixes("ion", 3)
	assert.ElementsMatch(t, []string{"ian", "eon", "oin"}, got)
}

func TestWrongSuffixes_FallbackForUnknownSuffix(t *testing.T) {
	s := NewSeeded(5)
	got := s.wrongSuffixes("xq", 3)
	require.Len(t, got, 3)
	for _, o := range got {
		assert.NotEqual(t, "xq", o)
		assert.NotEmpty(t, o)
	}
}

func TestSuffixMutations(t *testing.T) {
	got := suffixMutations("ing")
	// First vowel swapped for every other vowel.
	assert.Contains(t, got, "ang")
	assert.Contains(t, got, "ong")
	// Leading transposition and truncation.
	assert.Contains(t, got, "nig")
	assert.Contains(t, got, "in")
	// Doubled final letter.
	assert.Contains(t, got, "ingg")
}
