package distractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleWords = []string{
	"beautiful", "believe", "letter", "running", "education",
	"knock", "wrist", "ship", "cat", "at", "a", "occasion", "science",
}

func TestMultipleChoice_Shape(t *testing.T) {
	s := NewSeeded(42)
	for _, word := range sampleWords {
		mc := s.MultipleChoice(word)

		assert.Equal(t, word, mc.Correct, "word %q", word)
		require.Len(t, mc.Options, 4, "word %q", word)

		seen := map[string]int{}
		for _, o := range mc.Options {
			assert.NotEmpty(t, o, "word %q", word)
			seen[o]++
		}
		assert.Equal(t, 1, seen[word], "correct answer must appear exactly once for %q", word)
		for o, n := range seen {
			assert.Equal(t, 1, n, "duplicate option %q for word %q", o, word)
		}
	}
}

func TestMisspellings_DistinctAndWrong(t *testing.T) {
	s := NewSeeded(7)
	for _, word := range sampleWords {
		got := s.misspellings(word, 3)
		require.Len(t, got, 3, "word %q", word)
		seen := map[string]struct{}{}
		for _, m := range got {
			assert.NotEmpty(t, m)
			assert.NotEqual(t, word, m)
			_, dup := seen[m]
			assert.False(t, dup, "duplicate misspelling %q for %q", m, word)
			seen[m] = struct{}{}
		}
	}
}

func TestMisspellings_DeterministicWithSeed(t *testing.T) {
	a := NewSeeded(99).misspellings("challenge", 3)
	b := NewSeeded(99).misspellings("challenge", 3)
	assert.Equal(t, a, b)
}

func TestDoubleLetterVariants(t *testing.T) {
	got := doubleLetterVariants("letter")
	// "tt" at index 2 loses one copy.
	assert.Contains(t, got, "leter")
	// Unequal pairs gain a duplicate of their first letter.
	assert.Contains(t, got, "lletter")
}

func TestDoubleLetterVariants_KeepsMinimumLength(t *testing.T) {
	// Removing a doubled letter from a 3-letter word would leave 2 letters.
	for _, cand := range doubleLetterVariants("off") {
		assert.GreaterOrEqual(t, len(cand), 3)
	}
}

func TestVowelPatternVariants(t *testing.T) {
	got := vowelPatternVariants("believe")
	assert.Contains(t, got, "beleive") // ie -> ei (first occurrence)
}

func TestSilentLetterVariants(t *testing.T) {
	assert.Contains(t, silentLetterVariants("knock"), "nock")
	assert.Contains(t, silentLetterVariants("wrist"), "rist")
	// Words without a trailing e gain one.
	assert.Contains(t, silentLetterVariants("cat"), "cate")
}

func TestSuffixEndingVariants(t *testing.T) {
	assert.Contains(t, suffixEndingVariants("beautiful"), "beautifull")
	assert.Contains(t, suffixEndingVariants("station"), "stasion")
	// No ending match, no candidates.
	assert.Empty(t, suffixEndingVariants("cat"))
}

func TestPhoneticVariants(t *testing.T) {
	assert.Contains(t, phoneticVariants("phone"), "fone")
	assert.Contains(t, phoneticVariants("cat"), "kat")
}

func TestTranspositionVariants(t *testing.T) {
	got := transpositionVariants("cat")
	assert.ElementsMatch(t, []string{"act", "cta"}, got)
}

func TestMostPlausible_PrefersSimilarCandidates(t *testing.T) {
	got := mostPlausible("spelling", []string{"speling", "zzzzz", "spellling"}, 2)
	require.Len(t, got, 2)
	assert.NotContains(t, got, "zzzzz")
}
