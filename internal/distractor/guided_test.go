package distractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskSizes(t *testing.T) {
	tests := []struct {
		n, pre, suf int
	}{
		{1, 0, 0},
		{2, 1, 0},
		{3, 1, 1},
		{4, 1, 1},
		{5, 2, 2},
		{6, 2, 2},
		{7, 2, 3},
		{12, 2, 3},
	}
	for _, tc := range tests {
		pre, suf := maskSizes(tc.n)
		assert.Equal(t, tc.pre, pre, "length %d", tc.n)
		assert.Equal(t, tc.suf, suf, "length %d", tc.n)
	}
}

func TestGuidedCompletion_Reconstructs(t *testing.T) {
	s := NewSeeded(14)
	for _, word := range sampleWords {
		gc := s.GuidedCompletion(word)

		assert.Equal(t, word, gc.CorrectCompletion, "word %q", word)
		require.Len(t, gc.IncompleteWord, len(word), "word %q", word)

		start := strings.Index(gc.IncompleteWord, "_")
		require.GreaterOrEqual(t, start, 0, "word %q has no placeholder", word)
		end := strings.LastIndex(gc.IncompleteWord, "_") + 1

		rebuilt := gc.IncompleteWord[:start] + word[start:end] + gc.IncompleteWord[end:]
		assert.Equal(t, word, rebuilt, "word %q", word)
	}
}

func TestGuidedCompletion_MasksMiddle(t *testing.T) {
	s := NewSeeded(20)
	gc := s.GuidedCompletion("beautiful")
	assert.Equal(t, "be____ful", gc.IncompleteWord)
}

func TestGuidedCompletion_HintNeverEmpty(t *testing.T) {
	s := NewSeeded(31)
	for _, word := range sampleWords {
		for i := 0; i < 8; i++ {
			assert.NotEmpty(t, s.GuidedCompletion(word).Hint, "word %q", word)
		}
	}
}

func TestCountVowels(t *testing.T) {
	assert.Equal(t, 5, countVowels("education"))
	assert.Equal(t, 0, countVowels("rhythm"))
}
