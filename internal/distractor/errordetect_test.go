package distractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorDetection_AlwaysDiffers(t *testing.T) {
	s := NewSeeded(12)
	words := append([]string{}, sampleWords...)
	words = append(words, "b", "aa", "zz", "dry")
	for _, word := range words {
		ed := s.ErrorDetection(word)
		assert.Equal(t, word, ed.OriginalWord)
		assert.NotEmpty(t, ed.MisspelledWord, "word %q", word)
		assert.NotEqual(t, word, ed.MisspelledWord, "word %q", word)
	}
}

func TestMisspellOnce_RulePriority(t *testing.T) {
	s := NewSeeded(1)
	tests := []struct {
		word, want string
	}{
		{"believe", "beleive"}, // ie -> ei wins first
		{"receive", "recieve"}, // ei -> ie
		{"letter", "leter"},    // double-letter removal
		{"knock", "nock"},      // silent kn -> n
		{"light", "ligt"},      // silent gh -> g
		{"stone", "ston"},      // trailing-e removal
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, s.misspellOnce(tc.word), "word %q", tc.word)
	}
}

func TestMisspellOnce_VowelAndTransposition(t *testing.T) {
	s := NewSeeded(1)
	// No ie/ei, doubles, silent digraphs, or trailing e: the first "a" is
	// swapped for "e".
	assert.Equal(t, "cet", s.misspellOnce("cat"))
	// No vowels from the substitution set at all: adjacent transposition.
	assert.Equal(t, "rdy", s.misspellOnce("dry"))
}

func TestMisspellOnce_ForcedMutationForStubbornWords(t *testing.T) {
	s := NewSeeded(8)
	// Single letters match no rule other than the guaranteed mutation.
	got := s.misspellOnce("b")
	assert.NotEqual(t, "b", got)
	assert.NotEmpty(t, got)
}
