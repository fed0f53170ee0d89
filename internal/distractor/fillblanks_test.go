package distractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillBlanks_Reconstructs(t *testing.T) {
	s := NewSeeded(17)
	for _, word := range sampleWords {
		fb := s.FillBlanks(word)
		placeholder := "__"
		if len(word) < 3 {
			placeholder = "_"
		}
		rebuilt := strings.Replace(fb.BlankedWord, placeholder, fb.MissingLetters, 1)
		assert.Equal(t, word, rebuilt, "word %q", word)
		assert.Equal(t, word, fb.CorrectAnswer, "word %q", word)
	}
}

func TestFillBlanks_Options(t *testing.T) {
	s := NewSeeded(23)
	for _, word := range sampleWords {
		fb := s.FillBlanks(word)
		require.Len(t, fb.Options, 4, "word %q", word)

		seen := map[string]int{}
		for _, o := range fb.Options {
			assert.NotEmpty(t, o, "word %q", word)
			seen[o]++
		}
		assert.Equal(t, 1, seen[fb.MissingLetters], "missing letters once for %q", word)
		for o, n := range seen {
			assert.Equal(t, 1, n, "duplicate option %q for %q", o, word)
		}
	}
}

func TestFillBlanks_PrefersProblemDigraph(t *testing.T) {
	s := NewSeeded(1)
	fb := s.FillBlanks("believe")
	// "believe" contains "ie"; the blank lands on it.
	assert.Equal(t, "ie", fb.MissingLetters)
	assert.Equal(t, "bel__ve", fb.BlankedWord)
}

func TestFillBlanks_InteriorWindowWithoutDigraph(t *testing.T) {
	s := NewSeeded(6)
	// "grind" contains no problem digraph; the window must not touch the ends.
	for i := 0; i < 20; i++ {
		fb := s.FillBlanks("grind")
		idx := strings.Index(fb.BlankedWord, "__")
		require.GreaterOrEqual(t, idx, 1)
		require.LessOrEqual(t, idx, len("grind")-3)
	}
}

func TestFillBlanks_PairOptionsKeepWidth(t *testing.T) {
	s := NewSeeded(9)
	fb := s.FillBlanks("letter")
	for _, o := range fb.Options {
		assert.Len(t, o, 2, "option %q", o)
	}
}

func TestFillBlanks_ShortWords(t *testing.T) {
	s := NewSeeded(2)
	for _, word := range []string{"a", "at", "ox"} {
		fb := s.FillBlanks(word)
		assert.Len(t, fb.MissingLetters, 1, "word %q", word)
		assert.True(t, strings.HasSuffix(fb.BlankedWord, "_"), "word %q", word)
		require.Len(t, fb.Options, 4, "word %q", word)
	}
}

func TestWrongPairs_TableHit(t *testing.T) {
	s := NewSeeded(4)
	got := s.wrongPairs("ie", 3)
	assert.ElementsMatch(t, []string{"ei", "ee", "ea"}, got)
}

func TestWrongPairs_DerivedForUnknownPair(t *testing.T) {
	s := NewSeeded(4)
	got := s.wrongPairs("rd", 3)
	require.Len(t, got, 3)
	for _, o := range got {
		assert.Len(t, o, 2)
		assert.NotEqual(t, "rd", o)
	}
}
