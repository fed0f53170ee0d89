// internal/distractor/fillblanks.go
//
// Fill-in-the-blank challenges: blank exactly two consecutive letters,
// preferring a known problem digraph, and offer 4 letter-pair options for
// the gap. Words shorter than 3 letters degrade to a single-letter blank.

package distractor

import (
	"strings"

	"github.com/kailai-13/spellforge/internal/game"
)

// FillBlanks blanks two consecutive letters of word and returns the blanked
// word plus 4 letter-pair options, order-randomized. Substituting
// MissingLetters back into BlankedWord reconstructs the word exactly.
func (s *Synthesizer) FillBlanks(word string) game.FillBlanks {
	if len(word) < 3 {
		return s.fillBlanksShort(word)
	}

	pos := s.blankPosition(word)
	pair := word[pos : pos+2]
	return game.FillBlanks{
		BlankedWord:    word[:pos] + "__" + word[pos+2:],
		CorrectAnswer:  word,
		MissingLetters: pair,
		Options:        s.options(pair, s.wrongPairs(pair, 3)),
	}
}

// blankPosition picks the start index of the 2-letter window to blank.
// A problem digraph wins if the word contains one; otherwise the window is
// placed strictly between the first and last letters when the word is long
// enough, and at index 1 for 3-letter words.
func (s *Synthesizer) blankPosition(word string) int {
	for _, d := range problemDigraphs {
		if i := strings.Index(word, d); i >= 0 {
			return i
		}
	}
	if len(word) >= 4 {
		// Window [i, i+2) with 1 <= i <= len-3 never touches either end.
		return 1 + s.intn(len(word)-3)
	}
	return 1
}

// wrongPairs produces n distinct wrong letter pairs for the blanked pair:
// table lookup first, then derived mutations (reversal, confusable-letter
// substitution, doubling), then random consonant-vowel pairs.
func (s *Synthesizer) wrongPairs(pair string, n int) []string {
	c := newCollector(pair)

	for _, alt := range pairAlternatives[pair] {
		c.add(alt)
	}

	if c.len() < n {
		if pair[0] != pair[1] {
			c.add(string(pair[1]) + string(pair[0]))
		}
		for _, sub := range confusableLetters[pair[0]] {
			c.add(string(sub) + string(pair[1]))
		}
		for _, sub := range confusableLetters[pair[1]] {
			c.add(string(pair[0]) + string(sub))
		}
		c.add(string(pair[0]) + string(pair[0]))
		c.add(string(pair[1]) + string(pair[1]))
	}
	for c.len() < n {
		c.add(string(s.randLetter()) + string(s.randVowel()))
	}
	out := c.candidates()
	if len(out) > n {
		out = mostPlausible(pair, out, n)
	}
	return out
}

// fillBlanksShort handles words of 1-2 letters: blank the last letter only,
// with single-letter options.
func (s *Synthesizer) fillBlanksShort(word string) game.FillBlanks {
	pos := len(word) - 1
	missing := string(word[pos])

	c := newCollector(missing)
	if isVowel(word[pos]) {
		for _, v := range vowels {
			c.add(string(v))
		}
	}
	for c.len() < 3 {
		c.add(string(s.randLetter()))
	}

	return game.FillBlanks{
		BlankedWord:    word[:pos] + "_",
		CorrectAnswer:  word,
		MissingLetters: missing,
		Options:        s.options(missing, c.candidates()[:3]),
	}
}
