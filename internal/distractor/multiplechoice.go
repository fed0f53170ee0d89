// internal/distractor/multiplechoice.go
//
// Synthetic misspellings for the multiple-choice spelling game.
//
// Candidate strategies run in priority order until three distinct
// misspellings are collected:
//   1. double-letter toggling (remove one of a doubled pair / duplicate one
//      of a differing pair)
//   2. vowel-pattern confusion (ie/ei, ea/ee, ...)
//   3. silent-letter errors (kn->n, wr->r, missing/extra trailing e, ...)
//   4. suffix confusion (ful/full, tion/sion, ...)
//   5. phonetic letter confusion (c/k, f/ph, ...)
//   6. adjacent-letter transposition
// When a strategy overshoots, the candidates most similar to the word are
// kept. When every strategy underdelivers (very short or pattern-free
// words), random single-letter deletion / vowel insertion pads the set.

package distractor

import (
	"strings"

	"github.com/kailai-13/spellforge/internal/game"
)

// MultipleChoice produces the correct spelling plus three synthetic
// misspellings, order-randomized.
func (s *Synthesizer) MultipleChoice(word string) game.MultipleChoice {
	return game.MultipleChoice{
		Correct: word,
		Options: s.options(word, s.misspellings(word, 3)),
	}
}

// misspellings returns n distinct, non-empty misspellings of word.
func (s *Synthesizer) misspellings(word string, n int) []string {
	c := newCollector(word)
	strategies := []func(string) []string{
		doubleLetterVariants,
		vowelPatternVariants,
		silentLetterVariants,
		suffixEndingVariants,
		phoneticVariants,
		transpositionVariants,
	}
	for _, strat := range strategies {
		for _, cand := range strat(word) {
			c.add(cand)
		}
		if c.len() >= n {
			break
		}
	}

	out := mostPlausible(word, c.candidates(), n)

	// Pattern strategies ran dry: pad with generic random mutations.
	for len(out) < n {
		cand := s.genericMutation(word)
		if cand == word || cand == "" {
			continue
		}
		dup := false
		for _, o := range out {
			if o == cand {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, cand)
		}
	}
	return out
}

// doubleLetterVariants toggles letter doubling at each adjacent pair: a
// doubled pair loses one copy (while keeping the word at least 3 letters), a
// differing pair gains a duplicate of its first letter.
func doubleLetterVariants(word string) []string {
	var out []string
	for i := 0; i+1 < len(word); i++ {
		if word[i] == word[i+1] {
			if len(word)-1 >= 3 {
				out = append(out, word[:i]+word[i+1:])
			}
		} else {
			out = append(out, word[:i+1]+string(word[i])+word[i+1:])
		}
	}
	return out
}

// vowelPatternVariants applies the vowel confusion table, swapping the first
// occurrence of each pattern.
func vowelPatternVariants(word string) []string {
	var out []string
	for _, sw := range vowelSwaps {
		if strings.Contains(word, sw.From) {
			out = append(out, strings.Replace(word, sw.From, sw.To, 1))
		}
	}
	return out
}

// silentLetterVariants simplifies silent-letter digraphs; a word without a
// trailing e also gains one as a classic silent-letter error.
func silentLetterVariants(word string) []string {
	var out []string
	for _, sw := range silentSwaps {
		if strings.Contains(word, sw.From) {
			out = append(out, strings.Replace(word, sw.From, sw.To, 1))
		}
	}
	if !strings.HasSuffix(word, "e") {
		out = append(out, word+"e")
	}
	return out
}

// suffixEndingVariants swaps confusable endings when the word ends with one.
func suffixEndingVariants(word string) []string {
	var out []string
	for _, sw := range endingSwaps {
		if strings.HasSuffix(word, sw.From) {
			out = append(out, strings.TrimSuffix(word, sw.From)+sw.To)
		}
	}
	return out
}

// phoneticVariants substitutes same-sound letters at the first occurrence.
func phoneticVariants(word string) []string {
	var out []string
	for _, sw := range phoneticSwaps {
		if strings.Contains(word, sw.From) {
			out = append(out, strings.Replace(word, sw.From, sw.To, 1))
		}
	}
	return out
}

// transpositionVariants swaps each pair of unequal adjacent letters, one
// candidate per position.
func transpositionVariants(word string) []string {
	var out []string
	for i := 0; i+1 < len(word); i++ {
		if word[i] != word[i+1] {
			b := []byte(word)
			b[i], b[i+1] = b[i+1], b[i]
			out = append(out, string(b))
		}
	}
	return out
}

// genericMutation produces a random last-resort misspelling: delete one
// letter (when the word can spare one) or insert a random vowel.
func (s *Synthesizer) genericMutation(word string) string {
	if len(word) > 3 && s.intn(2) == 0 {
		i := s.intn(len(word))
		return word[:i] + word[i+1:]
	}
	i := s.intn(len(word) + 1)
	return word[:i] + string(s.randVowel()) + word[i:]
}
