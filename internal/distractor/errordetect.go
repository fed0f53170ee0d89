// internal/distractor/errordetect.go
//
// Error-detection challenges: produce exactly one believable misspelling.
// Rules run in priority order and the first applicable one wins; a guard at
// the end guarantees the result always differs from the input.

package distractor

import (
	"strings"

	"github.com/kailai-13/spellforge/internal/game"
)

// ErrorDetection returns the word paired with a single misspelled variant.
// The misspelling is always different from the original.
func (s *Synthesizer) ErrorDetection(word string) game.ErrorDetection {
	return game.ErrorDetection{
		OriginalWord:   word,
		MisspelledWord: s.misspellOnce(word),
	}
}

// misspellOnce applies the first applicable rule:
//  1. ie/ei swap
//  2. double-letter removal (or insertion when removal would leave the word
//     too short)
//  3. silent-digraph simplification (kn->n, gh->g) or trailing-e removal
//  4. subtle vowel substitution (a->e, o->u and their reverses)
//  5. adjacent-letter transposition
//
// If no rule changed anything, a guaranteed-different mutation is applied:
// replace a middle letter or append a random letter.
func (s *Synthesizer) misspellOnce(word string) string {
	if m := swapFirst(word, "ie", "ei"); m != word {
		return m
	}
	if m := swapFirst(word, "ei", "ie"); m != word {
		return m
	}

	for i := 0; i+1 < len(word); i++ {
		if word[i] == word[i+1] {
			if len(word)-1 >= 3 {
				return word[:i] + word[i+1:]
			}
			return word[:i+1] + string(word[i]) + word[i+1:]
		}
	}

	if m := swapFirst(word, "kn", "n"); m != word {
		return m
	}
	if m := swapFirst(word, "gh", "g"); m != word {
		return m
	}
	if len(word) > 3 && strings.HasSuffix(word, "e") {
		return word[:len(word)-1]
	}

	for _, sw := range [...]patternSwap{{"a", "e"}, {"o", "u"}, {"e", "a"}, {"u", "o"}} {
		if m := swapFirst(word, sw.From, sw.To); m != word {
			return m
		}
	}

	for i := 0; i+1 < len(word); i++ {
		if word[i] != word[i+1] {
			b := []byte(word)
			b[i], b[i+1] = b[i+1], b[i]
			return string(b)
		}
	}

	return s.forceMutation(word)
}

// forceMutation is the last-resort change for words no rule touched
// (single letters, all-identical short words). Replaces a middle letter when
// there is one, otherwise appends a random letter.
func (s *Synthesizer) forceMutation(word string) string {
	if len(word) >= 3 {
		i := 1 + s.intn(len(word)-2)
		for {
			if r := s.randLetter(); r != word[i] {
				return word[:i] + string(r) + word[i+1:]
			}
		}
	}
	return word + string(s.randLetter())
}

// swapFirst replaces the first occurrence of from with to; returns the word
// unchanged when the pattern is absent.
func swapFirst(word, from, to string) string {
	if !strings.Contains(word, from) {
		return word
	}
	return strings.Replace(word, from, to, 1)
}
