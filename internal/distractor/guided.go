// internal/distractor/guided.go
//
// Guided-completion challenges: mask the middle of the word, keeping a
// length-dependent prefix and suffix, and attach one of a small set of
// templated hints.

package distractor

import (
	"fmt"
	"strings"

	"github.com/kailai-13/spellforge/internal/game"
)

// GuidedCompletion masks the middle of word with underscores (one per hidden
// letter) and attaches a randomly chosen hint. Replacing the underscore run
// with the masked letters reconstructs the word exactly.
func (s *Synthesizer) GuidedCompletion(word string) game.GuidedCompletion {
	pre, suf := maskSizes(len(word))
	incomplete := word[:pre] + strings.Repeat("_", len(word)-pre-suf) + word[len(word)-suf:]
	return game.GuidedCompletion{
		IncompleteWord:    incomplete,
		Hint:              s.hint(word, pre, suf),
		CorrectCompletion: word,
	}
}

// maskSizes returns the visible prefix/suffix lengths for a word of length
// n. Words of 1-2 letters keep only their first letter (or nothing for a
// single letter) so at least one letter is always hidden.
func maskSizes(n int) (pre, suf int) {
	switch {
	case n == 1:
		return 0, 0
	case n == 2:
		return 1, 0
	case n <= 4:
		return 1, 1
	case n <= 6:
		return 2, 2
	default:
		return 2, 3
	}
}

// hint picks one of the templated hint strings.
func (s *Synthesizer) hint(word string, pre, suf int) string {
	n := len(word)
	switch s.intn(4) {
	case 0:
		return fmt.Sprintf("This word has %d letters", n)
	case 1:
		return fmt.Sprintf("It starts with '%s' and ends with '%s'", word[:maxInt(pre, 1)], word[n-maxInt(suf, 1):])
	case 2:
		return fmt.Sprintf("This word contains %d vowels", countVowels(word))
	default:
		tail := word
		if n > 2 {
			tail = word[n-2:]
		}
		return fmt.Sprintf("It rhymes with words ending in '%s'", tail)
	}
}

func countVowels(word string) int {
	n := 0
	for i := 0; i < len(word); i++ {
		if isVowel(word[i]) {
			n++
		}
	}
	return n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
