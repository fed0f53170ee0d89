// internal/distractor/suffix.go
//
// Suffix-completion challenges: split the word into base + suffix and build
// wrong-suffix options from the lookup table, falling back to mutations of
// the suffix itself and finally a generic suffix pool.

package distractor

import (
	"github.com/kailai-13/spellforge/internal/game"
)

// SuffixCompletion splits word into base + suffix and returns 4 suffix
// options (the correct one plus 3 wrong), order-randomized.
// BaseWord + CorrectSuffix always reconstructs the word exactly.
func (s *Synthesizer) SuffixCompletion(word string) game.SuffixCompletion {
	base, suffix := splitSuffix(word)
	return game.SuffixCompletion{
		BaseWord:      base,
		CorrectSuffix: suffix,
		Options:       s.options(suffix, s.wrongSuffixes(suffix, 3)),
	}
}

// splitSuffix cuts the suffix off a word: 3 letters when the word is longer
// than 4, 2 letters down to 3-letter words, and 1 letter for anything
// shorter. A single-letter word degrades to an empty base.
func splitSuffix(word string) (base, suffix string) {
	n := len(word)
	cut := 3
	switch {
	case n <= 2:
		cut = 1
	case n <= 4:
		cut = 2
	}
	return word[:n-cut], word[n-cut:]
}

// wrongSuffixes produces n distinct wrong suffixes for the given correct
// suffix: table lookup first, then mutations of the suffix string, then the
// generic pool, then random letter substitutions as a last resort.
func (s *Synthesizer) wrongSuffixes(suffix string, n int) []string {
	c := newCollector(suffix)

	for _, alt := range wrongSuffixTable[suffix] {
		c.add(alt)
	}

	if c.len() < n {
		for _, cand := range suffixMutations(suffix) {
			c.add(cand)
		}
	}
	if c.len() < n {
		for _, cand := range genericSuffixPool {
			c.add(cand)
		}
	}
	for c.len() < n {
		// Single-letter suffixes can exhaust every deterministic source.
		c.add(string(s.randLetter()) + suffix)
	}
	return c.candidates()[:n]
}

// suffixMutations derives believable variants of the suffix itself:
// first-vowel swap, leading transposition, truncation, doubled last letter.
func suffixMutations(suffix string) []string {
	var out []string
	for i := 0; i < len(suffix); i++ {
		if isVowel(suffix[i]) {
			for _, v := range vowels {
				if byte(v) != suffix[i] {
					out = append(out, suffix[:i]+string(v)+suffix[i+1:])
				}
			}
			break
		}
	}
	if len(suffix) >= 2 && suffix[0] != suffix[1] {
		out = append(out, string(suffix[1])+string(suffix[0])+suffix[2:])
	}
	if len(suffix) > 1 {
		out = append(out, suffix[:len(suffix)-1])
		out = append(out, suffix+string(suffix[len(suffix)-1]))
	}
	return dedupe(out)
}

// dedupe removes duplicate entries preserving order.
func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
