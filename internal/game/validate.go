// internal/game/validate.go
//
// Shape validation for remote-generated payloads.
//
// The remote model's content is trusted verbatim once it parses, but only
// when the parsed payload actually has the documented shape: 4 options with
// the correct answer appearing exactly once for choice types, non-empty
// fields, placeholders present where the shape requires them. Anything else
// is rejected so the deterministic synthesizer takes over.

package game

import "strings"

// containsExactlyOnce reports whether want appears exactly once in opts.
func containsExactlyOnce(opts []string, want string) bool {
	n := 0
	for _, o := range opts {
		if o == want {
			n++
		}
	}
	return n == 1
}

// allNonEmpty reports whether every option is a non-empty string.
func allNonEmpty(opts []string) bool {
	for _, o := range opts {
		if strings.TrimSpace(o) == "" {
			return false
		}
	}
	return true
}

func (p MultipleChoice) valid() bool {
	return p.Correct != "" &&
		len(p.Options) == 4 &&
		allNonEmpty(p.Options) &&
		containsExactlyOnce(p.Options, p.Correct)
}

func (p SuffixCompletion) valid() bool {
	// BaseWord may legitimately be empty for single-letter words.
	return p.CorrectSuffix != "" &&
		len(p.Options) == 4 &&
		allNonEmpty(p.Options) &&
		containsExactlyOnce(p.Options, p.CorrectSuffix)
}

func (p FillBlanks) valid() bool {
	return strings.Contains(p.BlankedWord, "_") &&
		p.CorrectAnswer != "" &&
		p.MissingLetters != "" &&
		len(p.Options) == 4 &&
		allNonEmpty(p.Options) &&
		containsExactlyOnce(p.Options, p.MissingLetters)
}

func (p ErrorDetection) valid() bool {
	return p.OriginalWord != "" &&
		p.MisspelledWord != "" &&
		p.MisspelledWord != p.OriginalWord
}

func (p GuidedCompletion) valid() bool {
	return strings.Contains(p.IncompleteWord, "_") &&
		p.Hint != "" &&
		p.CorrectCompletion != ""
}
