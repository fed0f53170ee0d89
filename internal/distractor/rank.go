// internal/distractor/rank.go
//
// Plausibility ranking for misspelling candidates. When the pattern
// strategies produce more candidates than a challenge needs, the ones that
// look most like the target word make the most believable distractors, so
// candidates are ranked by Jaro-Winkler similarity to the target.

package distractor

import (
	"sort"

	"github.com/antzucaro/matchr"
)

// mostPlausible returns the n candidates most similar to word, ordered by
// descending Jaro-Winkler score. The sort is stable so candidates produced
// by earlier (higher-priority) strategies win ties.
func mostPlausible(word string, candidates []string, n int) []string {
	if len(candidates) <= n {
		return candidates
	}
	ranked := make([]string, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return matchr.JaroWinkler(word, ranked[i], false) > matchr.JaroWinkler(word, ranked[j], false)
	})
	return ranked[:n]
}
