// internal/distractor/synthesizer.go
//
// Deterministic challenge synthesis without network access.
// Responsibilities:
//   - Hold the injectable random source used for option shuffling, hint
//     selection, and generic top-up mutations.
//   - Shared candidate collection helpers used by the per-game-type files.
//
// Notes:
//   - All pattern-table work is deterministic; randomness only breaks ties
//     (final option order, padding candidates) so tests can fix a seed and
//     assert exact sets modulo order.
//   - The confusion tables in tables.go are never mutated; the only shared
//     mutable state is the rand source, guarded by a mutex so one Synthesizer
//     can serve concurrent requests.
package distractor

import (
	"math/rand"
	"sync"
	"time"
)

// Synthesizer produces challenge payloads for every game type using only the
// input word and the static confusion tables. It implements game.Synthesizer.
type Synthesizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New constructs a Synthesizer with a time-seeded random source.
func New() *Synthesizer {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded constructs a Synthesizer with a fixed seed, for reproducible
// output in tests.
func NewSeeded(seed int64) *Synthesizer {
	return &Synthesizer{rng: rand.New(rand.NewSource(seed))}
}

// intn returns a uniform int in [0, n) under the rng lock.
func (s *Synthesizer) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// shuffle permutes opts in place under the rng lock.
func (s *Synthesizer) shuffle(opts []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
}

// randVowel returns a random vowel letter.
func (s *Synthesizer) randVowel() byte {
	return vowels[s.intn(len(vowels))]
}

// randLetter returns a random lowercase letter.
func (s *Synthesizer) randLetter() byte {
	return byte('a' + s.intn(26))
}

// options assembles the final 4-entry option list: the correct answer plus
// its distractors, order-randomized so the correct position is never fixed.
func (s *Synthesizer) options(correct string, distractors []string) []string {
	opts := make([]string, 0, len(distractors)+1)
	opts = append(opts, correct)
	opts = append(opts, distractors...)
	s.shuffle(opts)
	return opts
}

// collector gathers distinct non-empty candidates, excluding the correct
// answer, preserving insertion order.
type collector struct {
	exclude string
	seen    map[string]struct{}
	out     []string
}

func newCollector(exclude string) *collector {
	return &collector{exclude: exclude, seen: make(map[string]struct{})}
}

// add records cand unless it is empty, equals the excluded answer, or was
// already collected.
func (c *collector) add(cand string) {
	if cand == "" || cand == c.exclude {
		return
	}
	if _, ok := c.seen[cand]; ok {
		return
	}
	c.seen[cand] = struct{}{}
	c.out = append(c.out, cand)
}

func (c *collector) len() int { return len(c.out) }

func (c *collector) candidates() []string { return c.out }
