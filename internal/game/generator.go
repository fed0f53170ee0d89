// internal/game/generator.go
//
// Challenge generation engine.
// Responsibilities:
//   - Dispatch a (word, game type) pair to the matching generator.
//   - Attempt the remote completion endpoint first, strip code fences,
//     parse and shape-check the reply.
//   - Fall back to the deterministic synthesizer on any remote failure:
//     empty reply, unparsable JSON, or a payload with the wrong shape.
//
// Notes:
//   - For suffix_completion, fill_blanks and guided_completion the word is
//     split/blanked/masked locally before prompting, so both paths agree on
//     the challenge geometry. The synthesizer result doubles as the fallback.
//   - Generation never fails for a known game type; the unknown-type error
//     exists only as a defensive branch behind handler validation.

package game

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Completer is the remote text-completion collaborator. Complete returns the
// model's trimmed raw reply, or "" on any failure (timeout, bad status,
// malformed envelope). An empty string always means "unavailable".
type Completer interface {
	Complete(ctx context.Context, prompt string) string
}

// Synthesizer produces deterministic challenge payloads without network
// access. Implementations must never fail: every input word, however short,
// yields a shape-conformant payload.
type Synthesizer interface {
	MultipleChoice(word string) MultipleChoice
	SuffixCompletion(word string) SuffixCompletion
	FillBlanks(word string) FillBlanks
	ErrorDetection(word string) ErrorDetection
	GuidedCompletion(word string) GuidedCompletion
}

// Generator wires the remote completer and the local synthesizer together.
type Generator struct {
	remote Completer
	synth  Synthesizer
}

// NewGenerator constructs a Generator from its two collaborators.
func NewGenerator(remote Completer, synth Synthesizer) *Generator {
	return &Generator{remote: remote, synth: synth}
}

// Generate produces the full result envelope for one word/game-type pair.
// The word is expected to be trimmed and lowercased by the caller.
func (g *Generator) Generate(ctx context.Context, word string, t GameType) (Result, error) {
	var data any
	switch t {
	case TypeMultipleChoice:
		data = g.multipleChoice(ctx, word)
	case TypeSuffix:
		data = g.suffixCompletion(ctx, word)
	case TypeFillBlanks:
		data = g.fillBlanks(ctx, word)
	case TypeErrorDetection:
		data = g.errorDetection(ctx, word)
	case TypeGuided:
		data = g.guidedCompletion(ctx, word)
	default:
		return Result{}, fmt.Errorf("unknown game type %q", t)
	}
	return Result{Word: word, GameType: t, GameData: data}, nil
}

func (g *Generator) multipleChoice(ctx context.Context, word string) MultipleChoice {
	if raw := g.remote.Complete(ctx, multipleChoicePrompt(word)); raw != "" {
		var p MultipleChoice
		if err := json.Unmarshal([]byte(stripCodeFence(raw)), &p); err == nil && p.valid() {
			return p
		}
		log.Debug().Str("word", word).Msg("rejected remote multiple_choice payload")
	}
	return g.synth.MultipleChoice(word)
}

func (g *Generator) suffixCompletion(ctx context.Context, word string) SuffixCompletion {
	fb := g.synth.SuffixCompletion(word)
	if raw := g.remote.Complete(ctx, suffixPrompt(word, fb.BaseWord, fb.CorrectSuffix)); raw != "" {
		var p SuffixCompletion
		if err := json.Unmarshal([]byte(stripCodeFence(raw)), &p); err == nil && p.valid() {
			return p
		}
		log.Debug().Str("word", word).Msg("rejected remote suffix_completion payload")
	}
	return fb
}

func (g *Generator) fillBlanks(ctx context.Context, word string) FillBlanks {
	fb := g.synth.FillBlanks(word)
	if raw := g.remote.Complete(ctx, fillBlanksPrompt(word, fb.BlankedWord, fb.MissingLetters)); raw != "" {
		var p FillBlanks
		if err := json.Unmarshal([]byte(stripCodeFence(raw)), &p); err == nil && p.valid() {
			return p
		}
		log.Debug().Str("word", word).Msg("rejected remote fill_blanks payload")
	}
	return fb
}

func (g *Generator) errorDetection(ctx context.Context, word string) ErrorDetection {
	if raw := g.remote.Complete(ctx, errorDetectionPrompt(word)); raw != "" {
		var p ErrorDetection
		if err := json.Unmarshal([]byte(stripCodeFence(raw)), &p); err == nil && p.valid() {
			return p
		}
		log.Debug().Str("word", word).Msg("rejected remote error_detection payload")
	}
	return g.synth.ErrorDetection(word)
}

func (g *Generator) guidedCompletion(ctx context.Context, word string) GuidedCompletion {
	fb := g.synth.GuidedCompletion(word)
	if raw := g.remote.Complete(ctx, guidedPrompt(word, fb.IncompleteWord)); raw != "" {
		var p GuidedCompletion
		if err := json.Unmarshal([]byte(stripCodeFence(raw)), &p); err == nil && p.valid() {
			return p
		}
		log.Debug().Str("word", word).Msg("rejected remote guided_completion payload")
	}
	return fb
}

// stripCodeFence unwraps a reply the model wrapped in markdown code fences
// ("```json ... ```" or plain "``` ... ```") and trims whitespace.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
