// internal/game/types.go
//
// Core type definitions for the game generation engine.
// Defines:
//   - GameType: enumerated tag selecting one of the five challenge kinds.
//   - Per-type game_data payload shapes (JSON wire format).
//   - Result: the response envelope {word, game_type, game_data}.

package game

// GameType identifies one of the five supported challenge kinds.
// Unknown tags are rejected before any generation work happens.
type GameType string

const (
	TypeMultipleChoice GameType = "multiple_choice_spelling"
	TypeSuffix         GameType = "suffix_completion"
	TypeFillBlanks     GameType = "fill_blanks"
	TypeErrorDetection GameType = "error_detection"
	TypeGuided         GameType = "guided_completion"
)

// KnownType reports whether t is one of the five supported game types.
func KnownType(t GameType) bool {
	switch t {
	case TypeMultipleChoice, TypeSuffix, TypeFillBlanks, TypeErrorDetection, TypeGuided:
		return true
	}
	return false
}

// MultipleChoice is the game_data payload for multiple_choice_spelling.
// Options always holds exactly 4 entries with Correct among them exactly once.
type MultipleChoice struct {
	Correct string   `json:"correct"`
	Options []string `json:"options"`
}

// SuffixCompletion is the game_data payload for suffix_completion.
// BaseWord + CorrectSuffix reconstructs the original word.
type SuffixCompletion struct {
	BaseWord      string   `json:"base_word"`
	CorrectSuffix string   `json:"correct_suffix"`
	Options       []string `json:"options"`
}

// FillBlanks is the game_data payload for fill_blanks.
// BlankedWord contains underscore placeholders; substituting MissingLetters
// back in reconstructs CorrectAnswer. Options are letter-group choices for
// the blanked position, with MissingLetters among them exactly once.
type FillBlanks struct {
	BlankedWord    string   `json:"blanked_word"`
	CorrectAnswer  string   `json:"correct_answer"`
	MissingLetters string   `json:"missing_letters"`
	Options        []string `json:"options"`
}

// ErrorDetection is the game_data payload for error_detection.
// MisspelledWord always differs from OriginalWord.
type ErrorDetection struct {
	OriginalWord   string `json:"original_word"`
	MisspelledWord string `json:"misspelled_word"`
}

// GuidedCompletion is the game_data payload for guided_completion.
// IncompleteWord keeps a prefix and suffix of the word with the middle
// replaced by underscores, one per hidden letter.
type GuidedCompletion struct {
	IncompleteWord    string `json:"incomplete_word"`
	Hint              string `json:"hint"`
	CorrectCompletion string `json:"correct_completion"`
}

// Result is the envelope returned for a single generated game.
type Result struct {
	Word     string   `json:"word"`
	GameType GameType `json:"game_type"`
	GameData any      `json:"game_data"`
}
