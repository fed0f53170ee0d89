// internal/game/prompts.go
//
// Prompt templates sent to the remote completion endpoint. Each prompt pins
// the exact JSON shape expected back so the response can be parsed straight
// into the matching payload struct.

package game

import "fmt"

func multipleChoicePrompt(word string) string {
	return fmt.Sprintf(`Create a multiple choice spelling challenge for the word "%s".

Generate 3 believable misspellings and include the correct spelling.

Respond with ONLY valid JSON in this exact format:
{
    "correct": "%s",
    "options": ["correct_spelling", "misspelling1", "misspelling2", "misspelling3"]
}

Do not include any other text or explanations.`, word, word)
}

func suffixPrompt(word, baseWord, correctSuffix string) string {
	return fmt.Sprintf(`Create a suffix completion challenge for the word "%s".
The base word is "%s" and the correct suffix is "%s".

Generate 3 plausible but incorrect suffix options.

Respond with ONLY valid JSON in this exact format:
{
    "base_word": "%s",
    "correct_suffix": "%s",
    "options": ["%s", "wrong_suffix1", "wrong_suffix2", "wrong_suffix3"]
}

Do not include any other text or explanations.`, word, baseWord, correctSuffix, baseWord, correctSuffix, correctSuffix)
}

func fillBlanksPrompt(word, blankedWord, missingLetters string) string {
	return fmt.Sprintf(`Create a fill-in-the-blanks challenge for the word "%s".
The blanked version is "%s" and the missing letters are "%s".

Generate 3 incorrect letter groups that could plausibly fill the blanks.

Respond with ONLY valid JSON in this exact format:
{
    "blanked_word": "%s",
    "correct_answer": "%s",
    "missing_letters": "%s",
    "options": ["%s", "wrong_letters1", "wrong_letters2", "wrong_letters3"]
}

Do not include any other text or explanations.`, word, blankedWord, missingLetters,
		blankedWord, word, missingLetters, missingLetters)
}

func errorDetectionPrompt(word string) string {
	return fmt.Sprintf(`Create an error detection challenge for the word "%s".

Generate one believable misspelling that users need to identify as incorrect.

Respond with ONLY valid JSON in this exact format:
{
    "original_word": "%s",
    "misspelled_word": "misspelled_version"
}

Do not include any other text or explanations.`, word, word)
}

func guidedPrompt(word, incompleteWord string) string {
	return fmt.Sprintf(`Create a guided word completion challenge for the word "%s".
The incomplete word is "%s".

Provide a helpful hint about the word's meaning or usage.

Respond with ONLY valid JSON in this exact format:
{
    "incomplete_word": "%s",
    "hint": "helpful hint about the word",
    "correct_completion": "%s"
}

Do not include any other text or explanations.`, word, incompleteWord, incompleteWord, word)
}
