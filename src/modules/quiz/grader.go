package quiz

import "strings"

// Normalize prepares an answer string for comparison: surrounding
// whitespace is trimmed and the text is lowercased. No fuzzy matching,
// no locale-aware folding.
func Normalize(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// Grade reports whether a submitted answer matches the authoritative
// answer key. Both sides are normalized first; equality is exact after
// that. A missing key is the caller's problem (ErrNoAnswerKey), never a
// false here.
func Grade(correctText string, submittedText string) bool {
	return Normalize(correctText) == Normalize(submittedText)
}
