package quiz

import "github.com/tunde1256/flashcard/src/core/models"

// NextQuestion picks the question at cursor from the category's
// questions. The slice must already be in the session's stable order
// (creation time, then id); the service loads it that way. isLast is
// true when the returned question is the final one.
func NextQuestion(questions []models.Question, cursor int) (models.Question, bool, error) {
	if len(questions) == 0 {
		return models.Question{}, false, ErrNoQuestions
	}
	if cursor < 0 {
		return models.Question{}, false, ErrInvalidCursor
	}
	if cursor >= len(questions) {
		return models.Question{}, false, ErrNoMoreQuestions
	}
	return questions[cursor], cursor == len(questions)-1, nil
}
