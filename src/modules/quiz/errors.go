package quiz

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Domain errors returned by the quiz service. Handlers translate them
// into HTTP responses with a stable kind discriminator.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidCursor    = errors.New("cursor must not be negative")
	ErrCategoryNotFound = errors.New("category not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrNoQuestions      = errors.New("category has no questions")
	ErrNoMoreQuestions  = errors.New("no more questions in this category")
	ErrNoAnswerKey      = errors.New("question has no answer key")
)

const (
	KindInvalidInput     = "INVALID_INPUT"
	KindCategoryNotFound = "CATEGORY_NOT_FOUND"
	KindQuestionNotFound = "QUESTION_NOT_FOUND"
	KindNoQuestions      = "NO_QUESTIONS"
	KindQuizComplete     = "QUIZ_COMPLETE"
	KindNoAnswerKey      = "NO_ANSWER_KEY"
	KindStoreError       = "STORE_ERROR"
)

// Kind returns the machine-readable discriminator for a quiz error.
// Anything outside the domain taxonomy is a persistence failure.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidCursor):
		return KindInvalidInput
	case errors.Is(err, ErrCategoryNotFound):
		return KindCategoryNotFound
	case errors.Is(err, ErrQuestionNotFound):
		return KindQuestionNotFound
	case errors.Is(err, ErrNoQuestions):
		return KindNoQuestions
	case errors.Is(err, ErrNoMoreQuestions):
		return KindQuizComplete
	case errors.Is(err, ErrNoAnswerKey):
		return KindNoAnswerKey
	default:
		return KindStoreError
	}
}

// StatusCode maps a quiz error to its HTTP status.
func StatusCode(err error) int {
	switch Kind(err) {
	case KindInvalidInput:
		return fiber.StatusBadRequest
	case KindStoreError:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusNotFound
	}
}
