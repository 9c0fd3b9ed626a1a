package quiz

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tunde1256/flashcard/src/core/database"
	"github.com/tunde1256/flashcard/src/core/helpers"
)

// GetQuizQuestion serves GET /quiz-question/:userId/:category. The
// session position is derived server-side from stored attempts, so
// concurrent clients and multi-device sessions agree on the cursor.
func GetQuizQuestion(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return helpers.HandleFailure(c, fiber.StatusBadRequest, KindInvalidInput, "Invalid user ID format", err)
	}
	categoryName := c.Params("category")

	svc := NewService(database.DB)
	result, err := svc.NextQuestion(c.Context(), userID, categoryName)
	if err != nil {
		return respondError(c, err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Quiz question retrieved successfully", result)
}

// SubmitQuizAnswer serves POST /quiz-answer/:userId/:questionId with a
// body of {"userAnswer": "..."}.
func SubmitQuizAnswer(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return helpers.HandleFailure(c, fiber.StatusBadRequest, KindInvalidInput, "Invalid user ID format", err)
	}
	questionID, err := uuid.Parse(c.Params("questionId"))
	if err != nil {
		return helpers.HandleFailure(c, fiber.StatusBadRequest, KindInvalidInput, "Invalid question ID format", err)
	}

	var input struct {
		UserAnswer string `json:"userAnswer"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.HandleFailure(c, fiber.StatusBadRequest, KindInvalidInput, "userAnswer must be a string", err)
	}

	svc := NewService(database.DB)
	result, err := svc.SubmitAnswer(c.Context(), userID, questionID, input.UserAnswer)
	if err != nil {
		return respondError(c, err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Answer submitted successfully", result)
}

// GetQuizProgress serves GET /quiz-progress/:userId/:category.
func GetQuizProgress(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return helpers.HandleFailure(c, fiber.StatusBadRequest, KindInvalidInput, "Invalid user ID format", err)
	}

	svc := NewService(database.DB)
	progress, err := svc.CategoryProgress(c.Context(), userID, c.Params("category"))
	if err != nil {
		return respondError(c, err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Quiz progress retrieved successfully", fiber.Map{
		"progress":          progress.String(),
		"totalQuestions":    progress.TotalQuestions,
		"answeredQuestions": progress.AnsweredQuestions,
	})
}

// respondError turns a service error into the JSON envelope. Store
// errors are logged here and surfaced as a plain server error; the core
// never retries them.
func respondError(c *fiber.Ctx, err error) error {
	kind := Kind(err)
	if kind == KindStoreError {
		log.Printf("quiz store error: %v", err)
		return helpers.HandleFailure(c, fiber.StatusInternalServerError, kind, "Server error", nil)
	}
	return helpers.HandleFailure(c, StatusCode(err), kind, err.Error(), nil)
}
