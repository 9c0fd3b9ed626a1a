package questions

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tunde1256/flashcard/src/core/database"
	"github.com/tunde1256/flashcard/src/core/helpers"
	"github.com/tunde1256/flashcard/src/core/models"
	"gorm.io/gorm"
)

type createQuestionInput struct {
	CategoryID   string `json:"category_id" validate:"required,uuid"`
	QuestionText string `json:"question_text" validate:"required"`
	AnswerText   string `json:"answer_text" validate:"required"`
}

// CreateQuestionWithAnswer authors a question together with its single
// authoritative answer key, in one transaction. A question without a key
// cannot be graded, so the two are never created separately.
func CreateQuestionWithAnswer(c *fiber.Ctx) error {
	db := database.DB

	body := new(createQuestionInput)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Category ID, question text, and answer text are required", err)
	}

	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid user ID format", err)
	}
	categoryID, err := uuid.Parse(body.CategoryID)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid category ID format", err)
	}

	var category models.Category
	if err := db.First(&category, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusNotFound, "Category not found", nil)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch category", err)
	}

	now := time.Now().UTC()
	question := models.Question{
		ID:           uuid.New(),
		CategoryID:   category.ID,
		QuestionText: body.QuestionText,
		CreatedBy:    userID,
		CreatedAt:    now,
	}
	key := models.AnswerKey{
		ID:         uuid.New(),
		QuestionID: question.ID,
		AnswerText: body.AnswerText,
		CreatedBy:  userID,
		CreatedAt:  now,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		return tx.Create(&key).Error
	})
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to create question and answer", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Question and answer created successfully", fiber.Map{
		"question": question,
		"answer":   key,
	})
}

// GetQuestion returns a single question with its answer key. This is the
// authoring view; quiz sessions never see the key.
func GetQuestion(c *fiber.Ctx) error {
	db := database.DB

	questionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid question ID format", err)
	}

	var question models.Question
	if err := db.First(&question, "id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusNotFound, "Question not found", nil)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch question", err)
	}

	var key models.AnswerKey
	if err := db.First(&key, "question_id = ?", questionID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch answer key", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Question fetched successfully", fiber.Map{
		"question": question,
		"answer":   key,
	})
}

// GetQuestionsByCategory lists a category's questions with their keys,
// in session order.
func GetQuestionsByCategory(c *fiber.Ctx) error {
	db := database.DB

	categoryID, err := uuid.Parse(c.Params("categoryId"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid category ID format", err)
	}

	var rows []struct {
		models.Question
		AnswerText string `json:"answer_text"`
	}
	err = db.Table("questions").
		Select("questions.*, answer_keys.answer_text").
		Joins("LEFT JOIN answer_keys ON answer_keys.question_id = questions.id").
		Where("questions.category_id = ?", categoryID).
		Order("questions.created_at ASC").
		Order("questions.id ASC").
		Find(&rows).Error
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch questions", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Questions fetched successfully", rows)
}

type updateQuestionInput struct {
	QuestionText string `json:"question_text"`
	AnswerText   string `json:"answer_text"`
}

// UpdateQuestionWithAnswer updates a question's text and/or its answer
// key.
func UpdateQuestionWithAnswer(c *fiber.Ctx) error {
	db := database.DB

	questionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid question ID format", err)
	}

	body := new(updateQuestionInput)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if body.QuestionText == "" && body.AnswerText == "" {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Nothing to update", nil)
	}

	var question models.Question
	if err := db.First(&question, "id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusNotFound, "Question not found", nil)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch question", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if body.QuestionText != "" {
			if err := tx.Model(&question).Update("question_text", body.QuestionText).Error; err != nil {
				return err
			}
		}
		if body.AnswerText != "" {
			result := tx.Model(&models.AnswerKey{}).
				Where("question_id = ?", questionID).
				Update("answer_text", body.AnswerText)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				// Question was authored without a key; create it now.
				return tx.Create(&models.AnswerKey{
					ID:         uuid.New(),
					QuestionID: questionID,
					AnswerText: body.AnswerText,
					CreatedBy:  question.CreatedBy,
					CreatedAt:  time.Now().UTC(),
				}).Error
			}
		}
		return nil
	})
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to update question and answer", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Question and answer updated successfully", nil)
}

// DeleteQuestion removes a question, its answer key, and any stored
// attempts against it.
func DeleteQuestion(c *fiber.Ctx) error {
	db := database.DB

	questionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid question ID format", err)
	}

	var question models.Question
	if err := db.First(&question, "id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusNotFound, "Question not found", nil)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch question", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", questionID).Delete(&models.QuizAttempt{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", questionID).Delete(&models.AnswerKey{}).Error; err != nil {
			return err
		}
		return tx.Delete(&question).Error
	})
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to delete question", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Question deleted successfully", nil)
}
