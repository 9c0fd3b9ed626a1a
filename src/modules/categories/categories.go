package categories

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

type createCategoryInput struct {
	Name string `json:"name" validate:"required"`
}

// CreateCategory registers a new quiz category. Names are unique
// case-insensitively: "Geography" and "geography" are the same category.
func CreateCategory(c *fiber.Ctx) error {
	db := database.DB

	body := new(createCategoryInput)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Category name is required", err)
	}

	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid user ID format", err)
	}

	var existing models.Category
	err = db.Where("LOWER(name) = LOWER(?)", body.Name).First(&existing).Error
	if err == nil {
		return helpers.HandleError(c, fiber.StatusConflict, "Category already exists", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to check category", err)
	}

	category := models.Category{
		ID:        uuid.New(),
		Name:      body.Name,
		CreatedBy: userID,
		CreatedAt: time.Now().UTC(),
	}
	if result := db.Create(&category); result.Error != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to create category", result.Error)
	}

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Category created successfully", category)
}

// GetCategories lists all categories with their question counts.
func GetCategories(c *fiber.Ctx) error {
	db := database.DB

	var rows []struct {
		models.Category
		QuestionCount int64 `json:"question_count"`
	}
	err := db.Table("categories").
		Select("categories.*, COUNT(questions.id) AS question_count").
		Joins("LEFT JOIN questions ON questions.category_id = categories.id").
		Group("categories.id").
		Order("categories.name").
		Find(&rows).Error
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch categories", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Categories fetched successfully", rows)
}

// GetCategoryByName returns a category and its questions, matched
// case-insensitively. The answer keys are not included; this is the
// quiz-taking view.
func GetCategoryByName(c *fiber.Ctx) error {
	db := database.DB

	var category models.Category
	err := db.Where("LOWER(name) = LOWER(?)", c.Params("name")).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.HandleError(c, fiber.StatusNotFound, "Category not found", nil)
	}
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch category", err)
	}

	var questions []models.Question
	err = db.Where("category_id = ?", category.ID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch questions", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Category fetched successfully", fiber.Map{
		"category":  category,
		"questions": questions,
	})
}

// DeleteCategory removes a category along with its questions, answer
// keys, and attempts.
func DeleteCategory(c *fiber.Ctx) error {
	db := database.DB

	categoryID, err := uuid.Parse(c.Params("id"))
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

	err = db.Transaction(func(tx *gorm.DB) error {
		questionIDs := tx.Model(&models.Question{}).Select("id").Where("category_id = ?", categoryID)
		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&models.QuizAttempt{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&models.AnswerKey{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", categoryID).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to delete category", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Category deleted successfully", nil)
}
