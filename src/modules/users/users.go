package users

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tunde1256/flashcard/src/core/database"
	"github.com/tunde1256/flashcard/src/core/helpers"
	"github.com/tunde1256/flashcard/src/core/models"
	"github.com/tunde1256/flashcard/src/utils"
	"gorm.io/gorm"
)

func GetProfile(c *fiber.Ctx) error {
	db := database.DB
	userID := c.Locals("user_id").(string)

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusNotFound, "User profile not found", nil)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch user profile", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "User profile retrieved successfully", user)
}

type updateProfileInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UpdateProfile applies a partial update of the mutable profile fields.
func UpdateProfile(c *fiber.Ctx) error {
	db := database.DB
	userID := c.Locals("user_id").(string)

	body := new(updateProfileInput)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}

	updates := map[string]interface{}{}
	if body.Username != "" {
		updates["username"] = body.Username
	}
	if body.Email != "" {
		updates["email"] = body.Email
	}
	if len(updates) == 0 {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Nothing to update", nil)
	}

	if result := db.Model(&models.User{}).Where("id = ?", userID).Updates(updates); result.Error != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to update profile", result.Error)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "User profile updated successfully", nil)
}

// UploadProfilePhoto stores the uploaded image in object storage and
// records its public URL on the user row.
func UploadProfilePhoto(c *fiber.Ctx) error {
	db := database.DB
	userID := c.Locals("user_id").(string)

	file, err := c.FormFile("profile_photo")
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "File upload failed", err)
	}

	filePath := fmt.Sprintf("profile-photos/%s-%s", uuid.New().String(), file.Filename)
	storagePath, publicURL, _, err := utils.UploadToStorage(file, filePath)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to upload file to storage", err)
	}

	updates := map[string]interface{}{
		"profile_pic_url":          publicURL,
		"profile_pic_storage_path": storagePath,
	}
	if result := db.Model(&models.User{}).Where("id = ?", userID).Updates(updates); result.Error != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to update profile photo metadata", result.Error)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Profile photo updated successfully", fiber.Map{"profile_photo_url": publicURL})
}

// GetUsers returns a page of users. Admin only.
func GetUsers(c *fiber.Ctx) error {
	db := database.DB

	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	var total int64
	if err := db.Model(&models.User{}).Count(&total).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to count users", err)
	}

	var users []models.User
	err := db.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch users", err)
	}

	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Users fetched successfully", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"totalItems":  total,
			"currentPage": page,
			"totalPages":  totalPages,
			"limit":       limit,
		},
	})
}

// DeleteUser removes an account and its quiz attempts. Admin only.
func DeleteUser(c *fiber.Ctx) error {
	db := database.DB

	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid user ID format", err)
	}

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusNotFound, "User not found", nil)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch user", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.QuizAttempt{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to delete user", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "User deleted successfully", nil)
}
