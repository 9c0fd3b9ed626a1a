package authentication

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/tunde1256/flashcard/src/core/config"
	"github.com/tunde1256/flashcard/src/core/database"
	"github.com/tunde1256/flashcard/src/core/helpers"
	"github.com/tunde1256/flashcard/src/core/models"
	"golang.org/x/crypto/bcrypt"
)

const tokenValidity = 24 * time.Hour

// issueJwtToken generates a JWT token for authenticated users. The jti
// claim is what the sign-out flow revokes.
func issueJwtToken(user *models.User) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)

	claims["sub"] = user.ID.String()
	claims["name"] = user.Username
	claims["email"] = user.Email
	claims["role"] = user.Role
	claims["jti"] = uuid.NewString()
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(tokenValidity).Unix()

	secretKey := config.Config("JWT_SECRET")
	return token.SignedString([]byte(secretKey))
}

type signUpInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SignUp handles user registration.
func SignUp(c *fiber.Ctx) error {
	db := database.DB
	body := new(signUpInput)

	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Username, email, and password are required", err)
	}

	var existing models.User
	if err := db.Where("email = ?", body.Email).First(&existing).Error; err == nil {
		return helpers.HandleError(c, fiber.StatusConflict, "Email already in use", nil)
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to hash password", err)
	}

	user := models.User{
		ID:             uuid.New(),
		Username:       body.Username,
		Email:          body.Email,
		Password:       string(hashedPwd),
		Role:           models.RoleUser,
		LastActivityAt: time.Now().UTC(),
	}
	if result := db.Create(&user); result.Error != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to create user account", result.Error)
	}

	token, err := issueJwtToken(&user)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to generate token", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Account created successfully", fiber.Map{"token": token})
}

// SignIn handles user authentication.
func SignIn(c *fiber.Ctx) error {
	db := database.DB
	body := new(models.User)

	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}

	user := new(models.User)
	if result := db.Where("email = ?", body.Email).First(user); result.Error != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid login credentials", result.Error)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid login credentials", err)
	}

	// Track activity for the inactivity sweep.
	db.Model(user).Update("last_activity_at", time.Now().UTC())

	token, err := issueJwtToken(user)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to generate token", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Sign-in successful", fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// SignOut revokes the presented token for the rest of its lifetime.
// Runs behind the Protected middleware, which parses the token.
func SignOut(c *fiber.Ctx) error {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Missing token", nil)
	}
	claims := token.Claims.(jwt.MapClaims)

	jti, _ := claims["jti"].(string)
	if jti == "" {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Token has no jti claim", nil)
	}
	ttl := tokenValidity
	if exp, ok := claims["exp"].(float64); ok {
		ttl = time.Until(time.Unix(int64(exp), 0))
	}

	if err := RevokeToken(c.Context(), jti, ttl); err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to revoke token", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Signed out successfully", nil)
}

type resetPasswordInput struct {
	Email           string `json:"email" validate:"required,email"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// ResetPassword sets a new password for the account with the given
// email.
func ResetPassword(c *fiber.Ctx) error {
	db := database.DB
	body := new(resetPasswordInput)

	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Email, new password, and confirm password are required", err)
	}
	if body.NewPassword != body.ConfirmPassword {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Passwords do not match", nil)
	}

	user := new(models.User)
	if result := db.Where("email = ?", body.Email).First(user); result.Error != nil {
		return helpers.HandleError(c, fiber.StatusNotFound, "User not found", result.Error)
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to hash password", err)
	}
	if result := db.Model(user).Update("password", string(hashedPwd)); result.Error != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to update password", result.Error)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Password reset successfully", nil)
}
