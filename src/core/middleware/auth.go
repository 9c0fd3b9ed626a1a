package middleware

import (
	"github.com/tunde1256/flashcard/src/core/config"
	"github.com/tunde1256/flashcard/src/core/helpers"
	"github.com/tunde1256/flashcard/src/core/models"
	"github.com/tunde1256/flashcard/src/modules/authentication"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Protected middleware for validating JWT tokens
func Protected() fiber.Handler {
	jwtSecret := config.Config("JWT_SECRET")
	if jwtSecret == "" {
		panic("JWT_SECRET is not set in the environment variables") // Panic to prevent startup
	}

	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(jwtSecret)},
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			user := c.Locals("user").(*jwt.Token)
			claims := user.Claims.(jwt.MapClaims)

			// Signed-out tokens are rejected until they expire.
			if jti, ok := claims["jti"].(string); ok && jti != "" {
				revoked, err := authentication.IsTokenRevoked(c.Context(), jti)
				if err != nil {
					return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to check token revocation", err)
				}
				if revoked {
					return helpers.HandleError(c, fiber.StatusUnauthorized, "Token has been revoked", nil)
				}
			}

			if userID, ok := claims["sub"].(string); ok {
				c.Locals("user_id", userID)
				if role, ok := claims["role"].(string); ok {
					c.Locals("user_role", role)
				}
				return c.Next()
			}
			return helpers.HandleError(c, fiber.StatusUnauthorized, "User ID missing in token", nil)
		},
	})
}

// AdminOnly restricts a route to users carrying the Admin role claim.
// Must run after Protected.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if role, ok := c.Locals("user_role").(string); !ok || role != models.RoleAdmin {
			return helpers.HandleError(c, fiber.StatusForbidden, "Admin access required", nil)
		}
		return c.Next()
	}
}

// jwtError handles JWT-related errors
func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Missing or malformed JWT", err)
	}
	return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or expired JWT", err)
}
