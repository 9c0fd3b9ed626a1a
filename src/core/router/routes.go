package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"

	"github.com/tunde1256/flashcard/src/core/middleware"
	"github.com/tunde1256/flashcard/src/modules/authentication"
	"github.com/tunde1256/flashcard/src/modules/categories"
	"github.com/tunde1256/flashcard/src/modules/notifications"
	"github.com/tunde1256/flashcard/src/modules/questions"
	"github.com/tunde1256/flashcard/src/modules/quiz"
	"github.com/tunde1256/flashcard/src/modules/users"
)

func InitialiseAndSetupRoutes(app *fiber.App) {
	root := app.Group("/", logger.New())

	root.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	// WebSocket endpoint for notification delivery
	root.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	root.Get("/ws/notifications", websocket.New(notifications.NotificationWebSocketHandler))

	apiV1 := root.Group("/api/v1")
	setupAPIV1Routes(apiV1)
}

func setupAPIV1Routes(router fiber.Router) {
	// Grouped API endpoints
	authGroup := router.Group("/auth")
	userGroup := router.Group("/users")
	categoryGroup := router.Group("/categories")
	questionGroup := router.Group("/questions")

	// Authentication routes
	authGroup.Post("/signup", authentication.SignUp)
	authGroup.Post("/signin", authentication.SignIn)
	authGroup.Post("/signout", middleware.Protected(), authentication.SignOut)
	authGroup.Post("/reset-password", authentication.ResetPassword)

	// User routes
	userGroup.Get("/profile", middleware.Protected(), users.GetProfile)
	userGroup.Put("/profile", middleware.Protected(), users.UpdateProfile)
	userGroup.Post("/upload-profile-photo", middleware.Protected(), users.UploadProfilePhoto)
	userGroup.Get("/", middleware.Protected(), middleware.AdminOnly(), users.GetUsers)
	userGroup.Delete("/:userId", middleware.Protected(), middleware.AdminOnly(), users.DeleteUser)

	// Category authoring routes
	categoryGroup.Post("/", middleware.Protected(), categories.CreateCategory)
	categoryGroup.Get("/", middleware.Protected(), categories.GetCategories)
	categoryGroup.Get("/:name", middleware.Protected(), categories.GetCategoryByName)
	categoryGroup.Delete("/:id", middleware.Protected(), middleware.AdminOnly(), categories.DeleteCategory)

	// Question authoring routes
	questionGroup.Post("/", middleware.Protected(), questions.CreateQuestionWithAnswer)
	questionGroup.Get("/by-category/:categoryId", middleware.Protected(), questions.GetQuestionsByCategory)
	questionGroup.Get("/:id", middleware.Protected(), questions.GetQuestion)
	questionGroup.Put("/:id", middleware.Protected(), questions.UpdateQuestionWithAnswer)
	questionGroup.Delete("/:id", middleware.Protected(), questions.DeleteQuestion)

	// Quiz session routes. Submissions are rate limited per client.
	router.Get("/quiz-question/:userId/:category", middleware.Protected(), quiz.GetQuizQuestion)
	router.Get("/quiz-progress/:userId/:category", middleware.Protected(), quiz.GetQuizProgress)
	router.Post("/quiz-answer/:userId/:questionId",
		middleware.Protected(),
		limiter.New(limiter.Config{
			Max:        30,
			Expiration: time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				if userID, ok := c.Locals("user_id").(string); ok && userID != "" {
					return "user:" + userID
				}
				return c.IP()
			},
		}),
		quiz.SubmitQuizAnswer,
	)
}
