package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/tunde1256/flashcard/src/core/config"
	"github.com/tunde1256/flashcard/src/core/database"
	"github.com/tunde1256/flashcard/src/core/router"
	"github.com/tunde1256/flashcard/src/modules/notifications"
)

func main() {
	app := fiber.New()

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(requestid.New())

	// Setup environment variables
	config.SetupEnv()

	// Connect to the database and the revoked-token store
	database.ConnectDB()
	database.ConnectRedis()

	// Notification fan-out and the periodic inactivity sweep
	go notifications.BroadcastNotifications()
	sweeper := notifications.StartInactivitySweep()
	defer sweeper.Stop()

	// Set up routes
	router.InitialiseAndSetupRoutes(app)

	port := config.ConfigOr("APP_PORT", "8080")
	log.Fatal(app.Listen(fmt.Sprintf(":%s", port)))
}
