package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func SetupEnv() {
	// Load environment variables from .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using process environment")
	}
}

// Config returns the environment variable or defaults to empty string
func Config(key string) string {
	return os.Getenv(key)
}

// ConfigOr returns the environment variable or the given fallback.
func ConfigOr(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
