package database

import (
	"fmt"
	"log"

	"github.com/tunde1256/flashcard/src/core/config"
	"github.com/tunde1256/flashcard/src/core/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

var DB *gorm.DB

func ConnectDB() {
	host := config.Config("DB_HOST")
	port := config.Config("DB_PORT")
	user := config.Config("DB_USER")
	password := config.Config("DB_PASSWORD")
	dbname := config.Config("DB_NAME")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, password, dbname)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: false,
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
	})
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}
	fmt.Println("Database successfully connected!")
}

// Migrate creates or updates the tables the application owns. The unique
// index on quiz_attempts (user_id, question_id) is what serializes
// concurrent answer submissions, so it must exist before serving traffic.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Question{},
		&models.AnswerKey{},
		&models.QuizAttempt{},
		&models.Notification{},
	)
}
