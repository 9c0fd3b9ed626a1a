package quiz

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/tunde1256/flashcard/src/core/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// A :memory: database exists per connection; keep the pool at one so
	// every query sees the same schema.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Question{},
		&models.AnswerKey{},
		&models.QuizAttempt{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedCategory creates a category plus one question and answer key per
// entry of qa, with strictly increasing creation times so the session
// order matches the slice order.
func seedCategory(t *testing.T, db *gorm.DB, name string, qa [][2]string) (uuid.UUID, []uuid.UUID) {
	t.Helper()

	creator := uuid.New()
	category := models.Category{ID: uuid.New(), Name: name, CreatedBy: creator, CreatedAt: time.Now().UTC()}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	questionIDs := make([]uuid.UUID, 0, len(qa))
	for i, pair := range qa {
		question := models.Question{
			ID:           uuid.New(),
			CategoryID:   category.ID,
			QuestionText: pair[0],
			CreatedBy:    creator,
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&question).Error; err != nil {
			t.Fatalf("seed question: %v", err)
		}
		key := models.AnswerKey{
			ID:         uuid.New(),
			QuestionID: question.ID,
			AnswerText: pair[1],
			CreatedBy:  creator,
			CreatedAt:  question.CreatedAt,
		}
		if err := db.Create(&key).Error; err != nil {
			t.Fatalf("seed answer key: %v", err)
		}
		questionIDs = append(questionIDs, question.ID)
	}
	return category.ID, questionIDs
}

func TestQuizEndToEnd(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	userID := uuid.New()

	_, questionIDs := seedCategory(t, db, "Geography", [][2]string{
		{"What is the capital of France?", "Paris"},
		{"What is the capital of Japan?", "Tokyo"},
	})

	next, err := svc.NextQuestion(ctx, userID, "Geography")
	if err != nil {
		t.Fatalf("NextQuestion: %v", err)
	}
	if next.Question.QuestionID != questionIDs[0] {
		t.Errorf("first question = %v, want %v", next.Question.QuestionID, questionIDs[0])
	}
	if next.Progress != "0.00%" || next.AnsweredQuestions != 0 || next.TotalQuestions != 2 {
		t.Errorf("initial progress = %s (%d/%d), want 0.00%% (0/2)", next.Progress, next.AnsweredQuestions, next.TotalQuestions)
	}
	if next.IsLast {
		t.Error("first of two questions reported as last")
	}

	// Correct answer, normalized.
	submit, err := svc.SubmitAnswer(ctx, userID, questionIDs[0], "paris")
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if !submit.IsCorrect {
		t.Error("\"paris\" graded incorrect against key \"Paris\"")
	}
	if submit.CorrectAnswer != "Paris" {
		t.Errorf("CorrectAnswer = %q, want %q", submit.CorrectAnswer, "Paris")
	}
	if submit.Progress != "50.00%" {
		t.Errorf("progress after first answer = %s, want 50.00%%", submit.Progress)
	}

	// The cursor moved: next question is the second one.
	next, err = svc.NextQuestion(ctx, userID, "Geography")
	if err != nil {
		t.Fatalf("NextQuestion after submit: %v", err)
	}
	if next.Question.QuestionID != questionIDs[1] {
		t.Errorf("second question = %v, want %v", next.Question.QuestionID, questionIDs[1])
	}
	if !next.IsLast {
		t.Error("second of two questions not reported as last")
	}

	// Wrong answer still completes the question: correctness and
	// completion are separate.
	submit, err = svc.SubmitAnswer(ctx, userID, questionIDs[1], "Rome")
	if err != nil {
		t.Fatalf("SubmitAnswer wrong: %v", err)
	}
	if submit.IsCorrect {
		t.Error("\"Rome\" graded correct against key \"Tokyo\"")
	}
	if submit.Progress != "100.00%" {
		t.Errorf("progress after second answer = %s, want 100.00%%", submit.Progress)
	}

	// Completed is terminal and idempotent.
	if _, err := svc.NextQuestion(ctx, userID, "Geography"); !errors.Is(err, ErrNoMoreQuestions) {
		t.Errorf("exhausted quiz err = %v, want ErrNoMoreQuestions", err)
	}
}

func TestSubmitAnswerIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	userID := uuid.New()

	_, questionIDs := seedCategory(t, db, "Geography", [][2]string{
		{"What is the capital of France?", "Paris"},
		{"What is the capital of Japan?", "Tokyo"},
	})

	first, err := svc.SubmitAnswer(ctx, userID, questionIDs[0], "Paris")
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	second, err := svc.SubmitAnswer(ctx, userID, questionIDs[0], "Paris")
	if err != nil {
		t.Fatalf("retried submit: %v", err)
	}

	if second.Progress != first.Progress {
		t.Errorf("retry moved progress: %s -> %s", first.Progress, second.Progress)
	}
	var count int64
	err = db.Model(&models.QuizAttempt{}).
		Where("user_id = ? AND question_id = ?", userID, questionIDs[0]).
		Count(&count).Error
	if err != nil {
		t.Fatalf("count attempts: %v", err)
	}
	if count != 1 {
		t.Errorf("stored attempts = %d, want 1", count)
	}
}

func TestNextQuestionCategoryLookupIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	seedCategory(t, db, "Geography", [][2]string{
		{"What is the capital of France?", "Paris"},
	})

	for _, name := range []string{"geography", "GEOGRAPHY", " Geography "} {
		if _, err := svc.NextQuestion(ctx, uuid.New(), name); err != nil {
			t.Errorf("lookup %q: %v", name, err)
		}
	}
}

func TestNextQuestionErrors(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	userID := uuid.New()

	if _, err := svc.NextQuestion(ctx, userID, "History"); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("unknown category err = %v, want ErrCategoryNotFound", err)
	}

	seedCategory(t, db, "Empty", nil)
	if _, err := svc.NextQuestion(ctx, userID, "Empty"); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("empty category err = %v, want ErrNoQuestions", err)
	}

	progress, err := svc.CategoryProgress(ctx, userID, "Empty")
	if err != nil {
		t.Fatalf("CategoryProgress: %v", err)
	}
	if progress.String() != "0.00%" {
		t.Errorf("empty category progress = %s, want 0.00%%", progress)
	}
}

func TestSubmitAnswerErrors(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	userID := uuid.New()

	_, questionIDs := seedCategory(t, db, "Geography", [][2]string{
		{"What is the capital of France?", "Paris"},
	})

	if _, err := svc.SubmitAnswer(ctx, userID, uuid.New(), "Paris"); !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("unknown question err = %v, want ErrQuestionNotFound", err)
	}

	if _, err := svc.SubmitAnswer(ctx, userID, questionIDs[0], "   "); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("blank answer err = %v, want ErrInvalidInput", err)
	}

	// A question without an authoritative key cannot be graded.
	orphan := models.Question{
		ID:           uuid.New(),
		CategoryID:   uuid.New(),
		QuestionText: "Who wrote this?",
		CreatedBy:    userID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.Create(&orphan).Error; err != nil {
		t.Fatalf("seed orphan question: %v", err)
	}
	if _, err := svc.SubmitAnswer(ctx, userID, orphan.ID, "me"); !errors.Is(err, ErrNoAnswerKey) {
		t.Errorf("ungraded question err = %v, want ErrNoAnswerKey", err)
	}
}

// Progress counts attempted questions per user; another user's attempts
// must not leak into the cursor.
func TestProgressIsPerUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	_, questionIDs := seedCategory(t, db, "Geography", [][2]string{
		{"What is the capital of France?", "Paris"},
		{"What is the capital of Japan?", "Tokyo"},
	})

	alice, bob := uuid.New(), uuid.New()
	if _, err := svc.SubmitAnswer(ctx, alice, questionIDs[0], "Paris"); err != nil {
		t.Fatalf("alice submit: %v", err)
	}

	next, err := svc.NextQuestion(ctx, bob, "Geography")
	if err != nil {
		t.Fatalf("bob NextQuestion: %v", err)
	}
	if next.Question.QuestionID != questionIDs[0] {
		t.Error("bob's cursor was advanced by alice's attempt")
	}
	if next.Progress != "0.00%" {
		t.Errorf("bob's progress = %s, want 0.00%%", next.Progress)
	}
}
