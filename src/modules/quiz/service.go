package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tunde1256/flashcard/src/core/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service glues the selector, grader and progress calculator together.
// It keeps no state between calls; every request re-derives the session
// position from the persisted attempts.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// QuestionCard is what the client sees of a question: never the key.
type QuestionCard struct {
	QuestionID   uuid.UUID `json:"questionId"`
	QuestionText string    `json:"questionText"`
}

type NextQuestionResult struct {
	Question          QuestionCard `json:"question"`
	IsLast            bool         `json:"isLast"`
	Progress          string       `json:"progress"`
	TotalQuestions    int          `json:"totalQuestions"`
	AnsweredQuestions int          `json:"answeredQuestions"`
}

type SubmitAnswerResult struct {
	CorrectAnswer     string `json:"correctAnswer"`
	IsCorrect         bool   `json:"isCorrect"`
	Progress          string `json:"progress"`
	TotalQuestions    int    `json:"totalQuestions"`
	AnsweredQuestions int    `json:"answeredQuestions"`
}

// NextQuestion resolves the category by name (case-insensitive), derives
// the session cursor from the count of the user's stored attempts in
// that category, and returns the question at that position. Once every
// question has an attempt it keeps returning ErrNoMoreQuestions.
func (s *Service) NextQuestion(ctx context.Context, userID uuid.UUID, categoryName string) (*NextQuestionResult, error) {
	db := s.db.WithContext(ctx)

	category, err := findCategoryByName(db, categoryName)
	if err != nil {
		return nil, err
	}

	questions, err := categoryQuestions(db, category.ID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	answered, err := countAttempts(db, userID, questions)
	if err != nil {
		return nil, err
	}

	question, isLast, err := NextQuestion(questions, answered)
	if err != nil {
		return nil, err
	}

	progress := Progress{AnsweredQuestions: answered, TotalQuestions: len(questions)}
	return &NextQuestionResult{
		Question:          QuestionCard{QuestionID: question.ID, QuestionText: question.QuestionText},
		IsLast:            isLast,
		Progress:          progress.String(),
		TotalQuestions:    progress.TotalQuestions,
		AnsweredQuestions: progress.AnsweredQuestions,
	}, nil
}

// SubmitAnswer grades a typed answer against the question's answer key
// and appends the attempt. A retry for an already-answered question is a
// no-op write: the unique (user_id, question_id) index plus ON CONFLICT
// DO NOTHING keeps exactly one attempt, and progress does not move.
func (s *Service) SubmitAnswer(ctx context.Context, userID uuid.UUID, questionID uuid.UUID, submittedText string) (*SubmitAnswerResult, error) {
	if strings.TrimSpace(submittedText) == "" {
		return nil, ErrInvalidInput
	}
	db := s.db.WithContext(ctx)

	var question models.Question
	if err := db.First(&question, "id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("fetch question: %w", err)
	}

	var key models.AnswerKey
	if err := db.First(&key, "question_id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoAnswerKey
		}
		return nil, fmt.Errorf("fetch answer key: %w", err)
	}

	isCorrect := Grade(key.AnswerText, submittedText)

	attempt := models.QuizAttempt{
		AttemptID:     uuid.New(),
		UserID:        userID,
		QuestionID:    questionID,
		SubmittedText: submittedText,
		IsCorrect:     isCorrect,
		SubmittedAt:   time.Now().UTC(),
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "question_id"}},
		DoNothing: true,
	}).Create(&attempt).Error
	if err != nil {
		return nil, fmt.Errorf("store attempt: %w", err)
	}

	questions, err := categoryQuestions(db, question.CategoryID)
	if err != nil {
		return nil, err
	}
	answered, err := countAttempts(db, userID, questions)
	if err != nil {
		return nil, err
	}

	progress := Progress{AnsweredQuestions: answered, TotalQuestions: len(questions)}
	return &SubmitAnswerResult{
		CorrectAnswer:     key.AnswerText,
		IsCorrect:         isCorrect,
		Progress:          progress.String(),
		TotalQuestions:    progress.TotalQuestions,
		AnsweredQuestions: progress.AnsweredQuestions,
	}, nil
}

// CategoryProgress reports the user's completion over a category without
// advancing the session.
func (s *Service) CategoryProgress(ctx context.Context, userID uuid.UUID, categoryName string) (Progress, error) {
	db := s.db.WithContext(ctx)

	category, err := findCategoryByName(db, categoryName)
	if err != nil {
		return Progress{}, err
	}
	questions, err := categoryQuestions(db, category.ID)
	if err != nil {
		return Progress{}, err
	}
	answered, err := countAttempts(db, userID, questions)
	if err != nil {
		return Progress{}, err
	}
	return Progress{AnsweredQuestions: answered, TotalQuestions: len(questions)}, nil
}

func findCategoryByName(db *gorm.DB, name string) (*models.Category, error) {
	var category models.Category
	err := db.Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch category: %w", err)
	}
	return &category, nil
}

// categoryQuestions loads the category's questions in session order:
// creation time first, id as the tie-break. Array position in a mutable
// structure is never the ordering.
func categoryQuestions(db *gorm.DB, categoryID uuid.UUID) ([]models.Question, error) {
	var questions []models.Question
	err := db.Where("category_id = ?", categoryID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("fetch questions: %w", err)
	}
	return questions, nil
}

func countAttempts(db *gorm.DB, userID uuid.UUID, questions []models.Question) (int, error) {
	if len(questions) == 0 {
		return 0, nil
	}
	questionIDs := make([]uuid.UUID, 0, len(questions))
	for _, question := range questions {
		questionIDs = append(questionIDs, question.ID)
	}

	var answered int64
	err := db.Model(&models.QuizAttempt{}).
		Where("user_id = ?", userID).
		Where("question_id IN ?", questionIDs).
		Count(&answered).Error
	if err != nil {
		return 0, fmt.Errorf("count attempts: %w", err)
	}
	return int(answered), nil
}
