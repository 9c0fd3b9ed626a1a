package models

import (
	"time"

	"github.com/google/uuid"
)

// QuizAttempt is one user's submitted answer to one question, graded
// against the answer key. Rows are append-only; the unique index on
// (user_id, question_id) keeps concurrent submissions at one attempt
// per question per user.
type QuizAttempt struct {
	AttemptID     uuid.UUID `gorm:"column:attempt_id;type:uuid;primaryKey;not null" json:"attempt_id"`
	UserID        uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_quiz_attempts_user_question" json:"user_id"`
	QuestionID    uuid.UUID `gorm:"column:question_id;type:uuid;not null;uniqueIndex:idx_quiz_attempts_user_question" json:"question_id"`
	SubmittedText string    `gorm:"column:submitted_text;type:text;not null" json:"submitted_text"`
	IsCorrect     bool      `gorm:"column:is_correct;type:boolean;not null" json:"is_correct"`
	SubmittedAt   time.Time `gorm:"column:submitted_at;type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"submitted_at"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
