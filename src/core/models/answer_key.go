package models

import (
	"time"

	"github.com/google/uuid"
)

// AnswerKey is the single authoritative answer for a question. Submitted
// attempts live in quiz_attempts and never touch this table.
type AnswerKey struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;not null" json:"id"`
	QuestionID uuid.UUID `gorm:"column:question_id;type:uuid;uniqueIndex;not null" json:"question_id"`
	AnswerText string    `gorm:"column:answer_text;type:text;not null" json:"answer_text"`
	CreatedBy  uuid.UUID `gorm:"column:created_by;type:uuid;not null" json:"created_by"`
	CreatedAt  time.Time `gorm:"column:created_at;type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (AnswerKey) TableName() string {
	return "answer_keys"
}
