package models

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;not null" json:"id"`
	CategoryID   uuid.UUID `gorm:"column:category_id;type:uuid;not null;index" json:"category_id"`
	QuestionText string    `gorm:"column:question_text;type:text;not null" json:"question_text"`
	CreatedBy    uuid.UUID `gorm:"column:created_by;type:uuid;not null" json:"created_by"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName maps the struct to the questions table
func (Question) TableName() string {
	return "questions"
}
