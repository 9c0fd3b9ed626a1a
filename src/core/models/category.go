package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is the unit a quiz session runs over. Questions reference it
// by id; the name is only a lookup key (matched case-insensitively).
type Category struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;not null" json:"id"`
	Name      string    `gorm:"column:name;type:text;uniqueIndex;not null" json:"name"`
	CreatedBy uuid.UUID `gorm:"column:created_by;type:uuid;not null" json:"created_by"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}
