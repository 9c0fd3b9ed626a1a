package models

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"` // Recipient of the notification
	Message   string    `gorm:"type:text;not null" json:"message"`
	Category  string    `gorm:"type:varchar(50);not null" json:"category"` // e.g. "inactivity"
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
}
