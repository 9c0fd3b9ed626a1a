package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

type User struct {
	ID                      uuid.UUID `gorm:"column:id;type:uuid;primaryKey;not null" json:"id"`
	Username                string    `gorm:"column:username;type:text;unique;not null" json:"username"`
	Email                   string    `gorm:"column:email;type:text;unique;not null" json:"email"`
	Password                string    `gorm:"column:password;type:text;not null" json:"-"`
	Role                    string    `gorm:"column:role;type:varchar(10);not null;default:'User'" json:"role"`
	ProfilePhotoURL         string    `gorm:"column:profile_pic_url;type:text" json:"profile_photo_url"`
	ProfilePhotoStoragePath string    `gorm:"column:profile_pic_storage_path;type:text" json:"profile_photo_storage_path"`
	LastActivityAt          time.Time `gorm:"column:last_activity_at;type:timestamp with time zone" json:"last_activity_at"`
	CreatedAt               time.Time `gorm:"column:created_at;type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt               time.Time `gorm:"column:updated_at;type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
