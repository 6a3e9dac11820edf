package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nickname     string    `gorm:"size:100;not null" json:"nickname"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	PasswordSalt string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
