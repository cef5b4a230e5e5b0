package models

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	FullName     string    `gorm:"type:varchar(255)" json:"full_name"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`
	School       string    `gorm:"type:varchar(255)" json:"school,omitempty"`
	Subject      string    `gorm:"type:varchar(255)" json:"subject,omitempty"`
	Category     string    `gorm:"type:varchar(100)" json:"category,omitempty"`
	Experience   int       `gorm:"not null;default:0" json:"experience"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DisplayName falls back to the username when no full name was given.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}
