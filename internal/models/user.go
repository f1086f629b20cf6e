package models

import "time"

type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"uniqueIndex;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	Nickname     string     `json:"nickname" gorm:"not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	CreatedAt    time.Time  `json:"created_at" gorm:"not null"`
	LastLogin    *time.Time `json:"last_login"`
}
