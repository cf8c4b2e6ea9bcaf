package domain

import "time"

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	AvatarID     int       `json:"avatar_id" gorm:"default:1"`
	Health       int       `json:"health" gorm:"default:0"`
	Experience   int       `json:"experience" gorm:"default:0"`
	Level        int       `json:"level" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
