package model

import "time"

// User — учётная запись пользователя хранилища.
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
