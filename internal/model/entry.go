package model

import "time"

// Entry — серверная модель записи хранилища паролей.
// Cipher и IV хранятся парой: IV генерируется заново при каждом шифровании
// и никогда не переиспользуется между записями или версиями одной записи.
type Entry struct {
	ID     string `gorm:"primaryKey;type:uuid"`
	UserID int64  `gorm:"not null;index"` // ссылка на users.id

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Title  string `gorm:"not null"`
	Cipher []byte `gorm:"not null"`
	IV     []byte `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
