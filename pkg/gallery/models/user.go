package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account in the gallery
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `json:"-"`
	Name         string         `gorm:"not null" json:"name"`

	// Relationships
	Folders []Folder `gorm:"foreignKey:UserID" json:"folders,omitempty"`
	Images  []Image  `gorm:"foreignKey:UserID" json:"images,omitempty"`
}
