package models

import (
	"time"

	"gorm.io/gorm"
)

// Folder represents an album of images belonging to a single user.
// The owner is fixed at creation and never changes.
type Folder struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`

	// Relationships
	User   User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Images []Image `gorm:"foreignKey:FolderID" json:"images,omitempty"`
}
