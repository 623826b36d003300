package models

import (
	"time"

	"gorm.io/gorm"
)

// Tag represents a label that can be applied to images.
// Tags are shared across all users; no single user owns one.
type Tag struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"size:50;uniqueIndex;not null" json:"name"`

	// Relationships
	Images []Image `gorm:"many2many:image_tags;" json:"images,omitempty"`
}
