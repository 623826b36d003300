package models

import (
	"time"

	"gorm.io/gorm"
)

// Image represents an uploaded photo. OriginalFile and ThumbnailFile are
// stored names inside the media store, not absolute paths. The thumbnail is
// derived once, on first save with a file, and is never regenerated even if
// the original is later replaced.
type Image struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	Title         string         `gorm:"size:100;not null" json:"title"`
	Description   string         `gorm:"type:text" json:"description"`
	OriginalFile  string         `gorm:"not null" json:"original_file"`
	ThumbnailFile string         `json:"thumbnail_file,omitempty"`
	FolderID      uint           `gorm:"not null;index" json:"folder_id"`
	UserID        uint           `gorm:"not null;index" json:"user_id"`

	// Relationships
	Folder Folder `gorm:"foreignKey:FolderID" json:"folder,omitempty"`
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Tags   []Tag  `gorm:"many2many:image_tags;" json:"tags,omitempty"`
}
