package models

import "gorm.io/gorm"

// AllModels returns all models for migration.
// Note: User must be migrated first as Folder and Image depend on it.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Tag{},
		&Folder{},
		&Image{},
	}
}

// AutoMigrate runs GORM auto-migration for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
