package models

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	return db
}

func TestAutoMigrate(t *testing.T) {
	db := setupTestDB(t)

	err := AutoMigrate(db)
	if err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}

	// Verify tables exist by checking if we can query them
	tables := []string{"users", "tags", "folders", "images", "image_tags"}
	for _, table := range tables {
		if !db.Migrator().HasTable(table) {
			t.Errorf("Expected table %s to exist", table)
		}
	}
}

func TestUserModel(t *testing.T) {
	db := setupTestDB(t)
	AutoMigrate(db)

	user := User{
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Name:         "Test User",
	}

	result := db.Create(&user)
	if result.Error != nil {
		t.Fatalf("Failed to create user: %v", result.Error)
	}

	if user.ID == 0 {
		t.Error("Expected user ID to be set after create")
	}

	// Test unique email constraint
	user2 := User{
		Email:        "test@example.com",
		PasswordHash: "another_hash",
		Name:         "Another User",
	}
	result = db.Create(&user2)
	if result.Error == nil {
		t.Error("Expected error when creating user with duplicate email")
	}
}

func TestTagNameUniqueness(t *testing.T) {
	db := setupTestDB(t)
	AutoMigrate(db)

	tag1 := Tag{Name: "vacation"}
	if err := db.Create(&tag1).Error; err != nil {
		t.Fatalf("Failed to create tag: %v", err)
	}

	tag2 := Tag{Name: "vacation"}
	if err := db.Create(&tag2).Error; err == nil {
		t.Error("Expected error when creating tag with duplicate name")
	}

	var count int64
	db.Model(&Tag{}).Where("name = ?", "vacation").Count(&count)
	if count != 1 {
		t.Errorf("Expected exactly 1 vacation tag, got %d", count)
	}
}

func TestFolderOwnership(t *testing.T) {
	db := setupTestDB(t)
	AutoMigrate(db)

	user := User{Email: "test@example.com", PasswordHash: "hash", Name: "Test"}
	db.Create(&user)

	folder := Folder{Name: "Holidays", UserID: user.ID}
	if err := db.Create(&folder).Error; err != nil {
		t.Fatalf("Failed to create folder: %v", err)
	}

	var loadedUser User
	db.Preload("Folders").First(&loadedUser, user.ID)
	if len(loadedUser.Folders) != 1 {
		t.Errorf("Expected 1 folder, got %d", len(loadedUser.Folders))
	}
}

func TestImageWithTags(t *testing.T) {
	db := setupTestDB(t)
	AutoMigrate(db)

	user := User{Email: "test@example.com", PasswordHash: "hash", Name: "Test"}
	db.Create(&user)
	folder := Folder{Name: "Holidays", UserID: user.ID}
	db.Create(&folder)

	tag1 := Tag{Name: "sunset"}
	tag2 := Tag{Name: "beach"}
	db.Create(&tag1)
	db.Create(&tag2)

	img := Image{
		Title:         "Evening at the coast",
		OriginalFile:  "coast_abc123.jpg",
		ThumbnailFile: "thumb_coast_abc123.jpg",
		FolderID:      folder.ID,
		UserID:        user.ID,
		Tags:          []Tag{tag1, tag2},
	}
	result := db.Create(&img)
	if result.Error != nil {
		t.Fatalf("Failed to create image: %v", result.Error)
	}

	var loadedImage Image
	db.Preload("Tags").First(&loadedImage, img.ID)
	if len(loadedImage.Tags) != 2 {
		t.Errorf("Expected 2 tags, got %d", len(loadedImage.Tags))
	}
}

func TestImageBelongsToFolderAndOwner(t *testing.T) {
	db := setupTestDB(t)
	AutoMigrate(db)

	user := User{Email: "test@example.com", PasswordHash: "hash", Name: "Test"}
	db.Create(&user)
	folder := Folder{Name: "Holidays", UserID: user.ID}
	db.Create(&folder)

	img := Image{
		Title:        "Pier",
		OriginalFile: "pier_def456.png",
		FolderID:     folder.ID,
		UserID:       user.ID,
	}
	db.Create(&img)

	var loadedImage Image
	db.Preload("Folder").Preload("User").First(&loadedImage, img.ID)
	if loadedImage.Folder.ID != folder.ID {
		t.Errorf("Expected folder %d, got %d", folder.ID, loadedImage.Folder.ID)
	}
	if loadedImage.User.ID != user.ID {
		t.Errorf("Expected user %d, got %d", user.ID, loadedImage.User.ID)
	}
	if loadedImage.ThumbnailFile != "" {
		t.Errorf("Expected empty thumbnail for image created without one, got %s", loadedImage.ThumbnailFile)
	}
}
