package tags

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/dustycrowbones/photo-gallery-project/pkg/gallery/auth"
	"github.com/dustycrowbones/photo-gallery-project/pkg/gallery/models"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	models.AutoMigrate(db)
	return db
}

func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewHandler(db)
	handler.RegisterRoutes(r.Group("/api"))
	return r
}

func createTestUser(t *testing.T, db *gorm.DB, email string) models.User {
	hash, _ := auth.HashPassword("password123")
	user := models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         "Test User",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

func getAuthHeader(user models.User) string {
	token, _ := auth.GenerateToken(user.ID, user.Email)
	return "Bearer " + token
}

func createTag(t *testing.T, router *gin.Engine, user models.User, name string) TagResponse {
	body, _ := json.Marshal(TagRequest{Name: name})
	req, _ := http.NewRequest("POST", "/api/tags", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", getAuthHeader(user))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("Tag creation failed with status %d: %s", resp.Code, resp.Body.String())
	}

	var tagResp TagResponse
	json.Unmarshal(resp.Body.Bytes(), &tagResp)
	return tagResp
}

func TestCreateTag(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	user := createTestUser(t, db, "test@example.com")

	tagResp := createTag(t, router, user, "vacation")

	if tagResp.Name != "vacation" {
		t.Errorf("Expected tag name 'vacation', got %s", tagResp.Name)
	}
	if tagResp.ID == 0 {
		t.Error("Expected tag ID to be set")
	}
}

func TestCreateDuplicateTag(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	user := createTestUser(t, db, "test@example.com")

	createTag(t, router, user, "vacation")

	body, _ := json.Marshal(TagRequest{Name: "vacation"})
	req, _ := http.NewRequest("POST", "/api/tags", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", getAuthHeader(user))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", resp.Code)
	}

	var count int64
	db.Model(&models.Tag{}).Where("name = ?", "vacation").Count(&count)
	if count != 1 {
		t.Errorf("Expected exactly 1 vacation tag, got %d", count)
	}
}

func TestListTagsIsPublic(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	user := createTestUser(t, db, "test@example.com")
	createTag(t, router, user, "sunset")
	createTag(t, router, user, "beach")

	// No Authorization header
	req, _ := http.NewRequest("GET", "/api/tags", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}

	var tags []TagResponse
	json.Unmarshal(resp.Body.Bytes(), &tags)
	if len(tags) != 2 {
		t.Fatalf("Expected 2 tags, got %d", len(tags))
	}
	if tags[0].Name != "beach" || tags[1].Name != "sunset" {
		t.Errorf("Expected tags ordered by name, got %v", tags)
	}
}

func TestUpdateTag(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	user := createTestUser(t, db, "test@example.com")
	tagResp := createTag(t, router, user, "vaction")

	body, _ := json.Marshal(TagRequest{Name: "vacation"})
	req, _ := http.NewRequest("PUT", "/api/tags/"+strconv.Itoa(int(tagResp.ID)), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", getAuthHeader(user))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var tag models.Tag
	db.First(&tag, tagResp.ID)
	if tag.Name != "vacation" {
		t.Errorf("Expected renamed tag, got %s", tag.Name)
	}
}

func TestUpdateTagToExistingName(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	user := createTestUser(t, db, "test@example.com")
	createTag(t, router, user, "sunset")
	other := createTag(t, router, user, "beach")

	body, _ := json.Marshal(TagRequest{Name: "sunset"})
	req, _ := http.NewRequest("PUT", "/api/tags/"+strconv.Itoa(int(other.ID)), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", getAuthHeader(user))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", resp.Code)
	}
}

func TestDeleteTagDetachesFromImages(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	user := createTestUser(t, db, "test@example.com")
	tagResp := createTag(t, router, user, "sunset")

	folder := models.Folder{Name: "Holidays", UserID: user.ID}
	db.Create(&folder)
	var tag models.Tag
	db.First(&tag, tagResp.ID)
	img := models.Image{
		Title:        "Evening",
		OriginalFile: "evening_abc123.jpg",
		FolderID:     folder.ID,
		UserID:       user.ID,
		Tags:         []models.Tag{tag},
	}
	db.Create(&img)

	req, _ := http.NewRequest("DELETE", "/api/tags/"+strconv.Itoa(int(tagResp.ID)), nil)
	req.Header.Set("Authorization", getAuthHeader(user))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var tagCount int64
	db.Model(&models.Tag{}).Count(&tagCount)
	if tagCount != 0 {
		t.Errorf("Expected tag removed, got %d rows", tagCount)
	}

	// The image survives with an empty tag list
	var loaded models.Image
	if err := db.Preload("Tags").First(&loaded, img.ID).Error; err != nil {
		t.Fatalf("Expected image to survive tag deletion: %v", err)
	}
	if len(loaded.Tags) != 0 {
		t.Errorf("Expected no tags on image, got %d", len(loaded.Tags))
	}
}

func TestDeleteMissingTag(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	user := createTestUser(t, db, "test@example.com")

	req, _ := http.NewRequest("DELETE", "/api/tags/999", nil)
	req.Header.Set("Authorization", getAuthHeader(user))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.Code)
	}
}

func TestTagMutationsRequireAuth(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)

	body, _ := json.Marshal(TagRequest{Name: "sunset"})
	req, _ := http.NewRequest("POST", "/api/tags", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Errorf("POST /api/tags: expected status 401, got %d", resp.Code)
	}

	req, _ = http.NewRequest("DELETE", "/api/tags/1", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Errorf("DELETE /api/tags/1: expected status 401, got %d", resp.Code)
	}
}
