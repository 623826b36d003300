package folders

import (
	"net/http"
	"strconv"

	"github.com/dustycrowbones/photo-gallery-project/pkg/gallery/auth"
	"github.com/dustycrowbones/photo-gallery-project/pkg/gallery/models"
	"github.com/dustycrowbones/photo-gallery-project/pkg/gallery/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler handles folder (album) requests
type Handler struct {
	db    *gorm.DB
	store *storage.Store
}

// NewHandler creates a new folders handler
func NewHandler(db *gorm.DB, store *storage.Store) *Handler {
	return &Handler{db: db, store: store}
}

// FolderRequest represents the request to create or rename a folder
type FolderRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// FolderResponse represents a folder in API responses
type FolderResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// FolderDetailResponse is a folder together with its images
type FolderDetailResponse struct {
	FolderResponse
	Images []ImageSummary `json:"images"`
}

// ImageSummary represents an image inside a folder listing
type ImageSummary struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	OriginalURL  string `json:"original_url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

func folderToResponse(folder models.Folder) FolderResponse {
	return FolderResponse{
		ID:        folder.ID,
		Name:      folder.Name,
		CreatedAt: folder.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt: folder.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func imageToSummary(img models.Image) ImageSummary {
	s := ImageSummary{
		ID:          img.ID,
		Title:       img.Title,
		OriginalURL: "/media/images/" + img.OriginalFile,
	}
	if img.ThumbnailFile != "" {
		s.ThumbnailURL = "/media/thumbnails/" + img.ThumbnailFile
	}
	return s
}

// List returns the caller's folders. Anonymous visitors get an empty list,
// matching the public home page.
// @Summary List folders
// @Description Get the authenticated user's folders; empty list when unauthenticated
// @Tags folders
// @Produce json
// @Success 200 {array} FolderResponse
// @Security BearerAuth
// @Router /folders [get]
func (h *Handler) List(c *gin.Context) {
	userID, authed := auth.GetUserID(c)
	if !authed {
		c.JSON(http.StatusOK, []FolderResponse{})
		return
	}

	var folders []models.Folder
	if err := h.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&folders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch folders"})
		return
	}

	responses := make([]FolderResponse, len(folders))
	for i, folder := range folders {
		responses[i] = folderToResponse(folder)
	}

	c.JSON(http.StatusOK, responses)
}

// Create creates a new folder owned by the caller
// @Summary Create a folder
// @Description Create a new album owned by the authenticated user
// @Tags folders
// @Accept json
// @Produce json
// @Param request body FolderRequest true "Folder details"
// @Success 201 {object} FolderResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /folders [post]
func (h *Handler) Create(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var req FolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	folder := models.Folder{
		Name:   req.Name,
		UserID: userID,
	}
	if err := h.db.Create(&folder).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create folder"})
		return
	}

	c.JSON(http.StatusCreated, folderToResponse(folder))
}

// Get returns a folder and its images. The owner is folded into the lookup,
// so someone else's folder is indistinguishable from a missing one.
// @Summary Get a folder
// @Description Get one of the authenticated user's folders with its images
// @Tags folders
// @Produce json
// @Param id path int true "Folder ID"
// @Success 200 {object} FolderDetailResponse
// @Failure 404 {object} map[string]string "Folder not found"
// @Security BearerAuth
// @Router /folders/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	userID, _ := auth.GetUserID(c)
	folderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid folder ID"})
		return
	}

	var folder models.Folder
	if err := h.db.Where("id = ? AND user_id = ?", folderID, userID).First(&folder).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Folder not found"})
		return
	}

	var images []models.Image
	if err := h.db.Where("folder_id = ?", folder.ID).Order("created_at DESC").Find(&images).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch images"})
		return
	}

	resp := FolderDetailResponse{
		FolderResponse: folderToResponse(folder),
		Images:         make([]ImageSummary, len(images)),
	}
	for i, img := range images {
		resp.Images[i] = imageToSummary(img)
	}

	c.JSON(http.StatusOK, resp)
}

// Update renames a folder. Ownership is folded into the lookup.
// @Summary Rename a folder
// @Description Rename one of the authenticated user's folders
// @Tags folders
// @Accept json
// @Produce json
// @Param id path int true "Folder ID"
// @Param request body FolderRequest true "New name"
// @Success 200 {object} FolderResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Folder not found"
// @Security BearerAuth
// @Router /folders/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	userID, _ := auth.GetUserID(c)
	folderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid folder ID"})
		return
	}

	var folder models.Folder
	if err := h.db.Where("id = ? AND user_id = ?", folderID, userID).First(&folder).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Folder not found"})
		return
	}

	var req FolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	folder.Name = req.Name
	if err := h.db.Save(&folder).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update folder"})
		return
	}

	c.JSON(http.StatusOK, folderToResponse(folder))
}

// Delete removes a folder and every image inside it, records and media files
// both. Ownership is folded into the lookup.
// @Summary Delete a folder
// @Description Delete one of the authenticated user's folders and all images inside it
// @Tags folders
// @Produce json
// @Param id path int true "Folder ID"
// @Success 200 {object} map[string]string "Folder deleted"
// @Failure 404 {object} map[string]string "Folder not found"
// @Security BearerAuth
// @Router /folders/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID, _ := auth.GetUserID(c)
	folderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid folder ID"})
		return
	}

	var folder models.Folder
	if err := h.db.Where("id = ? AND user_id = ?", folderID, userID).First(&folder).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Folder not found"})
		return
	}

	var images []models.Image
	if err := h.db.Where("folder_id = ?", folder.ID).Find(&images).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch folder images"})
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if len(images) > 0 {
			if err := tx.Where("folder_id = ?", folder.ID).Delete(&models.Image{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&folder).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete folder"})
		return
	}

	// Media cleanup after the records are gone; a leftover file is harmless,
	// a dangling record is not.
	for _, img := range images {
		_ = h.store.DeleteOriginal(img.OriginalFile)
		_ = h.store.DeleteThumbnail(img.ThumbnailFile)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Folder deleted"})
}

// RegisterRoutes registers folder routes. Listing tolerates anonymous
// callers; everything else requires authentication.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/folders", auth.OptionalAuthMiddleware(), h.List)
	rg.POST("/folders", auth.AuthMiddleware(), h.Create)
	rg.GET("/folders/:id", auth.AuthMiddleware(), h.Get)
	rg.PUT("/folders/:id", auth.AuthMiddleware(), h.Update)
	rg.DELETE("/folders/:id", auth.AuthMiddleware(), h.Delete)
}
