package images

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/dustycrowbones/photo-gallery-project/pkg/gallery/auth"
	"github.com/dustycrowbones/photo-gallery-project/pkg/gallery/models"
	"github.com/dustycrowbones/photo-gallery-project/pkg/gallery/storage"
	"github.com/dustycrowbones/photo-gallery-project/pkg/gallery/thumbnail"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const maxTitleLength = 100

// Handler handles image requests
type Handler struct {
	db    *gorm.DB
	store *storage.Store
}

// NewHandler creates a new images handler
func NewHandler(db *gorm.DB, store *storage.Store) *Handler {
	return &Handler{db: db, store: store}
}

// TagRef represents a tag attached to an image in responses
type TagRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ImageResponse represents an image in API responses
type ImageResponse struct {
	ID           uint     `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	FolderID     uint     `json:"folder_id"`
	OriginalURL  string   `json:"original_url"`
	ThumbnailURL string   `json:"thumbnail_url,omitempty"`
	Tags         []TagRef `json:"tags"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

func imageToResponse(img models.Image) ImageResponse {
	resp := ImageResponse{
		ID:          img.ID,
		Title:       img.Title,
		Description: img.Description,
		FolderID:    img.FolderID,
		OriginalURL: "/media/images/" + img.OriginalFile,
		Tags:        make([]TagRef, len(img.Tags)),
		CreatedAt:   img.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   img.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if img.ThumbnailFile != "" {
		resp.ThumbnailURL = "/media/thumbnails/" + img.ThumbnailFile
	}
	for i, t := range img.Tags {
		resp.Tags[i] = TagRef{ID: t.ID, Name: t.Name}
	}
	return resp
}

// resolveTags looks up the tag IDs from a form submission. Every ID must
// refer to an existing tag; uploads never create tags implicitly.
func (h *Handler) resolveTags(values []string) ([]models.Tag, error) {
	ids := make([]uint, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, errors.New("invalid tag ID")
		}
		ids = append(ids, uint(id))
	}

	if len(ids) == 0 {
		return nil, nil
	}

	var tags []models.Tag
	if err := h.db.Find(&tags, ids).Error; err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		return nil, errors.New("unknown tag")
	}
	return tags, nil
}

func readUpload(c *gin.Context, field string) (string, []byte, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil, err
	}
	f, err := fileHeader.Open()
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", nil, err
	}
	return fileHeader.Filename, data, nil
}

// Upload creates a new image from a multipart form. The thumbnail is derived
// before anything touches disk; the record and both media files then persist
// as one unit of work.
// @Summary Upload an image
// @Description Upload an image file with metadata into one of the caller's folders
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param title formData string true "Title (max 100 chars)"
// @Param description formData string false "Description"
// @Param folder_id formData int true "Destination folder ID"
// @Param tags formData []int false "Tag IDs"
// @Success 201 {object} ImageResponse
// @Failure 400 {object} map[string]string "Validation or decode error"
// @Failure 404 {object} map[string]string "Folder not found"
// @Security BearerAuth
// @Router /images [post]
func (h *Handler) Upload(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}
	if len(title) > maxTitleLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title must be at most 100 characters"})
		return
	}

	folderID, err := strconv.ParseUint(c.PostForm("folder_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid folder ID"})
		return
	}

	// Owner folded into the lookup: uploading into someone else's folder
	// looks the same as uploading into a missing one.
	var folder models.Folder
	if err := h.db.Where("id = ? AND user_id = ?", folderID, userID).First(&folder).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Folder not found"})
		return
	}

	tags, err := h.resolveTags(c.PostFormArray("tags"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filename, data, err := readUpload(c, "file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	storedName := h.store.UniqueName(filename)

	thumb, err := thumbnail.Derive(storedName, bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, thumbnail.ErrNotAnImage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Uploaded file is not a valid image"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process image"})
		return
	}

	img := models.Image{
		Title:         title,
		Description:   c.PostForm("description"),
		OriginalFile:  storedName,
		ThumbnailFile: thumb.Name,
		FolderID:      folder.ID,
		UserID:        userID,
	}

	// Files are written inside the transaction callback so a failed write
	// rolls the record back; a failed commit leaves files to clean up below.
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&img).Error; err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := tx.Model(&img).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}
		if err := h.store.SaveOriginal(storedName, data); err != nil {
			return err
		}
		return h.store.SaveThumbnail(thumb.Name, thumb.Data)
	})
	if err != nil {
		_ = h.store.DeleteOriginal(storedName)
		_ = h.store.DeleteThumbnail(thumb.Name)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
		return
	}

	img.Tags = tags
	c.JSON(http.StatusCreated, imageToResponse(img))
}

// Get returns one of the caller's images, owner folded into the lookup.
// @Summary Get an image
// @Description Get one of the authenticated user's images with its tags
// @Tags images
// @Produce json
// @Param id path int true "Image ID"
// @Success 200 {object} ImageResponse
// @Failure 404 {object} map[string]string "Image not found"
// @Security BearerAuth
// @Router /images/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	userID, _ := auth.GetUserID(c)
	imageID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image ID"})
		return
	}

	var img models.Image
	if err := h.db.Preload("Tags").Where("id = ? AND user_id = ?", imageID, userID).First(&img).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}

	c.JSON(http.StatusOK, imageToResponse(img))
}

// Update applies any subset of title/description/folder/tags/file changes.
// Unlike reads, this is the two-step form: the image is fetched by id alone,
// then ownership is checked, so a non-owner gets an explicit 403.
// A replaced file does not regenerate an existing thumbnail; derivation runs
// only when no thumbnail exists yet.
// @Summary Edit an image
// @Description Update title, description, folder, tags, or file of an owned image
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Image ID"
// @Param file formData file false "Replacement image file"
// @Param title formData string false "Title (max 100 chars)"
// @Param description formData string false "Description"
// @Param folder_id formData int false "Destination folder ID"
// @Param tags formData []int false "Tag IDs (replaces existing set)"
// @Success 200 {object} ImageResponse
// @Failure 400 {object} map[string]string "Validation or decode error"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Image not found"
// @Security BearerAuth
// @Router /images/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	userID, _ := auth.GetUserID(c)
	imageID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image ID"})
		return
	}

	var img models.Image
	if err := h.db.First(&img, imageID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}

	if img.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to edit this image"})
		return
	}

	if title, ok := c.GetPostForm("title"); ok {
		title = strings.TrimSpace(title)
		if title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
			return
		}
		if len(title) > maxTitleLength {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title must be at most 100 characters"})
			return
		}
		img.Title = title
	}

	if description, ok := c.GetPostForm("description"); ok {
		img.Description = description
	}

	if folderValue, ok := c.GetPostForm("folder_id"); ok {
		folderID, err := strconv.ParseUint(folderValue, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid folder ID"})
			return
		}
		var folder models.Folder
		if err := h.db.Where("id = ? AND user_id = ?", folderID, userID).First(&folder).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Folder not found"})
			return
		}
		img.FolderID = folder.ID
	}

	var tags []models.Tag
	tagValues, replaceTags := c.GetPostFormArray("tags")
	if replaceTags {
		tags, err = h.resolveTags(tagValues)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	var (
		newData     []byte
		newName     string
		oldName     string
		newThumb    *thumbnail.Result
		replaceFile bool
	)
	if filename, data, err := readUpload(c, "file"); err == nil {
		replaceFile = true
		newData = data
		newName = h.store.UniqueName(filename)
		oldName = img.OriginalFile

		// Derivation runs only on an image that never had a thumbnail;
		// a replacement file otherwise keeps the existing one.
		if img.ThumbnailFile == "" {
			newThumb, err = thumbnail.Derive(newName, bytes.NewReader(data))
			if err != nil {
				if errors.Is(err, thumbnail.ErrNotAnImage) {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Uploaded file is not a valid image"})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process image"})
				return
			}
			img.ThumbnailFile = newThumb.Name
		}
		img.OriginalFile = newName
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&img).Error; err != nil {
			return err
		}
		if replaceTags {
			if err := tx.Model(&img).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}
		if replaceFile {
			if err := h.store.SaveOriginal(newName, newData); err != nil {
				return err
			}
		}
		if newThumb != nil {
			if err := h.store.SaveThumbnail(newThumb.Name, newThumb.Data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if replaceFile {
			_ = h.store.DeleteOriginal(newName)
		}
		if newThumb != nil {
			_ = h.store.DeleteThumbnail(newThumb.Name)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update image"})
		return
	}

	if replaceFile && oldName != newName {
		_ = h.store.DeleteOriginal(oldName)
	}

	var updated models.Image
	if err := h.db.Preload("Tags").First(&updated, img.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch image"})
		return
	}

	c.JSON(http.StatusOK, imageToResponse(updated))
}

// Delete removes one of the caller's images. Two-step check: 404 when the
// record is absent, 403 when it exists but belongs to someone else.
// @Summary Delete an image
// @Description Delete one of the authenticated user's images
// @Tags images
// @Produce json
// @Param id path int true "Image ID"
// @Success 200 {object} map[string]string "Image deleted"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Image not found"
// @Security BearerAuth
// @Router /images/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID, _ := auth.GetUserID(c)
	imageID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image ID"})
		return
	}

	var img models.Image
	if err := h.db.First(&img, imageID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}

	if img.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to delete this image"})
		return
	}

	if err := h.db.Delete(&img).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}

	_ = h.store.DeleteOriginal(img.OriginalFile)
	_ = h.store.DeleteThumbnail(img.ThumbnailFile)

	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}

// Search returns the caller's images with a tag whose name contains the query,
// case-insensitively. The many-to-many join can yield one row per matching
// tag, so results are de-duplicated. Empty query, empty result.
// @Summary Search images by tag
// @Description Find the authenticated user's images whose tag names contain the query
// @Tags images
// @Produce json
// @Param q query string false "Tag name substring"
// @Success 200 {array} ImageResponse
// @Security BearerAuth
// @Router /search [get]
func (h *Handler) Search(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusOK, []ImageResponse{})
		return
	}

	var images []models.Image
	err := h.db.Distinct("images.*").
		Joins("JOIN image_tags ON image_tags.image_id = images.id").
		Joins("JOIN tags ON tags.id = image_tags.tag_id AND tags.deleted_at IS NULL").
		Where("images.user_id = ?", userID).
		Where("LOWER(tags.name) LIKE ?", "%"+strings.ToLower(q)+"%").
		Preload("Tags").
		Find(&images).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search images"})
		return
	}

	responses := make([]ImageResponse, len(images))
	for i, img := range images {
		responses[i] = imageToResponse(img)
	}

	c.JSON(http.StatusOK, responses)
}

// RegisterRoutes registers image routes, all requiring authentication
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/images", auth.AuthMiddleware(), h.Upload)
	rg.GET("/images/:id", auth.AuthMiddleware(), h.Get)
	rg.PUT("/images/:id", auth.AuthMiddleware(), h.Update)
	rg.DELETE("/images/:id", auth.AuthMiddleware(), h.Delete)
	rg.GET("/search", auth.AuthMiddleware(), h.Search)
}
