package manage

import (
	"net/http"

	"github.com/dustycrowbones/photo-gallery-project/pkg/gallery/auth"
	"github.com/dustycrowbones/photo-gallery-project/pkg/gallery/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler serves the library management view: the caller's folders next to
// the global tag list, the two things the management page edits.
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new manage handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// FolderEntry represents a folder in the management listing
type FolderEntry struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// TagEntry represents a tag in the management listing
type TagEntry struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// LibraryResponse is the management view payload
type LibraryResponse struct {
	Folders []FolderEntry `json:"folders"`
	Tags    []TagEntry    `json:"tags"`
}

// Library returns the caller's folders and all tags
// @Summary Library management view
// @Description Get the authenticated user's folders and the global tag list
// @Tags manage
// @Produce json
// @Success 200 {object} LibraryResponse
// @Failure 401 {object} map[string]string "Authentication required"
// @Security BearerAuth
// @Router /manage [get]
func (h *Handler) Library(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var folders []models.Folder
	if err := h.db.Where("user_id = ?", userID).Order("name").Find(&folders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch folders"})
		return
	}

	var tags []models.Tag
	if err := h.db.Order("name").Find(&tags).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tags"})
		return
	}

	resp := LibraryResponse{
		Folders: make([]FolderEntry, len(folders)),
		Tags:    make([]TagEntry, len(tags)),
	}
	for i, folder := range folders {
		resp.Folders[i] = FolderEntry{ID: folder.ID, Name: folder.Name}
	}
	for i, tag := range tags {
		resp.Tags[i] = TagEntry{ID: tag.ID, Name: tag.Name}
	}

	c.JSON(http.StatusOK, resp)
}

// RegisterRoutes registers the management route
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/manage", auth.AuthMiddleware(), h.Library)
}
