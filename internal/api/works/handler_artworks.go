package works

import (
	"errors"
	"net/http"
	"strconv"

	"portfolio-backend/database"
	"portfolio-backend/internal/domain/works"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ------------------------------
// GET /api/artworks
// ------------------------------
//
// Collection-scoped listing only returns visible rows; section-scoped
// listing returns everything. The asymmetry is intentional and covered by
// a test.
func ListArtworks(c *gin.Context) {
	q := database.DB.Model(&works.Artwork{})

	if raw := c.Query("collection_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid collection_id"})
			return
		}
		q = q.Where("collection_id = ? AND is_visible = ?", uint(id), 1)
	} else if raw := c.Query("section_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid section_id"})
			return
		}
		q = q.Where("section_id = ?", uint(id))
	}

	var artworks []works.Artwork
	if err := q.Order("order_index ASC").Find(&artworks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"artworks": artworks})
}

// ------------------------------
// GET /api/artworks/:id
// ------------------------------
func GetArtwork(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var artwork works.Artwork
	if err := database.DB.First(&artwork, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artwork"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"artwork": artwork})
}

// ------------------------------
// POST /api/artworks
// ------------------------------
func CreateArtwork(c *gin.Context) {
	var req CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}
	if req.CollectionID == nil && req.SectionID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "collection_id or section_id is required"})
		return
	}
	if req.CollectionID != nil && req.SectionID != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "collection_id and section_id are mutually exclusive"})
		return
	}

	visible := 1
	if req.IsVisible != nil {
		visible = *req.IsVisible
	}

	artwork := works.Artwork{
		Title:        req.Title,
		TitleEn:      req.TitleEn,
		Year:         req.Year,
		Technique:    req.Technique,
		Dimensions:   req.Dimensions,
		ImageURL:     req.ImageURL,
		CollectionID: req.CollectionID,
		SectionID:    req.SectionID,
		OrderIndex:   req.OrderIndex,
		IsVisible:    visible,
	}

	if err := database.DB.Create(&artwork).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artwork"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"artwork": artwork})
}

// ------------------------------
// PUT /api/artworks/:id
// ------------------------------
func UpdateArtwork(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var artwork works.Artwork
	if err := database.DB.First(&artwork, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artwork"})
		return
	}

	// An artwork belongs to exactly one parent. Reassigning it to the other
	// kind means delete and recreate, not a second foreign key.
	if req.CollectionID != nil && req.SectionID != nil ||
		(req.CollectionID != nil && artwork.SectionID != nil) ||
		(req.SectionID != nil && artwork.CollectionID != nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "collection_id and section_id are mutually exclusive"})
		return
	}

	if updates := req.changes(); len(updates) > 0 {
		if err := database.DB.Model(&artwork).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artwork"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"artwork": artwork})
}

// ------------------------------
// DELETE /api/artworks/:id
// ------------------------------
func DeleteArtwork(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var artwork works.Artwork
	if err := database.DB.First(&artwork, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artwork"})
		return
	}

	if err := database.DB.Delete(&artwork).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artwork"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"artwork": artwork})
}
