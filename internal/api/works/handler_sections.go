package works

import (
	"errors"
	"net/http"

	"portfolio-backend/database"
	"portfolio-backend/internal/domain/works"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ------------------------------
// GET /api/sections
// ------------------------------
func ListSections(c *gin.Context) {
	var sections []works.Section
	if err := database.DB.Order("order_index ASC").Find(&sections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sections"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

// ------------------------------
// GET /api/sections/:id
// ------------------------------
func GetSection(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var section works.Section
	if err := database.DB.First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load section"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"section": section})
}

// ------------------------------
// GET /api/sections/:id/artworks
// ------------------------------
//
// No visibility filter here, matching the section-scoped listing rule.
func ListSectionArtworks(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var artworks []works.Artwork
	err := database.DB.
		Where("section_id = ?", id).
		Order("order_index ASC").
		Find(&artworks).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"artworks": artworks})
}

// ------------------------------
// POST /api/sections
// ------------------------------
func CreateSection(c *gin.Context) {
	var req CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	section := works.Section{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		OrderIndex:  req.OrderIndex,
	}

	if err := database.DB.Create(&section).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create section"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"section": section})
}

// ------------------------------
// PUT /api/sections/:id
// ------------------------------
func UpdateSection(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var section works.Section
	if err := database.DB.First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load section"})
		return
	}

	if updates := req.changes(); len(updates) > 0 {
		if err := database.DB.Model(&section).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update section"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"section": section})
}

// ------------------------------
// DELETE /api/sections/:id
// ------------------------------
func DeleteSection(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var section works.Section
	if err := database.DB.First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load section"})
		return
	}

	if err := database.DB.Delete(&section).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete section"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"section": section})
}
