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
// GET /api/collections
// ------------------------------
//
// Hidden collections are only included with ?all=true (admin view).
func ListCollections(c *gin.Context) {
	q := database.DB.Model(&works.Collection{})
	if c.Query("all") != "true" {
		q = q.Where("is_visible = ?", 1)
	}

	var collections []works.Collection
	if err := q.Order("order_index ASC").Find(&collections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load collections"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"collections": collections})
}

// ------------------------------
// GET /api/collections/:idOrSlug
// ------------------------------
//
// A numeric segment looks the row up by id, a slug-shaped one by slug.
// Anything else falls outside both route shapes.
func GetCollection(c *gin.Context) {
	raw := c.Param("idOrSlug")

	var collection works.Collection
	var err error
	if id, convErr := strconv.ParseUint(raw, 10, 32); convErr == nil {
		err = database.DB.First(&collection, uint(id)).Error
	} else if slugPattern.MatchString(raw) {
		err = database.DB.First(&collection, "slug = ?", raw).Error
	} else {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load collection"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"collection": collection})
}

// ------------------------------
// POST /api/collections
// ------------------------------
//
// The slug pre-check gives the friendly 409; the unique index catches the
// race two concurrent creates would otherwise win together.
func CreateCollection(c *gin.Context) {
	var req CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}
	if req.Slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slug is required"})
		return
	}

	var count int64
	if err := database.DB.Model(&works.Collection{}).Where("slug = ?", req.Slug).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check slug"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "A collection with this slug already exists"})
		return
	}

	visible := 1
	if req.IsVisible != nil {
		visible = *req.IsVisible
	}

	collection := works.Collection{
		Title:         req.Title,
		TitleEn:       req.TitleEn,
		Slug:          req.Slug,
		Description:   req.Description,
		DescriptionEn: req.DescriptionEn,
		ImageURL:      req.ImageURL,
		OrderIndex:    req.OrderIndex,
		IsVisible:     visible,
	}

	if err := database.DB.Create(&collection).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "A collection with this slug already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create collection"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"collection": collection})
}

// ------------------------------
// PUT /api/collections/:id
// ------------------------------
func UpdateCollection(c *gin.Context) {
	id, ok := parseID(c, "idOrSlug")
	if !ok {
		return
	}

	var req UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var collection works.Collection
	if err := database.DB.First(&collection, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load collection"})
		return
	}

	if updates := req.changes(); len(updates) > 0 {
		if err := database.DB.Model(&collection).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "A collection with this slug already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update collection"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"collection": collection})
}

// ------------------------------
// DELETE /api/collections/:id
// ------------------------------
func DeleteCollection(c *gin.Context) {
	id, ok := parseID(c, "idOrSlug")
	if !ok {
		return
	}

	var collection works.Collection
	if err := database.DB.First(&collection, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load collection"})
		return
	}

	if err := database.DB.Delete(&collection).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete collection"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"collection": collection})
}
