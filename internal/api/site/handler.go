package site

import (
	"errors"
	"net/http"
	"regexp"

	"portfolio-backend/database"
	"portfolio-backend/internal/domain/site"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var keyPattern = regexp.MustCompile(`^[\w-]+$`)

type UpsertContentRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	ImageURL *string `json:"image_url"`
}

// ------------------------------
// GET /api/content
// ------------------------------
func ListContentBlocks(c *gin.Context) {
	var blocks []site.ContentBlock
	if err := database.DB.Order("key ASC").Find(&blocks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load content"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": blocks})
}

// ------------------------------
// GET /api/content/:key
// ------------------------------
func GetContentBlock(c *gin.Context) {
	key := c.Param("key")
	if !keyPattern.MatchString(key) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	var block site.ContentBlock
	if err := database.DB.First(&block, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": block})
}

// ------------------------------
// PUT /api/content/:key
// ------------------------------
//
// Upsert: a missing block is created, an existing one coalesced.
func UpsertContentBlock(c *gin.Context) {
	key := c.Param("key")
	if !keyPattern.MatchString(key) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	var req UpsertContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var block site.ContentBlock
	err := database.DB.First(&block, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		block = site.ContentBlock{Key: key}
		if req.Title != nil {
			block.Title = *req.Title
		}
		if req.Content != nil {
			block.Content = *req.Content
		}
		if req.ImageURL != nil {
			block.ImageURL = *req.ImageURL
		}
		if err := database.DB.Create(&block).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create content"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"content": block})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load content"})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&block).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update content"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"content": block})
}
