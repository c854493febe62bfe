package press

import (
	"errors"
	"net/http"
	"strconv"

	"portfolio-backend/database"
	"portfolio-backend/internal/domain/press"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateCriticRequest struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	RoleEn     string `json:"role_en"`
	Text       string `json:"text"`
	TextEn     string `json:"text_en"`
	OrderIndex int    `json:"order_index"`
	IsVisible  *int   `json:"is_visible"`
}

type UpdateCriticRequest struct {
	Name       *string `json:"name"`
	Role       *string `json:"role"`
	RoleEn     *string `json:"role_en"`
	Text       *string `json:"text"`
	TextEn     *string `json:"text_en"`
	OrderIndex *int    `json:"order_index"`
	IsVisible  *int    `json:"is_visible"`
}

func (r UpdateCriticRequest) changes() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Role != nil {
		updates["role"] = *r.Role
	}
	if r.RoleEn != nil {
		updates["role_en"] = *r.RoleEn
	}
	if r.Text != nil {
		updates["text"] = *r.Text
	}
	if r.TextEn != nil {
		updates["text_en"] = *r.TextEn
	}
	if r.OrderIndex != nil {
		updates["order_index"] = *r.OrderIndex
	}
	if r.IsVisible != nil {
		updates["is_visible"] = *r.IsVisible
	}
	return updates
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return 0, false
	}
	return uint(id), true
}

// ------------------------------
// GET /api/critics
// ------------------------------
func ListCritics(c *gin.Context) {
	q := database.DB.Model(&press.Critic{})
	if c.Query("all") != "true" {
		q = q.Where("is_visible = ?", 1)
	}

	var critics []press.Critic
	if err := q.Order("order_index ASC").Find(&critics).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load critics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"critics": critics})
}

// ------------------------------
// GET /api/critics/:id
// ------------------------------
func GetCritic(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var critic press.Critic
	if err := database.DB.First(&critic, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Critic not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load critic"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"critic": critic})
}

// ------------------------------
// POST /api/critics
// ------------------------------
func CreateCritic(c *gin.Context) {
	var req CreateCriticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}
	if req.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role is required"})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
		return
	}

	visible := 1
	if req.IsVisible != nil {
		visible = *req.IsVisible
	}

	critic := press.Critic{
		Name:       req.Name,
		Role:       req.Role,
		RoleEn:     req.RoleEn,
		Text:       req.Text,
		TextEn:     req.TextEn,
		OrderIndex: req.OrderIndex,
		IsVisible:  visible,
	}

	if err := database.DB.Create(&critic).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create critic"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"critic": critic})
}

// ------------------------------
// PUT /api/critics/:id
// ------------------------------
func UpdateCritic(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateCriticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var critic press.Critic
	if err := database.DB.First(&critic, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Critic not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load critic"})
		return
	}

	if updates := req.changes(); len(updates) > 0 {
		if err := database.DB.Model(&critic).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update critic"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"critic": critic})
}

// ------------------------------
// DELETE /api/critics/:id
// ------------------------------
func DeleteCritic(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var critic press.Critic
	if err := database.DB.First(&critic, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Critic not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load critic"})
		return
	}

	if err := database.DB.Delete(&critic).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete critic"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"critic": critic})
}
