package exhibitions

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"portfolio-backend/database"
	"portfolio-backend/internal/domain/exhibitions"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return 0, false
	}
	return uint(id), true
}

// ------------------------------
// GET /api/exhibitions
// ------------------------------
func ListExhibitions(c *gin.Context) {
	q := database.DB.Model(&exhibitions.Exhibition{})
	if c.Query("all") != "true" {
		q = q.Where("is_visible = ?", 1)
	}

	var rows []exhibitions.Exhibition
	if err := q.Order("order_index ASC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load exhibitions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"exhibitions": rows})
}

// ------------------------------
// GET /api/exhibitions/:idOrSlug
// ------------------------------
func GetExhibition(c *gin.Context) {
	raw := c.Param("idOrSlug")

	var exhibition exhibitions.Exhibition
	var err error
	if id, convErr := strconv.ParseUint(raw, 10, 32); convErr == nil {
		err = database.DB.First(&exhibition, uint(id)).Error
	} else if slugPattern.MatchString(raw) {
		err = database.DB.First(&exhibition, "slug = ?", raw).Error
	} else {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Exhibition not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load exhibition"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"exhibition": exhibition})
}

// ------------------------------
// POST /api/exhibitions
// ------------------------------
func CreateExhibition(c *gin.Context) {
	var req CreateExhibitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for field, value := range map[string]string{
		"Title": req.Title, "Slug": req.Slug, "Location": req.Location, "Date": req.Date,
	} {
		if value == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": field + " is required"})
			return
		}
	}

	visible := 1
	if req.IsVisible != nil {
		visible = *req.IsVisible
	}

	exhibition := exhibitions.Exhibition{
		Title:         req.Title,
		TitleEn:       req.TitleEn,
		Subtitle:      req.Subtitle,
		Location:      req.Location,
		Date:          req.Date,
		Description:   req.Description,
		DescriptionEn: req.DescriptionEn,
		Info:          req.Info,
		InfoEn:        req.InfoEn,
		Website:       req.Website,
		ImageURL:      req.ImageURL,
		Slug:          req.Slug,
		OrderIndex:    req.OrderIndex,
		IsVisible:     visible,
	}

	if err := database.DB.Create(&exhibition).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create exhibition"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"exhibition": exhibition})
}

// ------------------------------
// PUT /api/exhibitions/:id
// ------------------------------
func UpdateExhibition(c *gin.Context) {
	id, ok := parseID(c, "idOrSlug")
	if !ok {
		return
	}

	var req UpdateExhibitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var exhibition exhibitions.Exhibition
	if err := database.DB.First(&exhibition, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Exhibition not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load exhibition"})
		return
	}

	if updates := req.changes(); len(updates) > 0 {
		if err := database.DB.Model(&exhibition).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update exhibition"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"exhibition": exhibition})
}

// ------------------------------
// DELETE /api/exhibitions/:id
// ------------------------------
func DeleteExhibition(c *gin.Context) {
	id, ok := parseID(c, "idOrSlug")
	if !ok {
		return
	}

	var exhibition exhibitions.Exhibition
	if err := database.DB.First(&exhibition, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Exhibition not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load exhibition"})
		return
	}

	if err := database.DB.Delete(&exhibition).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete exhibition"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"exhibition": exhibition})
}
