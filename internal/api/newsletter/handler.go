package newsletter

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"portfolio-backend/database"
	"portfolio-backend/internal/domain/newsletter"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SubscribeRequest struct {
	Email string `json:"email"`
}

// ------------------------------
// POST /api/newsletter
// ------------------------------
//
// Idempotent: a duplicate email (case-folded) answers 200 with
// alreadySubscribed and writes nothing.
func Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A valid email is required"})
		return
	}

	var existing newsletter.Subscriber
	err := database.DB.First(&existing, "email = ?", email).Error
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"subscriber": existing, "alreadySubscribed": true})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check subscription"})
		return
	}

	subscriber := newsletter.Subscriber{
		Email:     email,
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}

	if err := database.DB.Create(&subscriber).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusOK, gin.H{"subscriber": subscriber, "alreadySubscribed": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"subscriber": subscriber, "alreadySubscribed": false})
}

// ------------------------------
// GET /api/newsletter
// ------------------------------
func ListSubscribers(c *gin.Context) {
	var subscribers []newsletter.Subscriber
	if err := database.DB.Order("subscribed_at DESC").Find(&subscribers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscribers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribers": subscribers})
}

// ------------------------------
// DELETE /api/newsletter/:id
// ------------------------------
func DeleteSubscriber(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	var subscriber newsletter.Subscriber
	if err := database.DB.First(&subscriber, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscriber not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscriber"})
		return
	}

	if err := database.DB.Delete(&subscriber).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subscriber"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscriber": subscriber})
}
