package media

import (
	"errors"
	"net/http"

	"portfolio-backend/database"
	"portfolio-backend/internal/domain/exhibitions"
	"portfolio-backend/internal/domain/works"
	"portfolio-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ------------------------------
// GET /images/:filename
// ------------------------------
func ServeImage(c *gin.Context) {
	store, ok := requireStore(c)
	if !ok {
		return
	}
	filename, ok := requireFilename(c)
	if !ok {
		return
	}

	rc, obj, err := store.Get(c.Request.Context(), filename)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load image"})
		return
	}
	defer rc.Close()

	contentType := contentTypeFor(obj.ContentType, filename)
	c.DataFromReader(http.StatusOK, obj.Size, contentType, rc, map[string]string{
		"Cache-Control": "public, max-age=31536000, immutable",
	})
}

type usageRef struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// ------------------------------
// GET /api/images/:filename/usage
// ------------------------------
//
// Three independent reads, one per entity type that can reference an image
// URL. An empty result list is "no usage", not a failure.
func ImageUsage(c *gin.Context) {
	filename, ok := requireFilename(c)
	if !ok {
		return
	}
	// Match the stored URL either exactly or at a path boundary, so
	// venice.jpg does not count rows referencing myvenice.jpg.
	match := `image_url = ? OR image_url LIKE ? ESCAPE '\'`
	needle := `%/` + escapeLike(filename)

	var artworkRefs []usageRef
	err := database.DB.Model(&works.Artwork{}).
		Select("id, title").
		Where(match, filename, needle).
		Scan(&artworkRefs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up usage"})
		return
	}

	var collectionRefs []usageRef
	err = database.DB.Model(&works.Collection{}).
		Select("id, title").
		Where(match, filename, needle).
		Scan(&collectionRefs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up usage"})
		return
	}

	var exhibitionRefs []usageRef
	err = database.DB.Model(&exhibitions.Exhibition{}).
		Select("id, title").
		Where(match, filename, needle).
		Scan(&exhibitionRefs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up usage"})
		return
	}

	if artworkRefs == nil {
		artworkRefs = []usageRef{}
	}
	if collectionRefs == nil {
		collectionRefs = []usageRef{}
	}
	if exhibitionRefs == nil {
		exhibitionRefs = []usageRef{}
	}

	c.JSON(http.StatusOK, gin.H{"usage": gin.H{
		"artworks":    artworkRefs,
		"collections": collectionRefs,
		"exhibitions": exhibitionRefs,
		"total":       len(artworkRefs) + len(collectionRefs) + len(exhibitionRefs),
	}})
}

// ------------------------------
// DELETE /api/images/:filename
// ------------------------------
//
// Also removes the conventional thumbnail sibling, whether or not one
// exists; deleting a missing key is a no-op success.
func DeleteImage(c *gin.Context) {
	store, ok := requireStore(c)
	if !ok {
		return
	}
	filename, ok := requireFilename(c)
	if !ok {
		return
	}

	if err := store.Delete(c.Request.Context(), filename); err != nil {
		logrus.WithError(err).WithField("filename", filename).Error("image delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}

	thumb := storage.ThumbKey(filename)
	if err := store.Delete(c.Request.Context(), thumb); err != nil {
		logrus.WithError(err).WithField("filename", thumb).Error("thumbnail delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete thumbnail"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image deleted", "filename": filename, "thumbnail": thumb})
}
