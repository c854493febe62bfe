package media

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Uploads above this size are rejected before touching the store.
const maxUploadBytes = 25 << 20

// ------------------------------
// POST /api/upload
// ------------------------------
//
// Multipart upload into the blob store. The part may be named "image" or
// "file". No resizing happens here; thumbnails are externally produced
// siblings.
func Upload(c *gin.Context) {
	store, ok := requireStore(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		file, header, err = c.Request.FormFile("file")
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	if header.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	filename := sanitizeFilename(header.Filename)
	if filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filename"})
		return
	}

	contentType := contentTypeFor(header.Header.Get("Content-Type"), filename)

	if err := store.Put(c.Request.Context(), filename, file, header.Size, contentType); err != nil {
		logrus.WithError(err).Error("upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"image": gin.H{
		"filename":     filename,
		"url":          publicImageURL(filename),
		"size":         header.Size,
		"content_type": contentType,
	}})
}
