package media

import (
	"net/http"
	"sort"

	"portfolio-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type mediaEntry struct {
	Filename     string `json:"filename"`
	URL          string `json:"url"`
	ThumbURL     string `json:"thumb_url,omitempty"`
	Size         int64  `json:"size"`
	ContentType  string `json:"content_type,omitempty"`
	LastModified string `json:"last_modified"`
}

// ------------------------------
// GET /api/media
// ------------------------------
//
// Lists originals; a thumbnail sibling shows up as thumb_url on its
// original rather than as an entry of its own.
func ListMedia(c *gin.Context) {
	store, ok := requireStore(c)
	if !ok {
		return
	}

	objects, err := store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list media"})
		return
	}

	thumbs := map[string]bool{}
	for _, obj := range objects {
		if storage.IsThumbKey(obj.Key) {
			thumbs[obj.Key] = true
		}
	}

	entries := make([]mediaEntry, 0, len(objects))
	for _, obj := range objects {
		if storage.IsThumbKey(obj.Key) {
			continue
		}
		entry := mediaEntry{
			Filename:     obj.Key,
			URL:          publicImageURL(obj.Key),
			Size:         obj.Size,
			ContentType:  obj.ContentType,
			LastModified: obj.LastModified.UTC().Format("2006-01-02T15:04:05Z"),
		}
		if thumbs[storage.ThumbKey(obj.Key)] {
			entry.ThumbURL = publicImageURL(storage.ThumbKey(obj.Key))
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Filename < entries[j].Filename })

	c.JSON(http.StatusOK, gin.H{"media": entries})
}

// ------------------------------
// GET /api/storage/stats
// ------------------------------
func StorageStats(c *gin.Context) {
	store, ok := requireStore(c)
	if !ok {
		return
	}

	objects, err := store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list media"})
		return
	}

	var originals, thumbnails int
	var originalBytes, thumbnailBytes int64
	for _, obj := range objects {
		if storage.IsThumbKey(obj.Key) {
			thumbnails++
			thumbnailBytes += obj.Size
		} else {
			originals++
			originalBytes += obj.Size
		}
	}

	c.JSON(http.StatusOK, gin.H{"stats": gin.H{
		"total_objects": len(objects),
		"total_size":    originalBytes + thumbnailBytes,
		"originals":     gin.H{"count": originals, "size": originalBytes},
		"thumbnails":    gin.H{"count": thumbnails, "size": thumbnailBytes},
	}})
}

// ------------------------------
// GET /api/regenerate-thumbnails
// ------------------------------
//
// Reports originals lacking a thumbnail sibling. Generation itself happens
// out of process.
func MissingThumbnails(c *gin.Context) {
	store, ok := requireStore(c)
	if !ok {
		return
	}

	objects, err := store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list media"})
		return
	}

	present := map[string]bool{}
	for _, obj := range objects {
		present[obj.Key] = true
	}

	missing := []string{}
	for _, obj := range objects {
		if storage.IsThumbKey(obj.Key) {
			continue
		}
		if !present[storage.ThumbKey(obj.Key)] {
			missing = append(missing, obj.Key)
		}
	}
	sort.Strings(missing)

	c.JSON(http.StatusOK, gin.H{"missing": missing, "count": len(missing)})
}
