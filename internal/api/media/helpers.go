package media

import (
	"mime"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"

	"portfolio-backend/config"
	"portfolio-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Blob keys are bare filenames: word characters, dashes and dots, no paths.
var filenamePattern = regexp.MustCompile(`^[\w-][\w.-]*$`)

// requireStore answers 503 when object storage is not configured.
func requireStore(c *gin.Context) (storage.ObjectStore, bool) {
	if storage.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage not configured"})
		return nil, false
	}
	return storage.Store, true
}

// requireFilename validates the :filename path segment. A segment outside
// the key character class means the route shape did not match.
func requireFilename(c *gin.Context) (string, bool) {
	name := c.Param("filename")
	if !filenamePattern.MatchString(name) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return "", false
	}
	return name, true
}

// sanitizeFilename strips any path component and maps the rest onto the
// blob-key character class.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "-")
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r == '.':
			b.WriteRune(r)
		}
	}
	out := strings.Trim(b.String(), ".")
	return out
}

func publicImageURL(key string) string {
	return config.PUBLIC_URL + "/images/" + key
}

// escapeLike neutralizes LIKE metacharacters so a filename such as
// img_001.webp matches only itself. Pair with ESCAPE '\' in the query.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

func contentTypeFor(header string, filename string) string {
	if header != "" {
		return header
	}
	if byExt := mime.TypeByExtension(filepath.Ext(filename)); byExt != "" {
		return byExt
	}
	return "application/octet-stream"
}
