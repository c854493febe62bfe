package works

import (
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// parseID reads a numeric id path segment. A non-numeric segment means the
// route shape itself did not match, so the answer is a plain "Not found".
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return 0, false
	}
	return uint(id), true
}
