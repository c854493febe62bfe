package works

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"portfolio-backend/database"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db

	r := gin.New()
	r.GET("/api/artworks", ListArtworks)
	r.GET("/api/artworks/:id", GetArtwork)
	r.POST("/api/artworks", CreateArtwork)
	r.PUT("/api/artworks/:id", UpdateArtwork)
	r.DELETE("/api/artworks/:id", DeleteArtwork)

	r.GET("/api/sections", ListSections)
	r.GET("/api/sections/:id", GetSection)
	r.GET("/api/sections/:id/artworks", ListSectionArtworks)
	r.POST("/api/sections", CreateSection)
	r.PUT("/api/sections/:id", UpdateSection)
	r.DELETE("/api/sections/:id", DeleteSection)

	r.GET("/api/collections", ListCollections)
	r.GET("/api/collections/:idOrSlug", GetCollection)
	r.POST("/api/collections", CreateCollection)
	r.PUT("/api/collections/:idOrSlug", UpdateCollection)
	r.DELETE("/api/collections/:idOrSlug", DeleteCollection)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d (body %s)", want, w.Code, w.Body.String())
	}
}
