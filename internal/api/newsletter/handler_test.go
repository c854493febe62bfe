package newsletter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"portfolio-backend/database"
	"portfolio-backend/internal/domain/newsletter"

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
	r.POST("/api/newsletter", Subscribe)
	r.GET("/api/newsletter", ListSubscribers)
	r.DELETE("/api/newsletter/:id", DeleteSubscriber)
	return r
}

func subscribe(t *testing.T, r *gin.Engine, email string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(map[string]string{"email": email})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter", bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "newsletter-test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubscribeValidation(t *testing.T) {
	r := setupRouter(t)

	for _, email := range []string{"", "   ", "not-an-email"} {
		w := subscribe(t, r, email)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %q, got %d", email, w.Code)
		}
	}
}

func TestSubscribeIsIdempotent(t *testing.T) {
	r := setupRouter(t)

	w := subscribe(t, r, "Reader@Example.com")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 on first subscribe, got %d (body %s)", w.Code, w.Body.String())
	}

	var first map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &first); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if first["alreadySubscribed"] != false {
		t.Fatalf("expected alreadySubscribed false, got %v", first["alreadySubscribed"])
	}

	// Same address, different case: no new row.
	w = subscribe(t, r, "reader@example.COM")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on duplicate subscribe, got %d", w.Code)
	}
	var second map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &second); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if second["alreadySubscribed"] != true {
		t.Fatalf("expected alreadySubscribed true, got %v", second["alreadySubscribed"])
	}

	var count int64
	database.DB.Model(&newsletter.Subscriber{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected one subscriber, got %d", count)
	}
}

func TestSubscribeStoresFoldedEmailAndMetadata(t *testing.T) {
	r := setupRouter(t)

	w := subscribe(t, r, "  Reader@Example.com ")
	if w.Code != http.StatusCreated {
		t.Fatalf("subscribe: %d", w.Code)
	}

	var row newsletter.Subscriber
	if err := database.DB.First(&row).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if row.Email != "reader@example.com" {
		t.Fatalf("expected case-folded trimmed email, got %q", row.Email)
	}
	if row.UserAgent != "newsletter-test" {
		t.Fatalf("expected user agent captured, got %q", row.UserAgent)
	}
	if row.SubscribedAt.IsZero() {
		t.Fatalf("expected subscribed_at populated")
	}
}

func TestDeleteSubscriber(t *testing.T) {
	r := setupRouter(t)

	if w := subscribe(t, r, "reader@example.com"); w.Code != http.StatusCreated {
		t.Fatalf("subscribe: %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/newsletter/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/newsletter/1", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", w.Code)
	}
}
