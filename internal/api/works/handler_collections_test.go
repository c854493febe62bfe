package works

import (
	"net/http"
	"testing"

	"portfolio-backend/database"
	"portfolio-backend/internal/domain/works"
)

func TestCreateCollectionValidation(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/collections", map[string]interface{}{"slug": "x"})
	wantStatus(t, w, http.StatusBadRequest)

	w = doJSON(t, r, http.MethodPost, "/api/collections", map[string]interface{}{"title": "X"})
	wantStatus(t, w, http.StatusBadRequest)
}

func TestCreateCollectionDuplicateSlugConflicts(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/collections", map[string]interface{}{
		"title": "Early Works", "slug": "early-works",
	})
	wantStatus(t, w, http.StatusCreated)

	w = doJSON(t, r, http.MethodPost, "/api/collections", map[string]interface{}{
		"title": "Different Title", "slug": "early-works",
	})
	wantStatus(t, w, http.StatusConflict)

	var count int64
	database.DB.Model(&works.Collection{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected a single row after conflict, got %d", count)
	}
}

func TestCreateCollectionPersistsHiddenRow(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/collections", map[string]interface{}{
		"title": "Drafts", "slug": "drafts", "is_visible": 0,
	})
	wantStatus(t, w, http.StatusCreated)

	var reloaded works.Collection
	if err := database.DB.Where("slug = ?", "drafts").First(&reloaded).Error; err != nil {
		t.Fatalf("reload collection: %v", err)
	}
	if reloaded.IsVisible != 0 {
		t.Fatalf("expected is_visible=0 persisted, got %d", reloaded.IsVisible)
	}
}

func TestGetCollectionByIDAndSlug(t *testing.T) {
	r := setupRouter(t)
	seedCollection(t, "early-works")

	w := doJSON(t, r, http.MethodGet, "/api/collections/1", nil)
	wantStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodGet, "/api/collections/early-works", nil)
	wantStatus(t, w, http.StatusOK)
	collection := decodeBody(t, w)["collection"].(map[string]interface{})
	if collection["slug"] != "early-works" {
		t.Fatalf("expected slug lookup, got %v", collection["slug"])
	}

	w = doJSON(t, r, http.MethodGet, "/api/collections/no-such-slug", nil)
	wantStatus(t, w, http.StatusNotFound)
}

func TestListCollectionsHidesInvisibleByDefault(t *testing.T) {
	r := setupRouter(t)

	visible := works.Collection{Title: "Visible", Slug: "visible", IsVisible: 1}
	hidden := works.Collection{Title: "Hidden", Slug: "hidden", IsVisible: 0}
	for _, row := range []*works.Collection{&visible, &hidden} {
		if err := database.DB.Create(row).Error; err != nil {
			t.Fatalf("seed collection: %v", err)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/collections", nil)
	wantStatus(t, w, http.StatusOK)
	if got := len(decodeBody(t, w)["collections"].([]interface{})); got != 1 {
		t.Fatalf("expected hidden collection filtered, got %d rows", got)
	}

	w = doJSON(t, r, http.MethodGet, "/api/collections?all=true", nil)
	wantStatus(t, w, http.StatusOK)
	if got := len(decodeBody(t, w)["collections"].([]interface{})); got != 2 {
		t.Fatalf("expected all collections with ?all=true, got %d rows", got)
	}
}

func TestUpdateCollectionPreservesOmittedFields(t *testing.T) {
	r := setupRouter(t)

	collection := works.Collection{Title: "Old", Slug: "old", Description: "Old desc", IsVisible: 1}
	if err := database.DB.Create(&collection).Error; err != nil {
		t.Fatalf("seed collection: %v", err)
	}

	w := doJSON(t, r, http.MethodPut, "/api/collections/1", map[string]interface{}{"title": "New"})
	wantStatus(t, w, http.StatusOK)

	updated := decodeBody(t, w)["collection"].(map[string]interface{})
	if updated["title"] != "New" {
		t.Fatalf("expected title overwritten, got %v", updated["title"])
	}
	if updated["description"] != "Old desc" {
		t.Fatalf("expected description preserved, got %v", updated["description"])
	}
}

func TestUpdateCollectionSlugConflict(t *testing.T) {
	r := setupRouter(t)
	seedCollection(t, "first")
	seedCollection(t, "second")

	w := doJSON(t, r, http.MethodPut, "/api/collections/2", map[string]interface{}{"slug": "first"})
	wantStatus(t, w, http.StatusConflict)
}

func TestDeleteCollection(t *testing.T) {
	r := setupRouter(t)
	seedCollection(t, "doomed")

	w := doJSON(t, r, http.MethodDelete, "/api/collections/1", nil)
	wantStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodDelete, "/api/collections/1", nil)
	wantStatus(t, w, http.StatusNotFound)
}
