package works

import (
	"net/http"
	"testing"

	"portfolio-backend/database"
	"portfolio-backend/internal/domain/works"
)

func TestCreateSectionRequiresName(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/sections", map[string]interface{}{"description": "x"})
	wantStatus(t, w, http.StatusBadRequest)
}

func TestSectionCRUD(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/sections", map[string]interface{}{
		"name": "Drawings", "slug": "drawings",
	})
	wantStatus(t, w, http.StatusCreated)

	w = doJSON(t, r, http.MethodGet, "/api/sections/1", nil)
	wantStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodPut, "/api/sections/1", map[string]interface{}{"name": "Works on Paper"})
	wantStatus(t, w, http.StatusOK)
	section := decodeBody(t, w)["section"].(map[string]interface{})
	if section["name"] != "Works on Paper" {
		t.Fatalf("expected renamed section, got %v", section["name"])
	}
	if section["slug"] != "drawings" {
		t.Fatalf("expected slug preserved, got %v", section["slug"])
	}

	w = doJSON(t, r, http.MethodDelete, "/api/sections/1", nil)
	wantStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodGet, "/api/sections/1", nil)
	wantStatus(t, w, http.StatusNotFound)
}

func TestListSectionArtworksIncludesHidden(t *testing.T) {
	r := setupRouter(t)
	section := seedSection(t, "Drawings")
	other := seedSection(t, "Prints")

	rows := []works.Artwork{
		{Title: "in-section", SectionID: &section.ID, IsVisible: 1},
		{Title: "hidden-in-section", SectionID: &section.ID, IsVisible: 0},
		{Title: "elsewhere", SectionID: &other.ID, IsVisible: 1},
	}
	for i := range rows {
		if err := database.DB.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed artwork: %v", err)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/sections/1/artworks", nil)
	wantStatus(t, w, http.StatusOK)

	artworks := decodeBody(t, w)["artworks"].([]interface{})
	if len(artworks) != 2 {
		t.Fatalf("expected both section artworks regardless of visibility, got %d", len(artworks))
	}
}
