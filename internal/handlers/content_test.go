// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"richgradstudent/internal/models"
)

// getWithParams invokes a handler with chi URL parameters injected.
func getWithParams(handler http.HandlerFunc, params map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestGetContentUnknownType(t *testing.T) {
	api := searchOnlyAPI(t)

	rr := getWithParams(api.GetContent, map[string]string{"type": "video", "slug": "anything"})
	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rr.Code)
	}
}

func TestGetContentBySlug(t *testing.T) {
	api, _ := newTestAPI(t)
	now := time.Now().UTC()

	if _, err := api.contents.Upsert(&models.Content{
		Type:        models.ContentTypeArticle,
		Title:       "Slug Lookup Guide",
		Slug:        "hndl-slug-lookup",
		PublishedAt: &now,
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rr := getWithParams(api.GetContent, map[string]string{"type": "article", "slug": "hndl-slug-lookup"})
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d: %s", rr.Code, rr.Body.String())
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Slug Lookup Guide") {
		t.Error("response missing the document title")
	}
	if !strings.Contains(body, `"path":"/articles/hndl-slug-lookup"`) {
		t.Errorf("response missing the site path: %s", body)
	}

	rr = getWithParams(api.GetContent, map[string]string{"type": "article", "slug": "hndl-no-such-slug"})
	if rr.Code != http.StatusNotFound {
		t.Errorf("missing slug status: got %d, want 404", rr.Code)
	}
}

func TestGetContentHidesDrafts(t *testing.T) {
	api, _ := newTestAPI(t)

	if _, err := api.contents.Upsert(&models.Content{
		Type:  models.ContentTypeArticle,
		Title: "Draft Guide",
		Slug:  "hndl-draft-guide",
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rr := getWithParams(api.GetContent, map[string]string{"type": "article", "slug": "hndl-draft-guide"})
	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404 for a draft", rr.Code)
	}
}

func TestGetProgram(t *testing.T) {
	api, db := newTestAPI(t)

	slug := "hndl-program-" + uuid.NewString()[:8]
	t.Cleanup(func() {
		db.Exec("DELETE FROM points_programs WHERE slug = $1", slug)
	})
	if _, err := db.Exec(`
		INSERT INTO points_programs (name, slug, base_value, best_redemption, display_order)
		VALUES ('Handler Test Rewards', $1, 1.6, 3.5, 99)
	`, slug); err != nil {
		t.Fatalf("insert program: %v", err)
	}

	rr := getWithParams(api.GetProgram, map[string]string{"slug": slug})
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d: %s", rr.Code, rr.Body.String())
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Handler Test Rewards") || !strings.Contains(body, `"base_value":1.6`) {
		t.Errorf("unexpected program body: %s", body)
	}

	rr = getWithParams(api.GetProgram, map[string]string{"slug": "hndl-missing-program"})
	if rr.Code != http.StatusNotFound {
		t.Errorf("missing program status: got %d, want 404", rr.Code)
	}
}
