// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"richgradstudent/internal/models"
)

// contentResponse is a content document plus its site-relative path, which
// the frontend needs but the model does not store.
type contentResponse struct {
	models.Content
	Path string `json:"path"`
}

// GetContent handles GET /api/content/{type}/{slug}. Only published
// documents are served; drafts 404 like unknown slugs so their existence
// is not observable.
func (a *API) GetContent(w http.ResponseWriter, r *http.Request) {
	contentType := models.ContentType(chi.URLParam(r, "type"))
	if !contentType.Valid() {
		respondError(w, http.StatusNotFound, "content not found")
		return
	}

	c, err := a.contents.FindBySlug(contentType, chi.URLParam(r, "slug"))
	if err != nil {
		slog.Error("find content by slug failed", "type", contentType, "error", err)
		respondError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if c == nil || !c.IsPublished() {
		respondError(w, http.StatusNotFound, "content not found")
		return
	}

	a.resolveImageURL(c)
	respondJSON(w, http.StatusOK, contentResponse{Content: *c, Path: c.Path()})
}

// GetProgram handles GET /api/programs/{slug}, serving a loyalty program
// with its valuations.
func (a *API) GetProgram(w http.ResponseWriter, r *http.Request) {
	p, err := a.cards.FindProgramBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		slog.Error("find program by slug failed", "error", err)
		respondError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "program not found")
		return
	}

	respondJSON(w, http.StatusOK, p)
}
