// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"richgradstudent/internal/cache"
	"richgradstudent/internal/models"
	"richgradstudent/internal/recommend"
)

// recommendationItem is the trimmed shape the frontend renders in the
// "recommended reading" rail.
type recommendationItem struct {
	ID       uuid.UUID          `json:"id"`
	Type     models.ContentType `json:"type"`
	Title    string             `json:"title"`
	Slug     string             `json:"slug"`
	Path     string             `json:"path"`
	Summary  string             `json:"summary,omitempty"`
	ImageURL *string            `json:"image_url,omitempty"`
}

// Recommendations handles GET /api/recommendations?id=. The optional type
// parameter cross-checks the stored document. Results are cached per
// document; the whole cache is dropped on content sync.
func (a *API) Recommendations(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid or missing id")
		return
	}

	if a.docCache != nil {
		if body, ok := a.docCache.Get(r.Context(), cache.RecommendationsKey(id.String())); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(body)
			return
		}
	}

	current, err := a.contents.FindByID(id)
	if err != nil {
		slog.Error("find content failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if current == nil {
		respondError(w, http.StatusNotFound, "content not found")
		return
	}
	if typ := r.URL.Query().Get("type"); typ != "" && models.ContentType(typ) != current.Type {
		respondError(w, http.StatusNotFound, "content not found")
		return
	}

	recs := a.engine.Recommend(recommend.Params{
		CurrentID:       current.ID,
		CurrentType:     current.Type,
		Categories:      current.Categories,
		TagIDs:          current.TagIDs,
		PointsProgramID: current.PointsProgramID,
		ManualPicks:     current.ManualRecommendationIDs,
	})

	items := make([]recommendationItem, 0, len(recs))
	for i := range recs {
		c := &recs[i]
		items = append(items, recommendationItem{
			ID:       c.ID,
			Type:     c.Type,
			Title:    c.DisplayTitle(),
			Slug:     c.Slug,
			Path:     c.Path(),
			Summary:  c.Summary(),
			ImageURL: c.ImageURL,
		})
	}
	resp := map[string]any{"recommendations": items}

	if a.docCache != nil {
		if body, err := json.Marshal(resp); err == nil {
			a.docCache.Set(r.Context(), cache.RecommendationsKey(id.String()), body)
		}
	}

	respondJSON(w, http.StatusOK, resp)
}
