// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"richgradstudent/internal/models"
	"richgradstudent/internal/search"
)

// maxResultsPerGroup caps each content-type group in a search response.
const maxResultsPerGroup = 10

// searchResponse groups hits by content type the way the site renders them.
type searchResponse struct {
	Query       string          `json:"query"`
	Articles    []search.Result `json:"articles"`
	Posts       []search.Result `json:"posts"`
	CreditCards []search.Result `json:"credit_cards"`
}

// Search handles GET /api/search?q=. Results come back grouped by type,
// at most maxResultsPerGroup per group, best score first within each.
func (a *API) Search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		respondError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}

	// Fetch enough hits to fill all three groups.
	hits, err := a.search.Search(q, 3*maxResultsPerGroup)
	if err != nil {
		slog.Error("search failed", "query", q, "error", err)
		respondError(w, http.StatusInternalServerError, "search failed")
		return
	}

	resp := searchResponse{
		Query:       q,
		Articles:    []search.Result{},
		Posts:       []search.Result{},
		CreditCards: []search.Result{},
	}
	for _, hit := range hits {
		switch hit.Type {
		case models.ContentTypeArticle:
			if len(resp.Articles) < maxResultsPerGroup {
				resp.Articles = append(resp.Articles, hit)
			}
		case models.ContentTypePost:
			if len(resp.Posts) < maxResultsPerGroup {
				resp.Posts = append(resp.Posts, hit)
			}
		case models.ContentTypeCreditCard:
			if len(resp.CreditCards) < maxResultsPerGroup {
				resp.CreditCards = append(resp.CreditCards, hit)
			}
		}
	}

	respondJSON(w, http.StatusOK, resp)
}
