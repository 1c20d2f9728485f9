// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the public JSON API: search, recommendations,
// the spending calculator, the newsletter list, the derived documents
// (feed.xml, llms.txt), and the CMS content-sync webhook.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"richgradstudent/internal/cache"
	"richgradstudent/internal/recommend"
	"richgradstudent/internal/search"
	"richgradstudent/internal/storage"
	"richgradstudent/internal/store"
)

// API groups the public handlers and their dependencies.
type API struct {
	contents    *store.ContentStore
	cards       *store.CardStore
	subscribers *store.SubscriberStore
	engine      *recommend.Engine
	search      *search.Index
	docCache    *cache.DocCache // nil when Valkey is not configured
	storage     *storage.Client // nil when S3 is not configured
	siteURL     string
}

// NewAPI creates the handler group. docCache and storageClient may be nil;
// the affected handlers degrade gracefully.
func NewAPI(contents *store.ContentStore, cards *store.CardStore, subscribers *store.SubscriberStore, engine *recommend.Engine, searchIndex *search.Index, docCache *cache.DocCache, storageClient *storage.Client, siteURL string) *API {
	return &API{
		contents:    contents,
		cards:       cards,
		subscribers: subscribers,
		engine:      engine,
		search:      searchIndex,
		docCache:    docCache,
		storage:     storageClient,
		siteURL:     siteURL,
	}
}

// Health reports service liveness.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// respondError writes a JSON error body with the given status.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
