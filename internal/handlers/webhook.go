// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"time"

	"github.com/google/uuid"

	"richgradstudent/internal/models"
	"richgradstudent/internal/slug"
)

// syncRequest is the CMS webhook payload. Upserts carry the full document;
// deletes carry just the id.
type syncRequest struct {
	Action  string             `json:"action"` // "upsert" or "delete"
	Content *models.Content    `json:"content,omitempty"`
	Card    *models.CreditCard `json:"card,omitempty"`
	ID      *uuid.UUID         `json:"id,omitempty"`
}

// maxWebhookBody caps the sync payload size.
const maxWebhookBody = 1 << 20

// ContentSync handles POST /api/webhooks/content. The CMS calls it on every
// publish, update, and delete; this service mirrors the document into
// Postgres, mirrors the image into our bucket, reindexes search, and drops
// the derived-document caches.
func (a *API) ContentSync(w http.ResponseWriter, r *http.Request) {
	var req syncRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxWebhookBody)).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch req.Action {
	case "upsert":
		a.syncUpsert(w, r, &req)
	case "delete":
		a.syncDelete(w, r, &req)
	default:
		respondError(w, http.StatusBadRequest, "unknown action")
	}
}

func (a *API) syncUpsert(w http.ResponseWriter, r *http.Request, req *syncRequest) {
	c := req.Content
	if errMsg := validateSyncContent(c); errMsg != "" {
		respondError(w, http.StatusBadRequest, errMsg)
		return
	}

	// Normalize the slug unless the CMS sent a clean one.
	if !slug.Valid(c.Slug) {
		c.Slug = slug.Generate(c.Slug)
		if c.Slug == "" {
			c.Slug = slug.Generate(c.DisplayTitle())
		}
	}

	saved, err := a.contents.Upsert(c)
	if err != nil {
		slog.Error("content upsert failed", "slug", c.Slug, "error", err)
		respondError(w, http.StatusInternalServerError, "upsert failed")
		return
	}

	if req.Card != nil && saved.Type == models.ContentTypeCreditCard {
		req.Card.ContentID = saved.ID
		req.Card.Name = saved.DisplayTitle()
		req.Card.Slug = saved.Slug
		if err := a.cards.UpsertCard(req.Card); err != nil {
			slog.Error("card upsert failed", "slug", saved.Slug, "error", err)
			respondError(w, http.StatusInternalServerError, "upsert failed")
			return
		}
	}

	a.mirrorImage(r.Context(), saved)

	if err := a.search.IndexContent(saved); err != nil {
		slog.Warn("search reindex failed", "id", saved.ID, "error", err)
	}
	if a.docCache != nil {
		a.docCache.InvalidateAll(r.Context())
	}

	slog.Info("content synced", "id", saved.ID, "type", saved.Type, "slug", saved.Slug)
	respondJSON(w, http.StatusOK, map[string]any{"id": saved.ID, "slug": saved.Slug})
}

func (a *API) syncDelete(w http.ResponseWriter, r *http.Request, req *syncRequest) {
	if req.ID == nil || *req.ID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "missing id")
		return
	}

	// Look up the row first so a mirrored image can be removed with it.
	existing, err := a.contents.FindByID(*req.ID)
	if err != nil {
		slog.Warn("content lookup before delete failed", "id", *req.ID, "error", err)
	}

	if err := a.contents.Delete(*req.ID); err != nil {
		slog.Error("content delete failed", "id", *req.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "delete failed")
		return
	}

	if a.storage != nil && existing != nil && existing.ImageKey != nil && *existing.ImageKey != "" {
		if err := a.storage.Delete(r.Context(), *existing.ImageKey); err != nil {
			slog.Warn("mirrored image delete failed", "key", *existing.ImageKey, "error", err)
		}
	}

	if err := a.search.Delete(req.ID.String()); err != nil {
		slog.Warn("search delete failed", "id", *req.ID, "error", err)
	}
	if a.docCache != nil {
		a.docCache.InvalidateAll(r.Context())
	}

	slog.Info("content deleted", "id", *req.ID)
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// mirrorImage copies the CMS-hosted image into our own bucket so feed and
// email URLs survive CMS asset churn. Failures only log; the document is
// already synced.
func (a *API) mirrorImage(ctx context.Context, c *models.Content) {
	if a.storage == nil || c.ImageURL == nil || *c.ImageURL == "" {
		return
	}
	if c.ImageKey != nil && *c.ImageKey != "" {
		return // already mirrored
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, *c.ImageURL, nil)
	if err != nil {
		slog.Warn("image mirror request failed", "url", *c.ImageURL, "error", err)
		return
	}
	resp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		slog.Warn("image fetch failed", "url", *c.ImageURL, "error", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		slog.Warn("image fetch bad status", "url", *c.ImageURL, "status", resp.StatusCode)
		return
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 20<<20))
	if err != nil {
		slog.Warn("image read failed", "url", *c.ImageURL, "error", err)
		return
	}

	ext := path.Ext(*c.ImageURL)
	if ext == "" || len(ext) > 5 {
		ext = ".img"
	}
	key := fmt.Sprintf("content/%s%s", c.ID, ext)

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := a.storage.Upload(ctx, key, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		slog.Warn("image upload failed", "key", key, "error", err)
		return
	}
	if err := a.contents.SetImageKey(c.ID, key); err != nil {
		slog.Warn("image key update failed", "id", c.ID, "error", err)
		return
	}

	slog.Info("image mirrored", "id", c.ID, "key", key)
}

// validateSyncContent checks the upsert payload and returns the first
// problem found, empty string when valid.
func validateSyncContent(c *models.Content) string {
	if c == nil {
		return "missing content"
	}
	if !c.Type.Valid() {
		return "unknown content type"
	}
	if c.DisplayTitle() == "" {
		return "title is required"
	}
	return validateContentFields(c)
}
