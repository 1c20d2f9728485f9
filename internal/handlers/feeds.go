// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"richgradstudent/internal/cache"
	"richgradstudent/internal/feeds"
	"richgradstudent/internal/models"
)

// FeedXML handles GET /feed.xml.
func (a *API) FeedXML(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if a.docCache != nil {
		if body, ok := a.docCache.Get(ctx, cache.FeedKey()); ok {
			w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
			w.Write(body)
			return
		}
	}

	posts, err := a.contents.ListPublishedPosts(feeds.MaxFeedItems)
	if err != nil {
		slog.Error("list posts for feed failed", "error", err)
		respondError(w, http.StatusInternalServerError, "feed unavailable")
		return
	}
	a.resolveImageURLs(posts)

	body, err := feeds.BuildRSS(a.siteURL, posts)
	if err != nil {
		slog.Error("build rss failed", "error", err)
		respondError(w, http.StatusInternalServerError, "feed unavailable")
		return
	}

	if a.docCache != nil {
		a.docCache.Set(ctx, cache.FeedKey(), body)
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Write(body)
}

// LLMsTxt handles GET /llms.txt.
func (a *API) LLMsTxt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if a.docCache != nil {
		if body, ok := a.docCache.Get(ctx, cache.LLMsKey()); ok {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Write(body)
			return
		}
	}

	posts, err := a.contents.ListByType(models.ContentTypePost)
	if err != nil {
		slog.Error("list posts failed", "error", err)
		respondError(w, http.StatusInternalServerError, "document unavailable")
		return
	}
	articles, err := a.contents.ListByType(models.ContentTypeArticle)
	if err != nil {
		slog.Error("list articles failed", "error", err)
		respondError(w, http.StatusInternalServerError, "document unavailable")
		return
	}
	cards, err := a.cards.ListWithPrograms()
	if err != nil {
		slog.Error("list cards failed", "error", err)
		respondError(w, http.StatusInternalServerError, "document unavailable")
		return
	}
	programs, err := a.cards.ListPrograms()
	if err != nil {
		slog.Error("list programs failed", "error", err)
		respondError(w, http.StatusInternalServerError, "document unavailable")
		return
	}

	body := feeds.BuildLLMs(a.siteURL, onlyPublished(posts), onlyPublished(articles), cards, programs)

	if a.docCache != nil {
		a.docCache.Set(ctx, cache.LLMsKey(), body)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(body)
}

// resolveImageURL swaps a CMS-hosted image URL for the mirrored bucket URL
// when a mirror exists, so served URLs survive CMS asset churn.
func (a *API) resolveImageURL(c *models.Content) {
	if a.storage == nil || c.ImageKey == nil || *c.ImageKey == "" {
		return
	}
	u := a.storage.FileURL(*c.ImageKey)
	c.ImageURL = &u
}

func (a *API) resolveImageURLs(items []models.Content) {
	for i := range items {
		a.resolveImageURL(&items[i])
	}
}

func onlyPublished(items []models.Content) []models.Content {
	out := items[:0:0]
	for _, c := range items {
		if c.IsPublished() {
			out = append(out, c)
		}
	}
	return out
}
