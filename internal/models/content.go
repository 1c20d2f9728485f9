// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ContentType discriminates the three public content kinds that share the
// unified content table.
type ContentType string

const (
	ContentTypeArticle    ContentType = "article"
	ContentTypePost       ContentType = "post"
	ContentTypeCreditCard ContentType = "creditCard"
)

// Valid reports whether t is one of the three known content types.
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeArticle, ContentTypePost, ContentTypeCreditCard:
		return true
	}
	return false
}

// Content represents a synced CMS document: an article, a blog post, or a
// credit-card review. The three kinds share one table, differentiated by the
// Type field. Card-specific numeric data lives in the credit_cards table.
type Content struct {
	ID      uuid.UUID   `json:"id"`
	Type    ContentType `json:"type"`
	Title   string      `json:"title"`           // articles and posts
	Name    string      `json:"name,omitempty"`  // credit cards
	Slug    string      `json:"slug"`            // unique within its type
	Excerpt *string     `json:"excerpt,omitempty"`
	// Description is the card-review counterpart of Excerpt.
	Description *string `json:"description,omitempty"`
	// ImageURL is the CMS-hosted image; ImageKey is set once the image has
	// been mirrored into our own bucket (stable URLs for feeds and email).
	ImageURL *string `json:"image_url,omitempty"`
	ImageKey *string `json:"image_key,omitempty"`

	Categories []string    `json:"categories,omitempty"`
	TagIDs     []uuid.UUID `json:"tag_ids,omitempty"`
	// ManualRecommendationIDs is the editor-curated "see also" list. Order
	// matters: position one is featured first.
	ManualRecommendationIDs []uuid.UUID `json:"manual_recommendation_ids,omitempty"`
	// PointsProgramID is set for credit cards enrolled in a loyalty program.
	PointsProgramID *uuid.UUID `json:"points_program_id,omitempty"`

	AuthorName      *string    `json:"author_name,omitempty"`
	MetaDescription *string    `json:"meta_description,omitempty"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// DisplayTitle returns the human-facing label for the item regardless of
// type: credit cards are named, articles and posts are titled. Callers must
// use this instead of poking at Title/Name directly.
func (c *Content) DisplayTitle() string {
	if c.Type == ContentTypeCreditCard && c.Name != "" {
		return c.Name
	}
	return c.Title
}

// Summary returns the short text for the item: Excerpt for articles and
// posts, Description for credit cards. Empty string when neither is set.
func (c *Content) Summary() string {
	if c.Type == ContentTypeCreditCard && c.Description != nil {
		return *c.Description
	}
	if c.Excerpt != nil {
		return *c.Excerpt
	}
	return ""
}

// Path returns the site-relative URL path for the item. Posts live at the
// root, articles and cards under their section prefix. Routing depends on
// slugs being unique per type.
func (c *Content) Path() string {
	switch c.Type {
	case ContentTypeArticle:
		return "/articles/" + c.Slug
	case ContentTypeCreditCard:
		return "/credit-cards/" + c.Slug
	default:
		return "/" + c.Slug
	}
}

// IsPublished reports whether the item has a publish date in the past.
func (c *Content) IsPublished() bool {
	return c.PublishedAt != nil && !c.PublishedAt.After(time.Now())
}
