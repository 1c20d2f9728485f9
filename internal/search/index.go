// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package search provides full-text site search over content items using a
// bleve index. The index is derived data: it can always be rebuilt from the
// content table.
package search

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"richgradstudent/internal/models"
)

// Index wraps a bleve search index over content items.
type Index struct {
	index bleve.Index
}

// doc is the indexed shape of a content item.
type doc struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Meta    string `json:"meta"`
	Slug    string `json:"slug"`
}

// Open opens the bleve index at path, creating it if it does not exist.
func Open(path string) (*Index, error) {
	idx, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		idx, err = bleve.New(path, buildIndexMapping())
		if err != nil {
			return nil, fmt.Errorf("create search index: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("open search index: %w", err)
	}
	return &Index{index: idx}, nil
}

// OpenMemory creates an in-memory index. Used in tests.
func OpenMemory() (*Index, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create in-memory search index: %w", err)
	}
	return &Index{index: idx}, nil
}

// buildIndexMapping gives titles an English analyzer for stemming and keeps
// type/slug as plain stored fields.
func buildIndexMapping() mapping.IndexMapping {
	titleMapping := bleve.NewTextFieldMapping()
	titleMapping.Analyzer = "en"

	textMapping := bleve.NewTextFieldMapping()

	keywordMapping := bleve.NewTextFieldMapping()
	keywordMapping.Index = false

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("title", titleMapping)
	docMapping.AddFieldMappingsAt("summary", textMapping)
	docMapping.AddFieldMappingsAt("meta", textMapping)
	docMapping.AddFieldMappingsAt("type", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("slug", keywordMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", docMapping)
	return indexMapping
}

// Close closes the underlying index.
func (i *Index) Close() error {
	return i.index.Close()
}

// IndexContent adds or updates one content item in the index.
func (i *Index) IndexContent(c *models.Content) error {
	meta := ""
	if c.MetaDescription != nil {
		meta = *c.MetaDescription
	}
	d := doc{
		Type:    string(c.Type),
		Title:   c.DisplayTitle(),
		Summary: c.Summary(),
		Meta:    meta,
		Slug:    c.Slug,
	}
	if err := i.index.Index(c.ID.String(), d); err != nil {
		return fmt.Errorf("index content %s: %w", c.ID, err)
	}
	return nil
}

// IndexAll bulk-indexes a content set in one batch. Used for rebuilds.
func (i *Index) IndexAll(items []models.Content) error {
	batch := i.index.NewBatch()
	for idx := range items {
		c := &items[idx]
		meta := ""
		if c.MetaDescription != nil {
			meta = *c.MetaDescription
		}
		d := doc{
			Type:    string(c.Type),
			Title:   c.DisplayTitle(),
			Summary: c.Summary(),
			Meta:    meta,
			Slug:    c.Slug,
		}
		if err := batch.Index(c.ID.String(), d); err != nil {
			return fmt.Errorf("batch index %s: %w", c.ID, err)
		}
	}
	if err := i.index.Batch(batch); err != nil {
		return fmt.Errorf("commit search batch: %w", err)
	}
	return nil
}

// Delete removes a content item from the index.
func (i *Index) Delete(id string) error {
	return i.index.Delete(id)
}

// Count returns the number of indexed documents.
func (i *Index) Count() (uint64, error) {
	return i.index.DocCount()
}

// Result is one search hit.
type Result struct {
	ID    string             `json:"id"`
	Type  models.ContentType `json:"type"`
	Title string             `json:"title"`
	Slug  string             `json:"slug"`
	Score float64            `json:"score"`
}

// Search runs a match query over title, summary, and meta text, title
// weighted highest, and returns up to limit hits ordered by score.
func (i *Index) Search(queryStr string, limit int) ([]Result, error) {
	queryStr = strings.TrimSpace(queryStr)
	if queryStr == "" {
		return nil, nil
	}

	titleQuery := bleve.NewMatchQuery(queryStr)
	titleQuery.SetField("title")
	titleQuery.SetBoost(3)

	summaryQuery := bleve.NewMatchQuery(queryStr)
	summaryQuery.SetField("summary")

	metaQuery := bleve.NewMatchQuery(queryStr)
	metaQuery.SetField("meta")

	// Prefix match on the title so partial words ("sapph") still hit.
	prefixQuery := bleve.NewPrefixQuery(strings.ToLower(queryStr))
	prefixQuery.SetField("title")

	query := bleve.NewDisjunctionQuery(titleQuery, summaryQuery, metaQuery, prefixQuery)

	req := bleve.NewSearchRequestOptions(query, limit, 0, false)
	req.Fields = []string{"type", "title", "slug"}

	res, err := i.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	results := make([]Result, 0, len(res.Hits))
	for _, hit := range res.Hits {
		r := Result{ID: hit.ID, Score: hit.Score}
		if v, ok := hit.Fields["type"].(string); ok {
			r.Type = models.ContentType(v)
		}
		if v, ok := hit.Fields["title"].(string); ok {
			r.Title = v
		}
		if v, ok := hit.Fields["slug"].(string); ok {
			r.Slug = v
		}
		results = append(results, r)
	}
	return results, nil
}
