// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"richgradstudent/internal/models"
)

// ContentStore handles all content-related database operations. It serves
// articles, posts, and credit-card reviews through the unified content table
// and is the engine's document-query capability.
type ContentStore struct {
	db *sql.DB
}

// NewContentStore creates a new ContentStore with the given database connection.
func NewContentStore(db *sql.DB) *ContentStore {
	return &ContentStore{db: db}
}

const contentColumns = `
	id, type, title, name, slug, excerpt, description, image_url, image_key,
	categories, tag_ids, manual_recommendation_ids, points_program_id,
	author_name, meta_description, published_at, created_at, updated_at`

// scanContent reads one content row. categories, tag_ids, and
// manual_recommendation_ids are jsonb columns scanned through raw bytes:
// database/sql has no native array support under the pgx stdlib driver.
func scanContent(row interface{ Scan(...any) error }) (*models.Content, error) {
	c := &models.Content{}
	var categories, tagIDs, manualIDs []byte
	if err := row.Scan(
		&c.ID, &c.Type, &c.Title, &c.Name, &c.Slug, &c.Excerpt, &c.Description,
		&c.ImageURL, &c.ImageKey, &categories, &tagIDs, &manualIDs,
		&c.PointsProgramID, &c.AuthorName, &c.MetaDescription,
		&c.PublishedAt, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(categories, &c.Categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	if err := json.Unmarshal(tagIDs, &c.TagIDs); err != nil {
		return nil, fmt.Errorf("decode tag ids: %w", err)
	}
	if err := json.Unmarshal(manualIDs, &c.ManualRecommendationIDs); err != nil {
		return nil, fmt.Errorf("decode manual recommendation ids: %w", err)
	}
	return c, nil
}

func (s *ContentStore) queryContent(query string, args ...any) ([]models.Content, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Content
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// idPlaceholders renders $N placeholders for an id list starting at from.
func idPlaceholders(n, from int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(parts, ", ")
}

func idArgs(ids []uuid.UUID) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

// FindByIDs returns the content items with the given ids, in
// store-determined order. Missing ids are silently absent from the result.
func (s *ContentStore) FindByIDs(ids []uuid.UUID) ([]models.Content, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM content WHERE id IN (%s)`,
		contentColumns, idPlaceholders(len(ids), 1))
	items, err := s.queryContent(query, idArgs(ids)...)
	if err != nil {
		return nil, fmt.Errorf("find content by ids: %w", err)
	}
	return items, nil
}

// ListCandidates returns every published content item of the three public
// types except the excluded ids. One bulk fetch; scoring happens in process.
func (s *ContentStore) ListCandidates(excludeIDs []uuid.UUID) ([]models.Content, error) {
	query := fmt.Sprintf(`SELECT %s FROM content WHERE published_at IS NOT NULL`, contentColumns)
	var args []any
	if len(excludeIDs) > 0 {
		query += fmt.Sprintf(` AND id NOT IN (%s)`, idPlaceholders(len(excludeIDs), 1))
		args = idArgs(excludeIDs)
	}
	items, err := s.queryContent(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	return items, nil
}

// ListRecentCreated returns up to n items ordered by creation time
// descending, excluding the given ids. Backfill tier for recommendations.
func (s *ContentStore) ListRecentCreated(excludeIDs []uuid.UUID, n int) ([]models.Content, error) {
	query := fmt.Sprintf(`SELECT %s FROM content`, contentColumns)
	var args []any
	if len(excludeIDs) > 0 {
		query += fmt.Sprintf(` WHERE id NOT IN (%s)`, idPlaceholders(len(excludeIDs), 1))
		args = idArgs(excludeIDs)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, n)

	items, err := s.queryContent(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recent created: %w", err)
	}
	return items, nil
}

// FindByID retrieves a content item by id. Returns nil if not found.
func (s *ContentStore) FindByID(id uuid.UUID) (*models.Content, error) {
	query := fmt.Sprintf(`SELECT %s FROM content WHERE id = $1`, contentColumns)
	c, err := scanContent(s.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find content by id: %w", err)
	}
	return c, nil
}

// FindBySlug retrieves a content item by type and slug. Returns nil if not
// found. Slugs are unique per type, so both parts are required.
func (s *ContentStore) FindBySlug(contentType models.ContentType, slug string) (*models.Content, error) {
	query := fmt.Sprintf(`SELECT %s FROM content WHERE type = $1 AND slug = $2`, contentColumns)
	c, err := scanContent(s.db.QueryRow(query, contentType, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find content by slug: %w", err)
	}
	return c, nil
}

// ListByType returns all content items of the given type, newest publish
// date first.
func (s *ContentStore) ListByType(contentType models.ContentType) ([]models.Content, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM content
		WHERE type = $1
		ORDER BY published_at DESC NULLS LAST`, contentColumns)
	items, err := s.queryContent(query, contentType)
	if err != nil {
		return nil, fmt.Errorf("list content by type: %w", err)
	}
	return items, nil
}

// ListPublishedPosts returns up to limit published posts, newest first.
// Feeds the RSS builder.
func (s *ContentStore) ListPublishedPosts(limit int) ([]models.Content, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM content
		WHERE type = 'post' AND published_at IS NOT NULL
		ORDER BY published_at DESC
		LIMIT $1`, contentColumns)
	items, err := s.queryContent(query, limit)
	if err != nil {
		return nil, fmt.Errorf("list published posts: %w", err)
	}
	return items, nil
}

// Upsert inserts or replaces a content item by (type, slug). The webhook
// sync path: CMS documents arrive whole, so every column is written.
func (s *ContentStore) Upsert(c *models.Content) (*models.Content, error) {
	categories, err := json.Marshal(orEmpty(c.Categories))
	if err != nil {
		return nil, fmt.Errorf("encode categories: %w", err)
	}
	tagIDs, err := json.Marshal(orEmptyIDs(c.TagIDs))
	if err != nil {
		return nil, fmt.Errorf("encode tag ids: %w", err)
	}
	manualIDs, err := json.Marshal(orEmptyIDs(c.ManualRecommendationIDs))
	if err != nil {
		return nil, fmt.Errorf("encode manual recommendation ids: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO content (id, type, title, name, slug, excerpt, description,
		                     image_url, image_key, categories, tag_ids,
		                     manual_recommendation_ids, points_program_id,
		                     author_name, meta_description, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (type, slug) DO UPDATE SET
			title = EXCLUDED.title,
			name = EXCLUDED.name,
			excerpt = EXCLUDED.excerpt,
			description = EXCLUDED.description,
			image_url = EXCLUDED.image_url,
			image_key = COALESCE(EXCLUDED.image_key, content.image_key),
			categories = EXCLUDED.categories,
			tag_ids = EXCLUDED.tag_ids,
			manual_recommendation_ids = EXCLUDED.manual_recommendation_ids,
			points_program_id = EXCLUDED.points_program_id,
			author_name = EXCLUDED.author_name,
			meta_description = EXCLUDED.meta_description,
			published_at = EXCLUDED.published_at,
			updated_at = NOW()
		RETURNING %s`, contentColumns)

	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	result, err := scanContent(s.db.QueryRow(query,
		id, c.Type, c.Title, c.Name, c.Slug, c.Excerpt, c.Description,
		c.ImageURL, c.ImageKey, categories, tagIDs, manualIDs,
		c.PointsProgramID, c.AuthorName, c.MetaDescription, c.PublishedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("upsert content: %w", err)
	}
	return result, nil
}

// SetImageKey records the bucket key of a mirrored content image.
func (s *ContentStore) SetImageKey(id uuid.UUID, key string) error {
	_, err := s.db.Exec(`UPDATE content SET image_key = $1, updated_at = NOW() WHERE id = $2`, key, id)
	if err != nil {
		return fmt.Errorf("set image key: %w", err)
	}
	return nil
}

// Delete removes a content item by id. Card rows cascade.
func (s *ContentStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM content WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	return nil
}

// orEmpty maps a nil slice to an empty one so jsonb columns store [] not null.
func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orEmptyIDs(s []uuid.UUID) []uuid.UUID {
	if s == nil {
		return []uuid.UUID{}
	}
	return s
}
