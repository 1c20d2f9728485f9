// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package recommend selects related content for an article, post, or credit
// card. Selection runs in three tiers: editor-curated manual picks first,
// then candidates scored by shared categories, tags, and points program,
// then a recency-based backfill when the first two tiers come up short.
//
// Recommendations are a best-effort enhancement. Every failure path degrades
// to an empty result; callers never see an error.
package recommend

import (
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"richgradstudent/internal/models"
)

const (
	// MaxRecommendations is the hard cap on returned items.
	MaxRecommendations = 3

	// RecencyWindow is how far back a publish date still earns the
	// freshness bonus.
	RecencyWindow = 90 * 24 * time.Hour

	categoryWeight      = 3
	tagWeight           = 2
	pointsProgramWeight = 5
	recencyWeight       = 1
)

// Source is the content-store capability the engine depends on. The store
// does no scoring; candidates come back in full and are scored in process
// with a single bulk fetch.
type Source interface {
	// FindByIDs returns the content items with the given ids, in
	// store-determined order. Missing ids are silently absent.
	FindByIDs(ids []uuid.UUID) ([]models.Content, error)
	// ListCandidates returns all content of the three public types except
	// the excluded ids.
	ListCandidates(excludeIDs []uuid.UUID) ([]models.Content, error)
	// ListRecentCreated returns up to n items ordered by creation time
	// descending, excluding the given ids.
	ListRecentCreated(excludeIDs []uuid.UUID, n int) ([]models.Content, error)
}

// Params describes the document recommendations are computed for.
type Params struct {
	CurrentID       uuid.UUID
	CurrentType     models.ContentType
	Categories      []string
	TagIDs          []uuid.UUID
	PointsProgramID *uuid.UUID
	ManualPicks     []uuid.UUID
}

// Engine computes recommendations against a Source.
type Engine struct {
	source Source
	// now is injectable for deterministic recency scoring in tests.
	now func() time.Time
}

// New creates an Engine backed by the given source.
func New(source Source) *Engine {
	return &Engine{source: source, now: time.Now}
}

// candidate pairs a content item with its relevance score. Ephemeral,
// discarded after ranking.
type candidate struct {
	content models.Content
	score   int
}

// Recommend returns up to MaxRecommendations related items for the document
// described by params, never including the document itself. On any store
// failure it logs and returns an empty slice.
func (e *Engine) Recommend(params Params) []models.Content {
	// Tier 1: editor-curated picks. A document listed in its own picks is
	// dropped, so a 4-pick list containing the current id still fills all
	// three slots.
	picks := withoutID(params.ManualPicks, params.CurrentID)
	if len(picks) > 0 {
		manual, err := e.source.FindByIDs(picks)
		if err != nil {
			slog.Warn("recommendations unavailable", "error", err, "id", params.CurrentID)
			return []models.Content{}
		}

		// The store does not guarantee id-list order, but editors curate
		// the list expecting position to matter, so re-sort to their order.
		sortByIDOrder(manual, picks)

		if len(manual) >= MaxRecommendations {
			return manual[:MaxRecommendations]
		}

		// Fill the remaining slots automatically, excluding the current
		// document and everything already picked.
		remaining := MaxRecommendations - len(manual)
		exclude := append(append([]uuid.UUID{}, picks...), params.CurrentID)
		auto, err := e.automatic(params, exclude, remaining)
		if err != nil {
			slog.Warn("recommendations unavailable", "error", err, "id", params.CurrentID)
			return []models.Content{}
		}
		return append(manual, auto...)
	}

	// Tier 2+3: fully automatic.
	auto, err := e.automatic(params, []uuid.UUID{params.CurrentID}, MaxRecommendations)
	if err != nil {
		slog.Warn("recommendations unavailable", "error", err, "id", params.CurrentID)
		return []models.Content{}
	}
	return auto
}

// automatic fetches all candidates in one bulk call, scores them in process,
// and backfills with recently created content when scoring cannot fill the
// quota.
func (e *Engine) automatic(params Params, excludeIDs []uuid.UUID, limit int) ([]models.Content, error) {
	candidates, err := e.source.ListCandidates(excludeIDs)
	if err != nil {
		return nil, err
	}

	now := e.now()
	recencyCutoff := now.Add(-RecencyWindow)

	scored := make([]candidate, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, candidate{content: c, score: e.score(params, &c, recencyCutoff)})
	}

	// Highest score first; ties go to the more recently published item.
	// Stable so identical inputs rank deterministically.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return publishedAfter(scored[i].content.PublishedAt, scored[j].content.PublishedAt)
	})

	results := make([]models.Content, 0, limit)
	for _, s := range scored {
		if len(results) == limit {
			break
		}
		results = append(results, s.content)
	}

	// Tier 3: pure recency-of-creation fill, no scoring.
	if len(results) < limit {
		used := append([]uuid.UUID{}, excludeIDs...)
		for _, r := range results {
			used = append(used, r.ID)
		}
		recent, err := e.source.ListRecentCreated(used, limit-len(results))
		if err != nil {
			return nil, err
		}
		results = append(results, recent...)
	}

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// score computes the relevance of a candidate to the current document.
func (e *Engine) score(params Params, c *models.Content, recencyCutoff time.Time) int {
	score := categoryWeight * intersectStrings(params.Categories, c.Categories)
	score += tagWeight * intersectIDs(params.TagIDs, c.TagIDs)

	if params.PointsProgramID != nil &&
		c.Type == models.ContentTypeCreditCard &&
		c.PointsProgramID != nil &&
		*c.PointsProgramID == *params.PointsProgramID {
		score += pointsProgramWeight
	}

	if c.PublishedAt != nil && c.PublishedAt.After(recencyCutoff) {
		score += recencyWeight
	}

	return score
}

// intersectStrings returns the intersection cardinality of two string sets.
func intersectStrings(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(a))
	for _, s := range a {
		set[s] = struct{}{}
	}
	var n int
	seen := make(map[string]struct{}, len(b))
	for _, s := range b {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		if _, ok := set[s]; ok {
			n++
		}
	}
	return n
}

// intersectIDs returns the intersection cardinality of two id sets.
func intersectIDs(a, b []uuid.UUID) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[uuid.UUID]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}
	var n int
	seen := make(map[uuid.UUID]struct{}, len(b))
	for _, id := range b {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := set[id]; ok {
			n++
		}
	}
	return n
}

// publishedAfter reports whether a is more recent than b, with unset dates
// sorting last.
func publishedAfter(a, b *time.Time) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return a.After(*b)
}

// withoutID returns ids with every occurrence of id removed. Returns the
// input slice untouched when id is absent.
func withoutID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	found := false
	for _, v := range ids {
		if v == id {
			found = true
			break
		}
	}
	if !found {
		return ids
	}
	out := make([]uuid.UUID, 0, len(ids)-1)
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// sortByIDOrder reorders items to match the position of their ids in order.
func sortByIDOrder(items []models.Content, order []uuid.UUID) {
	pos := make(map[uuid.UUID]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	sort.SliceStable(items, func(i, j int) bool {
		return pos[items[i].ID] < pos[items[j].ID]
	})
}
