// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package search

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"richgradstudent/internal/models"
)

func testIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { idx.Close() })
	return idx
}

func contentItem(typ models.ContentType, title, slug string) models.Content {
	now := time.Now()
	return models.Content{
		ID:          uuid.New(),
		Type:        typ,
		Title:       title,
		Slug:        slug,
		PublishedAt: &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestSearchFindsByTitle(t *testing.T) {
	idx := testIndex(t)

	card := contentItem(models.ContentTypeCreditCard, "", "sapphire-preferred")
	card.Name = "Chase Sapphire Preferred"
	post := contentItem(models.ContentTypePost, "Weekend in Lisbon", "weekend-in-lisbon")

	if err := idx.IndexAll([]models.Content{card, post}); err != nil {
		t.Fatalf("IndexAll: %v", err)
	}

	results, err := idx.Search("sapphire", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("want 1 result, got %d", len(results))
	}
	if results[0].Slug != "sapphire-preferred" {
		t.Errorf("slug = %q, want sapphire-preferred", results[0].Slug)
	}
	if results[0].Type != models.ContentTypeCreditCard {
		t.Errorf("type = %q, want creditCard", results[0].Type)
	}
	if results[0].Title != "Chase Sapphire Preferred" {
		t.Errorf("title = %q", results[0].Title)
	}
}

func TestSearchPrefixMatch(t *testing.T) {
	idx := testIndex(t)

	post := contentItem(models.ContentTypePost, "Maximizing Grocery Rewards", "maximizing-grocery-rewards")
	if err := idx.IndexContent(&post); err != nil {
		t.Fatalf("IndexContent: %v", err)
	}

	results, err := idx.Search("groc", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("prefix query: want 1 result, got %d", len(results))
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	idx := testIndex(t)

	results, err := idx.Search("   ", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if results != nil {
		t.Errorf("blank query should return nil, got %v", results)
	}
}

func TestSearchRanksTitleAboveSummary(t *testing.T) {
	idx := testIndex(t)

	titled := contentItem(models.ContentTypeArticle, "Travel Credit Explained", "travel-credit-explained")
	excerpt := "A deep dive on travel credits."
	mentioned := contentItem(models.ContentTypeArticle, "Annual Fee Math", "annual-fee-math")
	mentioned.Excerpt = &excerpt

	if err := idx.IndexAll([]models.Content{mentioned, titled}); err != nil {
		t.Fatalf("IndexAll: %v", err)
	}

	results, err := idx.Search("travel", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("want 2 results, got %d", len(results))
	}
	if results[0].Slug != "travel-credit-explained" {
		t.Errorf("title match should rank first, got %q", results[0].Slug)
	}
}

func TestDeleteRemovesDocument(t *testing.T) {
	idx := testIndex(t)

	post := contentItem(models.ContentTypePost, "Points Hygiene", "points-hygiene")
	if err := idx.IndexContent(&post); err != nil {
		t.Fatalf("IndexContent: %v", err)
	}
	if err := idx.Delete(post.ID.String()); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	results, err := idx.Search("points", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("deleted doc still returned: %v", results)
	}
}

func TestSearchRespectsLimit(t *testing.T) {
	idx := testIndex(t)

	items := []models.Content{
		contentItem(models.ContentTypePost, "Dining One", "dining-one"),
		contentItem(models.ContentTypePost, "Dining Two", "dining-two"),
		contentItem(models.ContentTypePost, "Dining Three", "dining-three"),
	}
	if err := idx.IndexAll(items); err != nil {
		t.Fatalf("IndexAll: %v", err)
	}

	results, err := idx.Search("dining", 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("limit 2: got %d results", len(results))
	}
}
