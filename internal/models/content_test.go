package models

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		name    string
		content Content
		want    string
	}{
		{
			name:    "post uses title",
			content: Content{Type: ContentTypePost, Title: "How I Fly Free"},
			want:    "How I Fly Free",
		},
		{
			name:    "article uses title",
			content: Content{Type: ContentTypeArticle, Title: "Points 101"},
			want:    "Points 101",
		},
		{
			name:    "credit card uses name",
			content: Content{Type: ContentTypeCreditCard, Name: "Sapphire Preferred"},
			want:    "Sapphire Preferred",
		},
		{
			name:    "credit card with empty name falls back to title",
			content: Content{Type: ContentTypeCreditCard, Title: "Fallback"},
			want:    "Fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.content.DisplayTitle(); got != tt.want {
				t.Errorf("DisplayTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name    string
		content Content
		want    string
	}{
		{
			name:    "post excerpt",
			content: Content{Type: ContentTypePost, Excerpt: strPtr("short take")},
			want:    "short take",
		},
		{
			name:    "card description",
			content: Content{Type: ContentTypeCreditCard, Description: strPtr("a travel card")},
			want:    "a travel card",
		},
		{
			name:    "card without description falls back to excerpt",
			content: Content{Type: ContentTypeCreditCard, Excerpt: strPtr("fallback")},
			want:    "fallback",
		},
		{
			name:    "nothing set",
			content: Content{Type: ContentTypeArticle},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.content.Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPath(t *testing.T) {
	tests := []struct {
		name    string
		content Content
		want    string
	}{
		{"post at root", Content{Type: ContentTypePost, Slug: "fly-free"}, "/fly-free"},
		{"article under section", Content{Type: ContentTypeArticle, Slug: "points-101"}, "/articles/points-101"},
		{"card under section", Content{Type: ContentTypeCreditCard, Slug: "sapphire-preferred"}, "/credit-cards/sapphire-preferred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.content.Path(); got != tt.want {
				t.Errorf("Path() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsPublished(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	if (&Content{}).IsPublished() {
		t.Error("content without publish date should not be published")
	}
	if !(&Content{PublishedAt: &past}).IsPublished() {
		t.Error("content published an hour ago should be published")
	}
	if (&Content{PublishedAt: &future}).IsPublished() {
		t.Error("scheduled content should not be published yet")
	}
}

func TestContentTypeValid(t *testing.T) {
	for _, valid := range []ContentType{ContentTypeArticle, ContentTypePost, ContentTypeCreditCard} {
		if !valid.Valid() {
			t.Errorf("%q should be valid", valid)
		}
	}
	for _, invalid := range []ContentType{"", "page", "Article"} {
		if invalid.Valid() {
			t.Errorf("%q should be invalid", invalid)
		}
	}
}

func TestCardMultiplierAccessor(t *testing.T) {
	three := 3.0
	card := CreditCard{TravelMultiplier: &three}

	if got := card.Multiplier(CategoryTravel); got == nil || *got != 3.0 {
		t.Errorf("travel multiplier: got %v, want 3.0", got)
	}
	if got := card.Multiplier(CategoryGas); got != nil {
		t.Errorf("unset gas multiplier: got %v, want nil", got)
	}
	if got := card.Multiplier(SpendCategory("rent")); got != nil {
		t.Errorf("unknown category: got %v, want nil", got)
	}
}
