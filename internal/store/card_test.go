package store

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"richgradstudent/internal/models"
)

func TestCardStoreRoundTrip(t *testing.T) {
	db := testDB(t)
	contentStore := NewContentStore(db)
	cardStore := NewCardStore(db)

	slug := "test-card-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanContent(t, db, slug) })

	published := time.Now().Add(-time.Hour)
	content, err := contentStore.Upsert(&models.Content{
		Type:        models.ContentTypeCreditCard,
		Name:        "Test Card",
		Slug:        slug,
		PublishedAt: &published,
	})
	if err != nil {
		t.Fatalf("Upsert content: %v", err)
	}

	three := 3.0
	great := models.RatingGreat
	issuer := "Chase"
	if err := cardStore.UpsertCard(&models.CreditCard{
		ContentID:        content.ID,
		Issuer:           &issuer,
		RewardType:       models.RewardTypePoints,
		TravelMultiplier: &three,
		TravelRating:     &great,
		AnnualFee:        95,
	}); err != nil {
		t.Fatalf("UpsertCard: %v", err)
	}

	cards, err := cardStore.ListWithPrograms()
	if err != nil {
		t.Fatalf("ListWithPrograms: %v", err)
	}

	var found *models.CreditCard
	for i := range cards {
		if cards[i].ContentID == content.ID {
			found = &cards[i]
		}
	}
	if found == nil {
		t.Fatal("card missing from list")
	}
	if found.Name != "Test Card" {
		t.Errorf("name: got %q, want %q", found.Name, "Test Card")
	}
	if found.TravelMultiplier == nil || *found.TravelMultiplier != 3 {
		t.Errorf("travel multiplier: got %v, want 3", found.TravelMultiplier)
	}
	if found.GroceryMultiplier != nil {
		t.Errorf("grocery multiplier: got %v, want nil (unset)", found.GroceryMultiplier)
	}
	if found.PointsProgram != nil {
		t.Errorf("points program: got %v, want nil", found.PointsProgram)
	}
	if found.AnnualFee != 95 {
		t.Errorf("annual fee: got %v, want 95", found.AnnualFee)
	}

	// Upserting again with new values must update in place.
	five := 5.0
	if err := cardStore.UpsertCard(&models.CreditCard{
		ContentID:        content.ID,
		RewardType:       models.RewardTypeCashback,
		TravelMultiplier: &five,
		AnnualFee:        0,
	}); err != nil {
		t.Fatalf("second UpsertCard: %v", err)
	}

	cards, err = cardStore.ListWithPrograms()
	if err != nil {
		t.Fatalf("ListWithPrograms: %v", err)
	}
	for i := range cards {
		if cards[i].ContentID == content.ID {
			if cards[i].RewardType != models.RewardTypeCashback {
				t.Errorf("reward type: got %q, want cashback", cards[i].RewardType)
			}
			if cards[i].TravelMultiplier == nil || *cards[i].TravelMultiplier != 5 {
				t.Errorf("travel multiplier after update: got %v, want 5", cards[i].TravelMultiplier)
			}
		}
	}
}

func TestCardStorePrograms(t *testing.T) {
	db := testDB(t)
	cardStore := NewCardStore(db)

	slug := "test-program-" + uuid.NewString()[:8]
	t.Cleanup(func() {
		db.Exec("DELETE FROM points_programs WHERE slug = $1", slug)
	})

	if _, err := db.Exec(`
		INSERT INTO points_programs (name, slug, base_value, best_redemption, display_order)
		VALUES ('Test Program', $1, 1.5, 4.0, 99)
	`, slug); err != nil {
		t.Fatalf("insert program: %v", err)
	}

	p, err := cardStore.FindProgramBySlug(slug)
	if err != nil {
		t.Fatalf("FindProgramBySlug: %v", err)
	}
	if p == nil {
		t.Fatal("expected program, got nil")
	}
	if p.BaseValue != 1.5 || p.BestRedemption != 4.0 {
		t.Errorf("valuations: got %v/%v, want 1.5/4.0", p.BaseValue, p.BestRedemption)
	}

	missing, err := cardStore.FindProgramBySlug("missing-" + uuid.NewString()[:8])
	if err != nil {
		t.Fatalf("FindProgramBySlug missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing program, got %v", missing)
	}
}
