package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data: two points
// programs, a handful of content items, and one credit card per program.
// No-op when content already exists so it is safe to run on every dev start.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM content").Scan(&count); err != nil {
		return fmt.Errorf("seed check content: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	// Points programs with RGS valuations (cents per point).
	var urID, vxID string
	if err := tx.QueryRow(`
		INSERT INTO points_programs (name, slug, base_value, best_redemption, display_order)
		VALUES ('Ultimate Rewards', 'ultimate-rewards', 2.0, 7.0, 1)
		RETURNING id
	`).Scan(&urID); err != nil {
		return fmt.Errorf("seed ultimate rewards: %w", err)
	}
	if err := tx.QueryRow(`
		INSERT INTO points_programs (name, slug, base_value, best_redemption, display_order)
		VALUES ('Venture Miles', 'venture-miles', 1.0, 1.5, 2)
		RETURNING id
	`).Scan(&vxID); err != nil {
		return fmt.Errorf("seed venture miles: %w", err)
	}

	// A post and an article so feeds, search, and recommendations have
	// something to chew on.
	if _, err := tx.Exec(`
		INSERT INTO content (type, title, slug, excerpt, categories, author_name, published_at)
		VALUES
		('post', 'Millionaire Style Travel on a Stipend', 'millionaire-style-travel-on-a-stipend',
		 'How two PhD students fly business class for conference travel.',
		 '["travel","new"]', 'Giorgio Sarro', NOW() - INTERVAL '7 days'),
		('article', 'Points Programs 101', 'points-programs-101',
		 'What a cent per point actually means and why valuations differ.',
		 '["new","everyday"]', 'Karan Jakhar', NOW() - INTERVAL '30 days')
	`); err != nil {
		return fmt.Errorf("seed posts: %w", err)
	}

	// Two credit-card reviews, one per program.
	var card1, card2 string
	if err := tx.QueryRow(`
		INSERT INTO content (type, name, slug, description, categories, points_program_id, published_at)
		VALUES ('creditCard', 'Sapphire Preferred', 'sapphire-preferred',
		        'The starter travel card for grad students.',
		        '["travel"]', $1, NOW() - INTERVAL '14 days')
		RETURNING id
	`, urID).Scan(&card1); err != nil {
		return fmt.Errorf("seed card 1: %w", err)
	}
	if err := tx.QueryRow(`
		INSERT INTO content (type, name, slug, description, categories, points_program_id, published_at)
		VALUES ('creditCard', 'Venture X', 'venture-x',
		        'Premium perks that outrun the fee for frequent flyers.',
		        '["travel","pro"]', $1, NOW() - INTERVAL '60 days')
		RETURNING id
	`, vxID).Scan(&card2); err != nil {
		return fmt.Errorf("seed card 2: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO credit_cards (content_id, issuer, reward_type, travel_multiplier, dining_multiplier,
		                          annual_fee, annual_credits, signup_bonus_value, travel_rating, dining_rating)
		VALUES
		($1, 'Chase', 'points', 2, 3, 95, 0, '60,000 points', 'great', 'great'),
		($2, 'Capital One', 'points', 5, 1, 395, 400, '75,000 miles', 'rgs-wallet', NULL)
	`, card1, card2); err != nil {
		return fmt.Errorf("seed card data: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded with development content",
		"programs", 2,
		"content_items", 4,
	)
	return nil
}
