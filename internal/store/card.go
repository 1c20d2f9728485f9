// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"richgradstudent/internal/models"
)

// CardStore handles credit-card and points-program database operations.
type CardStore struct {
	db *sql.DB
}

// NewCardStore creates a new CardStore with the given database connection.
func NewCardStore(db *sql.DB) *CardStore {
	return &CardStore{db: db}
}

// ListWithPrograms returns every credit card joined with its content row and
// points program. This is the calculator's input set.
func (s *CardStore) ListWithPrograms() ([]models.CreditCard, error) {
	rows, err := s.db.Query(`
		SELECT cc.content_id, c.name, c.slug, cc.issuer, cc.reward_type,
		       cc.travel_multiplier, cc.grocery_multiplier, cc.gas_multiplier,
		       cc.dining_multiplier, cc.pharmacy_multiplier, cc.other_multiplier,
		       cc.travel_rating, cc.grocery_rating, cc.gas_rating,
		       cc.dining_rating, cc.pharmacy_rating, cc.other_rating,
		       cc.annual_fee, cc.annual_credits, cc.signup_bonus_value,
		       cc.affiliate_link, c.points_program_id,
		       pp.id, pp.name, pp.slug, pp.base_value, pp.best_redemption,
		       pp.description, pp.display_order
		FROM credit_cards cc
		JOIN content c ON c.id = cc.content_id
		LEFT JOIN points_programs pp ON pp.id = c.points_program_id
		WHERE c.published_at IS NOT NULL
		ORDER BY c.name
	`)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	var cards []models.CreditCard
	for rows.Next() {
		var card models.CreditCard
		var ppID *uuid.UUID
		var ppName, ppSlug, ppDesc *string
		var ppBase, ppBest *float64
		var ppOrder *int

		if err := rows.Scan(
			&card.ContentID, &card.Name, &card.Slug, &card.Issuer, &card.RewardType,
			&card.TravelMultiplier, &card.GroceryMultiplier, &card.GasMultiplier,
			&card.DiningMultiplier, &card.PharmacyMultiplier, &card.OtherMultiplier,
			&card.TravelRating, &card.GroceryRating, &card.GasRating,
			&card.DiningRating, &card.PharmacyRating, &card.OtherRating,
			&card.AnnualFee, &card.AnnualCredits, &card.SignupBonusValue,
			&card.AffiliateLink, &card.PointsProgramID,
			&ppID, &ppName, &ppSlug, &ppBase, &ppBest, &ppDesc, &ppOrder,
		); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}

		if ppID != nil {
			card.PointsProgram = &models.PointsProgram{
				ID:             *ppID,
				Name:           *ppName,
				Slug:           *ppSlug,
				BaseValue:      *ppBase,
				BestRedemption: *ppBest,
				Description:    ppDesc,
				DisplayOrder:   *ppOrder,
			}
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

// UpsertCard writes the card-specific row for a creditCard content item.
func (s *CardStore) UpsertCard(card *models.CreditCard) error {
	_, err := s.db.Exec(`
		INSERT INTO credit_cards (content_id, issuer, reward_type,
			travel_multiplier, grocery_multiplier, gas_multiplier,
			dining_multiplier, pharmacy_multiplier, other_multiplier,
			travel_rating, grocery_rating, gas_rating,
			dining_rating, pharmacy_rating, other_rating,
			annual_fee, annual_credits, signup_bonus_value, affiliate_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (content_id) DO UPDATE SET
			issuer = EXCLUDED.issuer,
			reward_type = EXCLUDED.reward_type,
			travel_multiplier = EXCLUDED.travel_multiplier,
			grocery_multiplier = EXCLUDED.grocery_multiplier,
			gas_multiplier = EXCLUDED.gas_multiplier,
			dining_multiplier = EXCLUDED.dining_multiplier,
			pharmacy_multiplier = EXCLUDED.pharmacy_multiplier,
			other_multiplier = EXCLUDED.other_multiplier,
			travel_rating = EXCLUDED.travel_rating,
			grocery_rating = EXCLUDED.grocery_rating,
			gas_rating = EXCLUDED.gas_rating,
			dining_rating = EXCLUDED.dining_rating,
			pharmacy_rating = EXCLUDED.pharmacy_rating,
			other_rating = EXCLUDED.other_rating,
			annual_fee = EXCLUDED.annual_fee,
			annual_credits = EXCLUDED.annual_credits,
			signup_bonus_value = EXCLUDED.signup_bonus_value,
			affiliate_link = EXCLUDED.affiliate_link
	`, card.ContentID, card.Issuer, card.RewardType,
		card.TravelMultiplier, card.GroceryMultiplier, card.GasMultiplier,
		card.DiningMultiplier, card.PharmacyMultiplier, card.OtherMultiplier,
		card.TravelRating, card.GroceryRating, card.GasRating,
		card.DiningRating, card.PharmacyRating, card.OtherRating,
		card.AnnualFee, card.AnnualCredits, card.SignupBonusValue, card.AffiliateLink)
	if err != nil {
		return fmt.Errorf("upsert card: %w", err)
	}
	return nil
}

// ListPrograms returns all points programs in display order.
func (s *CardStore) ListPrograms() ([]models.PointsProgram, error) {
	rows, err := s.db.Query(`
		SELECT id, name, slug, base_value, best_redemption, description, display_order
		FROM points_programs
		ORDER BY display_order, name
	`)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	defer rows.Close()

	var programs []models.PointsProgram
	for rows.Next() {
		var p models.PointsProgram
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.BaseValue, &p.BestRedemption,
			&p.Description, &p.DisplayOrder); err != nil {
			return nil, fmt.Errorf("scan program: %w", err)
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

// FindProgramBySlug retrieves one points program. Returns nil if not found.
func (s *CardStore) FindProgramBySlug(slug string) (*models.PointsProgram, error) {
	p := &models.PointsProgram{}
	err := s.db.QueryRow(`
		SELECT id, name, slug, base_value, best_redemption, description, display_order
		FROM points_programs WHERE slug = $1
	`, slug).Scan(&p.ID, &p.Name, &p.Slug, &p.BaseValue, &p.BestRedemption,
		&p.Description, &p.DisplayOrder)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find program by slug: %w", err)
	}
	return p, nil
}
