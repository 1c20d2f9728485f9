// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"github.com/google/uuid"
)

// RewardType disambiguates how a card's multipliers are read: points cards
// earn N points per dollar, cashback cards earn N percent cash. The two are
// not interchangeable.
type RewardType string

const (
	RewardTypePoints   RewardType = "points"
	RewardTypeCashback RewardType = "cashback"
)

// Rating is the editorial verdict on a card benefit. Closed set.
type Rating string

const (
	RatingGreat     Rating = "great"
	RatingGood      Rating = "good"
	RatingPoor      Rating = "poor"
	RatingRGSWallet Rating = "rgs-wallet"
)

// SpendCategory names the six spending categories tracked per card.
type SpendCategory string

const (
	CategoryTravel   SpendCategory = "travel"
	CategoryGrocery  SpendCategory = "grocery"
	CategoryGas      SpendCategory = "gas"
	CategoryDining   SpendCategory = "dining"
	CategoryPharmacy SpendCategory = "pharmacy"
	CategoryOther    SpendCategory = "other"
)

// SpendCategories lists all six categories in display order.
var SpendCategories = []SpendCategory{
	CategoryTravel, CategoryGrocery, CategoryGas,
	CategoryDining, CategoryPharmacy, CategoryOther,
}

// CreditCard holds the card-specific numeric data for a creditCard content
// row. Multipliers are nullable: an unset multiplier means the card earns at
// the base 1x (or 1%) rate in that category, not that it earns nothing.
type CreditCard struct {
	ContentID  uuid.UUID  `json:"content_id"`
	Name       string     `json:"name"`
	Slug       string     `json:"slug"`
	Issuer     *string    `json:"issuer,omitempty"`
	RewardType RewardType `json:"reward_type"`

	TravelMultiplier   *float64 `json:"travel_multiplier,omitempty"`
	GroceryMultiplier  *float64 `json:"grocery_multiplier,omitempty"`
	GasMultiplier      *float64 `json:"gas_multiplier,omitempty"`
	DiningMultiplier   *float64 `json:"dining_multiplier,omitempty"`
	PharmacyMultiplier *float64 `json:"pharmacy_multiplier,omitempty"`
	OtherMultiplier    *float64 `json:"other_multiplier,omitempty"`

	TravelRating   *Rating `json:"travel_rating,omitempty"`
	GroceryRating  *Rating `json:"grocery_rating,omitempty"`
	GasRating      *Rating `json:"gas_rating,omitempty"`
	DiningRating   *Rating `json:"dining_rating,omitempty"`
	PharmacyRating *Rating `json:"pharmacy_rating,omitempty"`
	OtherRating    *Rating `json:"other_rating,omitempty"`

	AnnualFee     float64 `json:"annual_fee"`
	AnnualCredits float64 `json:"annual_credits"`
	// SignupBonusValue is a display string ("80,000 points"), deliberately
	// opaque to the math.
	SignupBonusValue *string `json:"signup_bonus_value,omitempty"`
	AffiliateLink    *string `json:"affiliate_link,omitempty"`

	PointsProgramID *uuid.UUID     `json:"points_program_id,omitempty"`
	PointsProgram   *PointsProgram `json:"points_program,omitempty"`
}

// Multiplier returns the card's earn rate for the given category, or nil
// when the card has no explicit rate there.
func (c *CreditCard) Multiplier(cat SpendCategory) *float64 {
	switch cat {
	case CategoryTravel:
		return c.TravelMultiplier
	case CategoryGrocery:
		return c.GroceryMultiplier
	case CategoryGas:
		return c.GasMultiplier
	case CategoryDining:
		return c.DiningMultiplier
	case CategoryPharmacy:
		return c.PharmacyMultiplier
	case CategoryOther:
		return c.OtherMultiplier
	}
	return nil
}

// PointsProgram is a loyalty currency with its RGS valuations, in US cents
// per point.
type PointsProgram struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
	// BaseValue is the conservative everyday redemption value.
	BaseValue float64 `json:"base_value"`
	// BestRedemption is the value achievable through transfer partners.
	BestRedemption float64 `json:"best_redemption"`
	Description    *string `json:"description,omitempty"`
	DisplayOrder   int     `json:"display_order"`
}
