// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package calculator ranks credit cards by projected net annual value for a
// user-supplied monthly spending profile.
package calculator

import (
	"math"
	"sort"

	"richgradstudent/internal/models"
)

const (
	// DefaultCentsPerPoint is the assumed point valuation for cards without
	// a points program.
	DefaultCentsPerPoint = 1.5

	// TopCards is how many ranked results the calculator returns.
	TopCards = 3

	// baseMultiplier applies when a card has no explicit rate for a
	// category: the card still earns at 1x (or 1% cashback) there.
	baseMultiplier = 1.0
)

// SpendingProfile is a user's monthly spending in dollars across the six
// tracked categories.
type SpendingProfile struct {
	Travel   float64 `json:"travel"`
	Grocery  float64 `json:"grocery"`
	Gas      float64 `json:"gas"`
	Dining   float64 `json:"dining"`
	Pharmacy float64 `json:"pharmacy"`
	Other    float64 `json:"other"`
}

// Amount returns the monthly spend for the given category.
func (p *SpendingProfile) Amount(cat models.SpendCategory) float64 {
	switch cat {
	case models.CategoryTravel:
		return p.Travel
	case models.CategoryGrocery:
		return p.Grocery
	case models.CategoryGas:
		return p.Gas
	case models.CategoryDining:
		return p.Dining
	case models.CategoryPharmacy:
		return p.Pharmacy
	case models.CategoryOther:
		return p.Other
	}
	return 0
}

// Total returns the total monthly spend across all categories.
func (p *SpendingProfile) Total() float64 {
	var sum float64
	for _, cat := range models.SpendCategories {
		sum += p.Amount(cat)
	}
	return sum
}

// CardResult is one card's projection for a spending profile.
type CardResult struct {
	Card           *models.CreditCard `json:"card"`
	MonthlyUnits   float64            `json:"monthly_units"`
	AnnualUnits    float64            `json:"annual_units"`
	PointValue     float64            `json:"point_value"` // dollars
	AnnualCredits  float64            `json:"annual_credits"`
	AnnualFee      float64            `json:"annual_fee"`
	NetAnnualValue float64            `json:"net_annual_value"`
}

// Evaluate projects a single card's net annual value for the profile.
func Evaluate(profile *SpendingProfile, card *models.CreditCard) CardResult {
	var monthlyUnits float64
	for _, cat := range models.SpendCategories {
		rate := baseMultiplier
		if m := card.Multiplier(cat); m != nil {
			rate = *m
		}
		monthlyUnits += profile.Amount(cat) * rate
	}

	annualUnits := monthlyUnits * 12

	cpp := DefaultCentsPerPoint
	if card.PointsProgram != nil {
		cpp = card.PointsProgram.BaseValue
	}

	// Round the cents-scale quantity before dividing into dollars. Dividing
	// first accumulates binary floating-point error at the cent level.
	pointValue := math.Round(annualUnits*cpp) / 100
	net := math.Round((pointValue+card.AnnualCredits-card.AnnualFee)*100) / 100

	return CardResult{
		Card:           card,
		MonthlyUnits:   monthlyUnits,
		AnnualUnits:    annualUnits,
		PointValue:     pointValue,
		AnnualCredits:  card.AnnualCredits,
		AnnualFee:      card.AnnualFee,
		NetAnnualValue: net,
	}
}

// Rank evaluates every card against the profile and returns the top cards
// by net annual value, best first. Ties keep input order (stable sort).
func Rank(profile *SpendingProfile, cards []models.CreditCard) []CardResult {
	results := make([]CardResult, 0, len(cards))
	for i := range cards {
		results = append(results, Evaluate(profile, &cards[i]))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].NetAnnualValue > results[j].NetAnnualValue
	})

	if len(results) > TopCards {
		results = results[:TopCards]
	}
	return results
}
