// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"richgradstudent/internal/calculator"
)

// calculatorResponse carries the ranked projections plus the profile totals
// the frontend echoes back.
type calculatorResponse struct {
	TotalMonthly float64                 `json:"total_monthly"`
	TotalAnnual  float64                 `json:"total_annual"`
	Results      []calculator.CardResult `json:"results"`
}

// Calculator handles POST /api/calculator: a monthly spending profile in,
// the top-ranked cards by net annual value out.
func (a *API) Calculator(w http.ResponseWriter, r *http.Request) {
	var profile calculator.SpendingProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	clampProfile(&profile)

	cards, err := a.cards.ListWithPrograms()
	if err != nil {
		slog.Error("list cards failed", "error", err)
		respondError(w, http.StatusInternalServerError, "card lookup failed")
		return
	}

	results := calculator.Rank(&profile, cards)
	if results == nil {
		results = []calculator.CardResult{}
	}

	respondJSON(w, http.StatusOK, calculatorResponse{
		TotalMonthly: profile.Total(),
		TotalAnnual:  profile.Total() * 12,
		Results:      results,
	})
}

// clampProfile zeroes negative amounts. The form can't produce them, but
// the API shouldn't reward a crafted payload with negative fees.
func clampProfile(p *calculator.SpendingProfile) {
	for _, f := range []*float64{&p.Travel, &p.Grocery, &p.Gas, &p.Dining, &p.Pharmacy, &p.Other} {
		if *f < 0 {
			*f = 0
		}
	}
}
