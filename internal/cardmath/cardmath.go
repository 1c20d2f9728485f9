// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package cardmath provides the pure value and formatting helpers behind the
// card value tables. All functions are side-effect free and degrade
// gracefully on invalid input: card data comes from a CMS where numeric
// fields may be legitimately unset, so bad numbers clamp to a safe default
// instead of failing a page render.
package cardmath

import (
	"math"
	"strconv"

	"richgradstudent/internal/models"
)

// Tier is the presentation emphasis for a rated card benefit.
type Tier string

const (
	// TierStrong marks an editorially endorsed benefit.
	TierStrong Tier = "strong"
	// TierNegative marks a benefit rated poor.
	TierNegative Tier = "negative"
	// TierNeutral is everything else, including unrated benefits.
	TierNeutral Tier = "neutral"
)

// ValueAtRate converts a category multiplier into an effective cashback
// percentage at the given cents-per-point valuation, rounded to two decimal
// places. Negative, NaN, or infinite input is invalid domain data and clamps
// silently to 0.
func ValueAtRate(multiplier, centsPerPoint float64) float64 {
	if !validNumber(multiplier) || !validNumber(centsPerPoint) {
		return 0
	}
	return round2(multiplier * centsPerPoint)
}

// FormatPercentage renders a value as a percentage string: "6%" for whole
// numbers, "6.5%" otherwise. Invalid input renders as "N/A".
func FormatPercentage(value float64) string {
	if !validNumber(value) {
		return "N/A"
	}
	return formatTrimmed(value) + "%"
}

// FormatEarningRate renders a card's earn rate with its unit: "2x" for
// points cards, "2%" for cashback cards. The suffix carries meaning — a
// points multiplier and a cashback percentage are not comparable — so it is
// never dropped. Invalid input renders as "N/A".
func FormatEarningRate(value float64, rewardType models.RewardType) string {
	if !validNumber(value) {
		return "N/A"
	}
	if rewardType == models.RewardTypeCashback {
		return formatTrimmed(value) + "%"
	}
	return formatTrimmed(value) + "x"
}

// RatingTier maps an editorial rating onto a presentation tier. "great" and
// "rgs-wallet" are strong endorsements, "poor" is negative, everything else
// (including no rating at all) is neutral.
func RatingTier(rating *models.Rating) Tier {
	if rating == nil {
		return TierNeutral
	}
	switch *rating {
	case models.RatingGreat, models.RatingRGSWallet:
		return TierStrong
	case models.RatingPoor:
		return TierNegative
	}
	return TierNeutral
}

// validNumber reports whether v is a usable non-negative finite number.
func validNumber(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// round2 rounds to two decimal places with standard half-away rounding,
// guarding against binary floating-point drift.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// formatTrimmed renders a number rounded to two decimals with trailing
// zeros removed: 6 → "6", 6.5 → "6.5", 6.25 → "6.25".
func formatTrimmed(v float64) string {
	return strconv.FormatFloat(round2(v), 'f', -1, 64)
}
