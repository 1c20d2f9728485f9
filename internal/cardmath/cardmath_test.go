package cardmath

import (
	"math"
	"testing"

	"richgradstudent/internal/models"
)

func TestValueAtRate(t *testing.T) {
	tests := []struct {
		name          string
		multiplier    float64
		centsPerPoint float64
		want          float64
	}{
		// --- Typical valuations ---
		{"3x at 2cpp", 3, 2, 6},
		{"3x at 7cpp", 3, 7, 21},
		{"1x at 1.5cpp", 1, 1.5, 1.5},
		{"5x at 2.2cpp", 5, 2.2, 11},
		{"fractional multiplier", 1.5, 2, 3},

		// --- Rounding ---
		{"rounds half up", 1.125, 2, 2.25},
		{"two decimal places", 1.1, 1.1, 1.21},
		{"drift from binary floats", 0.1, 3, 0.3},

		// --- Zero ---
		{"zero multiplier", 0, 2, 0},
		{"zero cpp", 3, 0, 0},

		// --- Invalid input clamps to zero ---
		{"negative multiplier", -1, 2, 0},
		{"negative cpp", 3, -2, 0},
		{"NaN multiplier", math.NaN(), 2, 0},
		{"NaN cpp", 3, math.NaN(), 0},
		{"positive infinity", math.Inf(1), 2, 0},
		{"negative infinity", math.Inf(-1), 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValueAtRate(tt.multiplier, tt.centsPerPoint)
			if got != tt.want {
				t.Errorf("ValueAtRate(%v, %v) = %v, want %v", tt.multiplier, tt.centsPerPoint, got, tt.want)
			}
		})
	}
}

// TestValueAtRateNonNegative verifies the clamp invariant: output is never
// negative regardless of input.
func TestValueAtRateNonNegative(t *testing.T) {
	inputs := []struct{ m, cpp float64 }{
		{-5, -5}, {-0.001, 100}, {math.NaN(), math.NaN()}, {0, 0}, {1e9, 1e9},
	}
	for _, in := range inputs {
		if got := ValueAtRate(in.m, in.cpp); got < 0 {
			t.Errorf("ValueAtRate(%v, %v) = %v, want >= 0", in.m, in.cpp, got)
		}
	}
}

func TestFormatPercentage(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"whole number", 6, "6%"},
		{"one decimal", 6.5, "6.5%"},
		{"two decimals", 6.25, "6.25%"},
		{"zero", 0, "0%"},
		{"trailing zeros trimmed", 6.50, "6.5%"},
		{"rounded to two places", 6.666, "6.67%"},
		{"NaN", math.NaN(), "N/A"},
		{"negative", -2, "N/A"},
		{"infinity", math.Inf(1), "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPercentage(tt.value); got != tt.want {
				t.Errorf("FormatPercentage(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatEarningRate(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		rewardType models.RewardType
		want       string
	}{
		{"points card gets x suffix", 2, models.RewardTypePoints, "2x"},
		{"cashback card gets percent suffix", 2, models.RewardTypeCashback, "2%"},
		{"fractional points rate", 1.5, models.RewardTypePoints, "1.5x"},
		{"fractional cashback rate", 1.5, models.RewardTypeCashback, "1.5%"},
		{"unknown reward type defaults to points", 3, models.RewardType(""), "3x"},
		{"NaN points", math.NaN(), models.RewardTypePoints, "N/A"},
		{"negative cashback", -1, models.RewardTypeCashback, "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatEarningRate(tt.value, tt.rewardType)
			if got != tt.want {
				t.Errorf("FormatEarningRate(%v, %q) = %q, want %q", tt.value, tt.rewardType, got, tt.want)
			}
		})
	}
}

// TestRatingTier exercises all four branches of the closed classification.
func TestRatingTier(t *testing.T) {
	great := models.RatingGreat
	wallet := models.RatingRGSWallet
	poor := models.RatingPoor
	good := models.RatingGood
	unknown := models.Rating("meh")

	tests := []struct {
		name   string
		rating *models.Rating
		want   Tier
	}{
		{"great is strong", &great, TierStrong},
		{"rgs-wallet is strong", &wallet, TierStrong},
		{"poor is negative", &poor, TierNegative},
		{"good is neutral", &good, TierNeutral},
		{"unknown value is neutral", &unknown, TierNeutral},
		{"absent rating is neutral", nil, TierNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RatingTier(tt.rating); got != tt.want {
				t.Errorf("RatingTier(%v) = %q, want %q", tt.rating, got, tt.want)
			}
		})
	}
}
