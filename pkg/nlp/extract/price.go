package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Magnitude multipliers for Indian price shorthand.
const (
	multiplierLakh     = 1e5
	multiplierCrore    = 1e7
	multiplierThousand = 1e3
)

// Price phrases: an optional rupee marker, a number, an optional magnitude
// suffix. Bare numbers are returned unscaled.
var pricePattern = regexp.MustCompile(`(?i)(?:₹|rs\.?|rupees?|inr)?\s*(\d+(?:\.\d+)?)\s*(lakhs?|lacs?|crores?|cr|k|thousand)?`)

// explicit price context: "for 5000", "price 5000", "rent 12000", "@ 5000"
var priceContextPattern = regexp.MustCompile(`(?i)(?:price|rent|salary|budget|for|under|upto|at|@|₹|rs\.?|rupees?|inr)\s*:?\s*(\d+(?:\.\d+)?)\s*(lakhs?|lacs?|crores?|cr|k|thousand)?`)

// NormalizePrice parses a price phrase and returns the absolute amount.
// "15 lakh" -> 1500000, "2.5 cr" -> 25000000, "50k" -> 50000,
// "15000" -> 15000. Returns false when no number is present.
func NormalizePrice(text string) (float64, bool) {
	m := pricePattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil || m[1] == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return value * suffixMultiplier(m[2]), true
}

func suffixMultiplier(suffix string) float64 {
	switch strings.ToLower(strings.TrimSpace(suffix)) {
	case "lakh", "lakhs", "lac", "lacs":
		return multiplierLakh
	case "crore", "crores", "cr":
		return multiplierCrore
	case "k", "thousand":
		return multiplierThousand
	default:
		return 1
	}
}

// extractPrice finds a price in running text. Numbers with an explicit
// magnitude suffix win over numbers that merely sit next to a price cue,
// so "2 BHK for 15 lakh" resolves to the lakh amount and not the 2.
func extractPrice(text string) (float64, bool) {
	best := 0.0
	found := false
	for _, m := range pricePattern.FindAllStringSubmatch(text, -1) {
		if m[2] == "" {
			continue
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		amount := value * suffixMultiplier(m[2])
		if !found || amount > best {
			best = amount
			found = true
		}
	}
	if found {
		return best, true
	}

	// No suffixed amount: fall back to a number in price context.
	if m := priceContextPattern.FindStringSubmatch(text); m != nil {
		value, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return value * suffixMultiplier(m[2]), true
		}
	}
	return 0, false
}
