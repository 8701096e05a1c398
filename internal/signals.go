package internal

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"perkly/internal/domain"
)

var FeatureKeywords = map[domain.Feature][]string{
	domain.FeatureCinemaOffers:        {"cinema", "movie", "vox", "roxy", "reel"},
	domain.FeatureAirportLoungeAccess: {"lounge"},
	domain.FeatureValetParking:        {"valet"},
	domain.FeatureComplementaryGolf:   {"golf"},
	domain.FeatureMetalCard:           {"metal"},
	domain.FeatureAirportTransfers:    {"airport transfer", "airport transfers", "careem"},
}

var TravelKeywords = []string{
	"flight",
	"flights",
	"hotel",
	"travel",
	"airline",
	"airlines",
	"booking",
	"cleartrip",
	"booking.com",
}

var OtherSpendKeywords = []string{"all other", "all other domestic", "other spends", "other spend"}

var (
	cashbackRateRegex = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%\s*(?:cashback|back)`)
	lineBreakRegex    = regexp.MustCompile(`[\n\r]+`)
)

// ExtractCashbackRates scans a card's perk text for "<n>% cashback" /
// "<n>% back" mentions and buckets each one by the keywords on its
// line. Travel keywords win over other-spend keywords; a line matching
// neither is general. Each bucket keeps the max rate seen, not a sum.
func ExtractCashbackRates(text string) domain.CashbackRates {
	rates := domain.CashbackRates{}
	if text == "" {
		return rates
	}

	lines := lineBreakRegex.Split(strings.ToLower(text), -1)
	for _, line := range lines {
		for _, match := range cashbackRateRegex.FindAllStringSubmatch(line, -1) {
			rate, err := strconv.ParseFloat(match[1], 64)
			if err != nil {
				continue
			}
			switch {
			case containsAny(line, TravelKeywords):
				rates.Travel = math.Max(rates.Travel, rate)
			case containsAny(line, OtherSpendKeywords):
				rates.OtherSpend = math.Max(rates.OtherSpend, rate)
			default:
				rates.General = math.Max(rates.General, rate)
			}
		}
	}

	return rates
}

// DetectFeatures returns every feature whose trigger keywords appear
// anywhere in the text, in vocabulary order.
func DetectFeatures(text string) []domain.Feature {
	haystack := strings.ToLower(text)
	matched := []domain.Feature{}
	for _, feature := range domain.AllFeatures {
		if containsAny(haystack, FeatureKeywords[feature]) {
			matched = append(matched, feature)
		}
	}
	return matched
}

func containsAny(haystack string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(haystack, keyword) {
			return true
		}
	}
	return false
}
