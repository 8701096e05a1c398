package internal

import (
	"strings"

	"perkly/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// EstimateCashbackValue computes the monetary benefit of holding a card
// for the selected category, given the user's spend profile and the
// card's extracted rates.
//
// Travel cards are valued against travel + foreign spend only, since
// travel-branded rates typically apply to just that spend. Everything
// else takes the single best rate against a category-scoped base.
func EstimateCashbackValue(category string, spend domain.SpendProfile, rates domain.CashbackRates) decimal.Decimal {
	categoryKey := strings.ToLower(strings.TrimSpace(category))

	if categoryKey == "travel" {
		baseSpend := spend.Get(domain.SpendBucketTravel).Add(spend.Get(domain.SpendBucketForeign))
		if rates.Travel > 0 {
			return applyRate(baseSpend, rates.Travel)
		}
		if rates.General > 0 {
			return applyRate(baseSpend, rates.General)
		}
		return decimal.Zero
	}

	baseSpend := spend.Total()
	if categoryKey == "shopping" {
		baseSpend = spend.Get(domain.SpendBucketRetail)
	}

	bestRate, err := stats.Max([]float64{rates.Travel, rates.OtherSpend, rates.General})
	if err != nil || bestRate <= 0 {
		return decimal.Zero
	}

	return applyRate(baseSpend, bestRate)
}

func applyRate(baseSpend decimal.Decimal, rate float64) decimal.Decimal {
	return baseSpend.Mul(decimal.NewFromFloat(rate)).Div(decimal.NewFromInt(100))
}
