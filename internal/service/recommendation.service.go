package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"perkly/internal"
	"perkly/internal/db/models/postgres/public/model"
	"perkly/internal/domain"
	"perkly/internal/logger"
	"perkly/internal/repository"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// FeatureBonusWeight is the flat score bonus per matched feature. It
// makes qualitative perks commensurable with cashback estimates; there
// is no derived "right" value, tune as needed.
const FeatureBonusWeight = 15.0

// SalaryTierDivisor converts a minimum-salary threshold into a fallback
// tier score for cards with no published cashback rate.
const SalaryTierDivisor = 1000.0

const (
	NoMatchFilterReason      = "No cards match that category or partner yet."
	NoMatchEligibilityReason = "No cards match your income or annual fee preference."
)

type RecommendationService interface {
	Recommend(ctx context.Context, in RecommendInput) (*RecommendResult, error)
}

type RecommendInput struct {
	Category          string
	SubCategory       string
	Program           string
	Income            float64
	AnnualFeeOk       bool
	Spend             domain.SpendProfile
	RequestedFeatures []domain.Feature
}

// RecommendResult carries either the top card with its score breakdown
// or a NoMatchReason. Exactly one of Card / NoMatchReason is set.
type RecommendResult struct {
	Card              *model.Card
	Score             float64
	CashbackValue     decimal.Decimal
	MatchedFeatures   []domain.Feature
	AvailableFeatures []domain.Feature
	ScoreSummary      *domain.ScoreSummary
	NoMatchReason     *string
}

type recommendationServiceHandler struct {
	CardRepository repository.CardRepository
}

func NewRecommendationService(cardRepository repository.CardRepository) RecommendationService {
	return recommendationServiceHandler{
		CardRepository: cardRepository,
	}
}

func (h recommendationServiceHandler) Recommend(ctx context.Context, in RecommendInput) (*RecommendResult, error) {
	log := logger.FromContext(ctx)

	cards, err := h.CardRepository.List(repository.CardFilters{
		Category:    in.Category,
		SubCategory: in.SubCategory,
		Program:     in.Program,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	if len(cards) == 0 {
		reason := NoMatchFilterReason
		return &RecommendResult{NoMatchReason: &reason}, nil
	}

	eligible := eligibleCards(cards, in.Income, in.AnnualFeeOk)
	if len(eligible) == 0 {
		reason := NoMatchEligibilityReason
		return &RecommendResult{NoMatchReason: &reason}, nil
	}

	type rankedCard struct {
		card   model.Card
		result domain.ScoreResult
	}
	ranked := make([]rankedCard, 0, len(eligible))
	scores := make([]float64, 0, len(eligible))
	for _, card := range eligible {
		result := scoreCard(card, in.Category, in.Spend, in.RequestedFeatures)
		ranked = append(ranked, rankedCard{card: card, result: result})
		scores = append(scores, result.Score)
	}

	// stable sort keeps catalog order on score ties
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].result.Score > ranked[j].result.Score
	})

	best := ranked[0]
	log.Infow("selected card",
		"product", best.card.Product,
		"score", best.result.Score,
		"candidates", len(eligible),
	)

	return &RecommendResult{
		Card:              &best.card,
		Score:             best.result.Score,
		CashbackValue:     best.result.CashbackValue,
		MatchedFeatures:   best.result.MatchedFeatures,
		AvailableFeatures: best.result.AvailableFeatures,
		ScoreSummary:      scoreSummary(scores),
	}, nil
}

// eligibleCards applies the hard pass/fail gates before scoring. An
// unspecified income (0) or missing salary threshold never excludes.
func eligibleCards(cards []model.Card, income float64, annualFeeOk bool) []model.Card {
	eligible := []model.Card{}
	for _, card := range cards {
		if income > 0 && card.MinimumSalary > 0 && income < card.MinimumSalary {
			continue
		}
		if !annualFeeOk && card.AnnualFee > 0 {
			continue
		}
		eligible = append(eligible, card)
	}
	return eligible
}

func scoreCard(card model.Card, category string, spend domain.SpendProfile, requestedFeatures []domain.Feature) domain.ScoreResult {
	textBlock := strings.Join([]string{
		card.CorePerks,
		card.SecondaryPerks,
		card.ExtraPerks,
		card.CardType,
		card.Product,
	}, " ")

	rates := internal.ExtractCashbackRates(textBlock)
	cashbackValue := internal.EstimateCashbackValue(category, spend, rates)
	available := internal.DetectFeatures(textBlock)
	matched := matchFeatures(available, requestedFeatures)

	featureBonus := float64(len(matched)) * FeatureBonusWeight

	score := cashbackValue.InexactFloat64() + featureBonus
	if !cashbackValue.IsPositive() {
		// cards with no published rate still rank via their
		// premium-tier salary threshold plus feature matches
		score = card.MinimumSalary/SalaryTierDivisor + featureBonus
	}

	return domain.ScoreResult{
		Score:             score,
		CashbackValue:     cashbackValue,
		MatchedFeatures:   matched,
		AvailableFeatures: sortFeatures(available),
	}
}

func matchFeatures(available, requested []domain.Feature) []domain.Feature {
	availableSet := map[domain.Feature]struct{}{}
	for _, feature := range available {
		availableSet[feature] = struct{}{}
	}

	matchedSet := map[domain.Feature]struct{}{}
	for _, feature := range requested {
		name := domain.Feature(strings.TrimSpace(string(feature)))
		if name == "" {
			continue
		}
		if _, ok := availableSet[name]; ok {
			matchedSet[name] = struct{}{}
		}
	}

	matched := make([]domain.Feature, 0, len(matchedSet))
	for feature := range matchedSet {
		matched = append(matched, feature)
	}
	return sortFeatures(matched)
}

func sortFeatures(features []domain.Feature) []domain.Feature {
	sort.Slice(features, func(i, j int) bool {
		return features[i] < features[j]
	})
	return features
}

func scoreSummary(scores []float64) *domain.ScoreSummary {
	mean, err := stats.Mean(scores)
	if err != nil {
		return nil
	}
	median, err := stats.Median(scores)
	if err != nil {
		return nil
	}
	return &domain.ScoreSummary{
		Mean:       mean,
		Median:     median,
		Candidates: len(scores),
	}
}
