package api

import (
	"fmt"

	"perkly/internal/db/models/postgres/public/model"
	"perkly/internal/domain"
	"perkly/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type recommendRequest struct {
	Category    string             `json:"category"`
	SubCategory string             `json:"sub_category"`
	Program     string             `json:"program"`
	Income      *float64           `json:"income"`
	AnnualFeeOk *bool              `json:"annual_fee_ok"`
	Spend       map[string]float64 `json:"spend"`
	Features    []string           `json:"features"`
}

type cardResponse struct {
	ID               int32   `json:"id"`
	CardCategory     string  `json:"card_category"`
	SubCategory      string  `json:"sub_category"`
	Program          string  `json:"program"`
	BankName         string  `json:"bank_name"`
	Product          string  `json:"product"`
	MinimumSalary    float64 `json:"minimum_salary"`
	AnnualFee        float64 `json:"annual_fee"`
	ValueMetric      string  `json:"value_metric"`
	ValueCalculation string  `json:"value_calculation"`
	CorePerks        string  `json:"core_perks"`
	SecondaryPerks   string  `json:"secondary_perks"`
	ExtraPerks       string  `json:"extra_perks"`
	CardType         string  `json:"card_type"`
	CurrentOffer     string  `json:"current_offer"`
	ProductPage      string  `json:"product_page"`
}

type recommendResponse struct {
	Card              *cardResponse        `json:"card"`
	Reason            *string              `json:"reason,omitempty"`
	Score             *float64             `json:"score,omitempty"`
	CashbackValue     *float64             `json:"cashback_value,omitempty"`
	MatchedFeatures   []domain.Feature     `json:"matched_features,omitempty"`
	AvailableFeatures []domain.Feature     `json:"available_features,omitempty"`
	ScoreSummary      *domain.ScoreSummary `json:"score_summary,omitempty"`
}

func newCardResponse(card model.Card) *cardResponse {
	return &cardResponse{
		ID:               card.CardID,
		CardCategory:     card.CardCategory,
		SubCategory:      card.SubCategory,
		Program:          card.Program,
		BankName:         card.BankName,
		Product:          card.Product,
		MinimumSalary:    card.MinimumSalary,
		AnnualFee:        card.AnnualFee,
		ValueMetric:      card.ValueMetric,
		ValueCalculation: card.ValueCalculation,
		CorePerks:        card.CorePerks,
		SecondaryPerks:   card.SecondaryPerks,
		ExtraPerks:       card.ExtraPerks,
		CardType:         card.CardType,
		CurrentOffer:     card.CurrentOffer,
		ProductPage:      card.ProductPage,
	}
}

func parseSpendProfile(spend map[string]float64) (domain.SpendProfile, error) {
	out := domain.SpendProfile{}
	for name, amount := range spend {
		bucket, err := domain.ParseSpendBucket(name)
		if err != nil {
			return nil, err
		}
		if amount < 0 {
			return nil, fmt.Errorf("spend for %s must be >= 0", name)
		}
		out[bucket] = decimal.NewFromFloat(amount)
	}
	return out, nil
}

func (m ApiHandler) recommend(c *gin.Context) {
	var requestBody recommendRequest

	// malformed input fails fast - silently coercing income or spend
	// to zero would corrupt the eligibility filter
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	income := 0.0
	if requestBody.Income != nil {
		income = *requestBody.Income
	}
	if income < 0 {
		returnErrorJsonCode(fmt.Errorf("income must be >= 0"), c, 400)
		return
	}

	annualFeeOk := true
	if requestBody.AnnualFeeOk != nil {
		annualFeeOk = *requestBody.AnnualFeeOk
	}

	spend, err := parseSpendProfile(requestBody.Spend)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	requestedFeatures := make([]domain.Feature, 0, len(requestBody.Features))
	for _, feature := range requestBody.Features {
		requestedFeatures = append(requestedFeatures, domain.Feature(feature))
	}

	result, err := m.RecommendationService.Recommend(c, service.RecommendInput{
		Category:          requestBody.Category,
		SubCategory:       requestBody.SubCategory,
		Program:           requestBody.Program,
		Income:            income,
		AnnualFeeOk:       annualFeeOk,
		Spend:             spend,
		RequestedFeatures: requestedFeatures,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	if result.NoMatchReason != nil {
		c.JSON(200, recommendResponse{
			Card:   nil,
			Reason: result.NoMatchReason,
		})
		return
	}

	score := result.Score
	cashbackValue := result.CashbackValue.InexactFloat64()
	c.JSON(200, recommendResponse{
		Card:              newCardResponse(*result.Card),
		Score:             &score,
		CashbackValue:     &cashbackValue,
		MatchedFeatures:   result.MatchedFeatures,
		AvailableFeatures: result.AvailableFeatures,
		ScoreSummary:      result.ScoreSummary,
	})
}
