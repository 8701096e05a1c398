package service

import (
	"context"
	"testing"

	"perkly/internal/db/models/postgres/public/model"
	"perkly/internal/domain"
	"perkly/internal/repository"
	mock_repository "perkly/internal/repository/mocks"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_recommendationServiceHandler_Recommend(t *testing.T) {
	t.Run("recommends the only eligible card with its score", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cardRepository := mock_repository.NewMockCardRepository(ctrl)

		handler := recommendationServiceHandler{
			CardRepository: cardRepository,
		}

		cardRepository.EXPECT().
			List(repository.CardFilters{Category: "Travel"}).
			Return([]model.Card{
				{
					CardID:        1,
					CardCategory:  "Travel",
					Product:       "Skyward Miles Card",
					CorePerks:     "2% cashback on flights",
					MinimumSalary: 5000,
				},
			}, nil)

		result, err := handler.Recommend(context.Background(), RecommendInput{
			Category:    "Travel",
			Income:      6000,
			AnnualFeeOk: true,
			Spend: domain.SpendProfile{
				domain.SpendBucketTravel: decimal.NewFromInt(1000),
			},
		})
		require.NoError(t, err)
		require.Nil(t, result.NoMatchReason)
		require.NotNil(t, result.Card)
		require.Equal(t, "Skyward Miles Card", result.Card.Product)
		require.Equal(t, 20.0, result.Score)
		require.True(t, result.CashbackValue.Equal(decimal.NewFromInt(20)))
		require.NotNil(t, result.ScoreSummary)
		require.Equal(t, 1, result.ScoreSummary.Candidates)
	})

	t.Run("no cards for the filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cardRepository := mock_repository.NewMockCardRepository(ctrl)

		handler := recommendationServiceHandler{
			CardRepository: cardRepository,
		}

		cardRepository.EXPECT().
			List(repository.CardFilters{Category: "Nonexistent"}).
			Return([]model.Card{}, nil)

		result, err := handler.Recommend(context.Background(), RecommendInput{
			Category:    "Nonexistent",
			AnnualFeeOk: true,
		})
		require.NoError(t, err)
		require.Nil(t, result.Card)
		require.NotNil(t, result.NoMatchReason)
		require.Equal(t, "No cards match that category or partner yet.", *result.NoMatchReason)
	})

	t.Run("income below every salary threshold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cardRepository := mock_repository.NewMockCardRepository(ctrl)

		handler := recommendationServiceHandler{
			CardRepository: cardRepository,
		}

		cardRepository.EXPECT().
			List(gomock.Any()).
			Return([]model.Card{
				{Product: "Platinum", MinimumSalary: 10000},
			}, nil)

		result, err := handler.Recommend(context.Background(), RecommendInput{
			Income:      8000,
			AnnualFeeOk: true,
		})
		require.NoError(t, err)
		require.Nil(t, result.Card)
		require.Equal(t, NoMatchEligibilityReason, *result.NoMatchReason)
	})

	t.Run("unspecified income never excludes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cardRepository := mock_repository.NewMockCardRepository(ctrl)

		handler := recommendationServiceHandler{
			CardRepository: cardRepository,
		}

		cardRepository.EXPECT().
			List(gomock.Any()).
			Return([]model.Card{
				{Product: "Platinum", MinimumSalary: 10000},
			}, nil)

		result, err := handler.Recommend(context.Background(), RecommendInput{
			Income:      0,
			AnnualFeeOk: true,
		})
		require.NoError(t, err)
		require.NotNil(t, result.Card)
	})

	t.Run("annual fee rejection filters paid cards", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cardRepository := mock_repository.NewMockCardRepository(ctrl)

		handler := recommendationServiceHandler{
			CardRepository: cardRepository,
		}

		cardRepository.EXPECT().
			List(gomock.Any()).
			Return([]model.Card{
				{Product: "Paid Card", AnnualFee: 300},
				{Product: "Free Card"},
			}, nil)

		result, err := handler.Recommend(context.Background(), RecommendInput{
			AnnualFeeOk: false,
		})
		require.NoError(t, err)
		require.NotNil(t, result.Card)
		require.Equal(t, "Free Card", result.Card.Product)
	})

	t.Run("score ties keep catalog order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cardRepository := mock_repository.NewMockCardRepository(ctrl)

		handler := recommendationServiceHandler{
			CardRepository: cardRepository,
		}

		cardRepository.EXPECT().
			List(gomock.Any()).
			Return([]model.Card{
				{Product: "Alpha Card", MinimumSalary: 5000},
				{Product: "Beta Card", MinimumSalary: 5000},
			}, nil)

		result, err := handler.Recommend(context.Background(), RecommendInput{
			AnnualFeeOk: true,
		})
		require.NoError(t, err)
		require.Equal(t, "Alpha Card", result.Card.Product)
		require.Equal(t, 5.0, result.Score)
	})
}

func Test_scoreCard(t *testing.T) {
	t.Run("feature bonus adds to cashback value", func(t *testing.T) {
		card := model.Card{
			Product:   "Lifestyle Card",
			CorePerks: "5% cashback on all other spends\nComplimentary airport lounge access",
		}
		spend := domain.SpendProfile{
			domain.SpendBucketRetail: decimal.NewFromInt(1000),
		}

		result := scoreCard(card, "cashback", spend, []domain.Feature{domain.FeatureAirportLoungeAccess})

		require.True(t, result.CashbackValue.Equal(decimal.NewFromInt(50)))
		require.Equal(t, 65.0, result.Score)
		require.Empty(t, cmp.Diff([]domain.Feature{domain.FeatureAirportLoungeAccess}, result.MatchedFeatures))
	})

	t.Run("salary tier fallback when no rate is published", func(t *testing.T) {
		card := model.Card{
			Product:       "Invite Only Card",
			CorePerks:     "Complimentary golf and valet parking",
			MinimumSalary: 30000,
		}

		result := scoreCard(card, "rewards", domain.SpendProfile{}, []domain.Feature{domain.FeatureComplementaryGolf})

		require.True(t, result.CashbackValue.IsZero())
		require.Equal(t, 45.0, result.Score)
		require.Empty(t, cmp.Diff(
			[]domain.Feature{domain.FeatureComplementaryGolf, domain.FeatureValetParking},
			result.AvailableFeatures,
		))
	})

	t.Run("requested features are trimmed and empties dropped", func(t *testing.T) {
		card := model.Card{
			Product:   "Metal Card",
			CorePerks: "Premium metal card with lounge access",
		}

		result := scoreCard(card, "rewards", domain.SpendProfile{}, []domain.Feature{
			" Metal Card ",
			"",
			"Airport Lounge Access",
		})

		require.Empty(t, cmp.Diff(
			[]domain.Feature{domain.FeatureAirportLoungeAccess, domain.FeatureMetalCard},
			result.MatchedFeatures,
		))
		require.Equal(t, 30.0, result.Score)
	})
}
