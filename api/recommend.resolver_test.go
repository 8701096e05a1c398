package api

import (
	"testing"

	"perkly/internal/db/models/postgres/public/model"
	"perkly/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_parseSpendProfile(t *testing.T) {
	t.Run("valid buckets", func(t *testing.T) {
		spend, err := parseSpendProfile(map[string]float64{
			"travel":  1000,
			"foreign": 250.5,
		})
		require.NoError(t, err)
		require.True(t, spend.Get(domain.SpendBucketTravel).Equal(decimal.NewFromInt(1000)))
		require.True(t, spend.Get(domain.SpendBucketForeign).Equal(decimal.NewFromFloat(250.5)))
	})

	t.Run("unknown bucket is rejected", func(t *testing.T) {
		_, err := parseSpendProfile(map[string]float64{
			"groceries": 100,
		})
		require.Error(t, err)
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		_, err := parseSpendProfile(map[string]float64{
			"fuel": -50,
		})
		require.Error(t, err)
	})

	t.Run("nil map is an empty profile", func(t *testing.T) {
		spend, err := parseSpendProfile(nil)
		require.NoError(t, err)
		require.True(t, spend.Total().IsZero())
	})
}

func Test_newCardResponse(t *testing.T) {
	card := model.Card{
		CardID:       7,
		CardCategory: "Travel",
		SubCategory:  "Airline",
		Program:      "Skywards",
		BankName:     "Emirates NBD",
		Product:      "Skywards Signature",
		AnnualFee:    700,
		CorePerks:    "2% cashback on flights",
	}

	response := newCardResponse(card)
	require.Equal(t, int32(7), response.ID)
	require.Equal(t, "Skywards Signature", response.Product)
	require.Equal(t, "Emirates NBD", response.BankName)
	require.Equal(t, 700.0, response.AnnualFee)
}
