package internal

import (
	"testing"

	"perkly/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func spendOf(amounts map[domain.SpendBucket]int64) domain.SpendProfile {
	spend := domain.SpendProfile{}
	for bucket, amount := range amounts {
		spend[bucket] = decimal.NewFromInt(amount)
	}
	return spend
}

func Test_EstimateCashbackValue(t *testing.T) {
	t.Run("travel uses travel rate against travel plus foreign spend", func(t *testing.T) {
		spend := spendOf(map[domain.SpendBucket]int64{
			domain.SpendBucketTravel:  1000,
			domain.SpendBucketForeign: 500,
		})
		value := EstimateCashbackValue("travel", spend, domain.CashbackRates{Travel: 2})
		require.True(t, value.Equal(decimal.NewFromInt(30)), "got %s", value)
	})

	t.Run("travel falls back to general rate", func(t *testing.T) {
		spend := spendOf(map[domain.SpendBucket]int64{
			domain.SpendBucketTravel: 1000,
		})
		value := EstimateCashbackValue("Travel", spend, domain.CashbackRates{General: 3})
		require.True(t, value.Equal(decimal.NewFromInt(30)), "got %s", value)
	})

	t.Run("travel with no usable rate is zero", func(t *testing.T) {
		spend := spendOf(map[domain.SpendBucket]int64{
			domain.SpendBucketTravel: 1000,
		})
		value := EstimateCashbackValue("travel", spend, domain.CashbackRates{OtherSpend: 5})
		require.True(t, value.IsZero())
	})

	t.Run("shopping scopes base to retail spend", func(t *testing.T) {
		spend := spendOf(map[domain.SpendBucket]int64{
			domain.SpendBucketRetail: 2000,
			domain.SpendBucketFuel:   9999,
		})
		value := EstimateCashbackValue("shopping", spend, domain.CashbackRates{General: 3})
		require.True(t, value.Equal(decimal.NewFromInt(60)), "got %s", value)
	})

	t.Run("cashback uses total spend with best rate", func(t *testing.T) {
		spend := spendOf(map[domain.SpendBucket]int64{
			domain.SpendBucketRetail:    1000,
			domain.SpendBucketUtilities: 1000,
		})
		value := EstimateCashbackValue("cashback", spend, domain.CashbackRates{Travel: 1, OtherSpend: 4, General: 2})
		require.True(t, value.Equal(decimal.NewFromInt(80)), "got %s", value)
	})

	t.Run("unknown category behaves like cashback", func(t *testing.T) {
		spend := spendOf(map[domain.SpendBucket]int64{
			domain.SpendBucketFuel: 500,
		})
		value := EstimateCashbackValue("  Lifestyle  ", spend, domain.CashbackRates{General: 2})
		require.True(t, value.Equal(decimal.NewFromInt(10)), "got %s", value)
	})

	t.Run("no rates means no value", func(t *testing.T) {
		spend := spendOf(map[domain.SpendBucket]int64{
			domain.SpendBucketRetail: 2000,
		})
		value := EstimateCashbackValue("rewards", spend, domain.CashbackRates{})
		require.True(t, value.IsZero())
	})
}
