package internal

import (
	"testing"

	"perkly/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func Test_ExtractCashbackRates(t *testing.T) {
	t.Run("classifies rates per line", func(t *testing.T) {
		rates := ExtractCashbackRates("5% cashback on all other spends\n2% back on flights")
		require.Equal(t, 2.0, rates.Travel)
		require.Equal(t, 5.0, rates.OtherSpend)
		require.Equal(t, 0.0, rates.General)
	})

	t.Run("keeps the max per category, not the sum", func(t *testing.T) {
		rates := ExtractCashbackRates("3% cashback on dining\n4% cashback on dining")
		require.Equal(t, 4.0, rates.General)
	})

	t.Run("travel keywords win over other-spend keywords", func(t *testing.T) {
		rates := ExtractCashbackRates("6% cashback on hotel and all other spends")
		require.Equal(t, 6.0, rates.Travel)
		require.Equal(t, 0.0, rates.OtherSpend)
	})

	t.Run("case insensitive with loose whitespace", func(t *testing.T) {
		rates := ExtractCashbackRates("10 % CASHBACK on Booking.com")
		require.Equal(t, 10.0, rates.Travel)
	})

	t.Run("decimal rates", func(t *testing.T) {
		rates := ExtractCashbackRates("1.5% back on all other domestic spend")
		require.Equal(t, 1.5, rates.OtherSpend)
	})

	t.Run("empty text yields zero rates", func(t *testing.T) {
		require.Equal(t, domain.CashbackRates{}, ExtractCashbackRates(""))
	})

	t.Run("percent without cashback wording is ignored", func(t *testing.T) {
		require.Equal(t, domain.CashbackRates{}, ExtractCashbackRates("3% interest on balances"))
	})
}

func Test_DetectFeatures(t *testing.T) {
	t.Run("matches multiple features", func(t *testing.T) {
		features := DetectFeatures("Complimentary airport lounge access and 2-for-1 movie tickets at VOX")
		expected := []domain.Feature{
			domain.FeatureCinemaOffers,
			domain.FeatureAirportLoungeAccess,
		}
		require.Empty(t, cmp.Diff(expected, features))
	})

	t.Run("empty text yields no features", func(t *testing.T) {
		require.Empty(t, DetectFeatures(""))
	})

	t.Run("appending unrelated text never removes a feature", func(t *testing.T) {
		base := "valet parking at select malls"
		before := DetectFeatures(base)
		after := DetectFeatures(base + "\nterms and conditions apply to all offers")
		require.Subset(t, after, before)
	})
}
