package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_NormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims whitespace", " Gold ", "Gold"},
		{"empty stays empty", "", ""},
		{"nan placeholder", "NaN", ""},
		{"none placeholder", "none", ""},
		{"zero placeholder", "0", ""},
		{"real value untouched", "Platinum Elite", "Platinum Elite"},
		{"zero inside value kept", "Tier 0 Card", "Tier 0 Card"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NormalizeText(tt.input))
		})
	}
}

func Test_ParseNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"currency prefix and commas", "AED 1,250.50", 1250.50},
		{"clean float", "1250.5", 1250.5},
		{"empty", "", 0},
		{"pure text", "free for life", 0},
		{"multiple dots is invalid", "12.3.4", 0},
		{"integer", "5000", 5000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ParseNumber(tt.input))
		})
	}

	t.Run("idempotent on clean floats", func(t *testing.T) {
		first := ParseNumber("AED 1,250.50")
		second := ParseNumber("1250.5")
		require.Equal(t, first, second)
	})
}
