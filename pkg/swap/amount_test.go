package swap_test

import (
	"testing"

	"htlc-swap/pkg/swap"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestValidateAmount(t *testing.T) {
	valid := []struct {
		name     string
		amount   string
		expected string
	}{
		{name: "one", amount: "1", expected: "1"},
		{name: "hundred", amount: "100", expected: "100"},
		{name: "beyond int64", amount: "123456789012345678901234567890", expected: "123456789012345678901234567890"},
	}
	for _, tt := range valid {
		t.Run(tt.name, func(t *testing.T) {
			got, err := swap.ValidateAmount(tt.amount)
			require.NoError(t, err)
			require.True(t, decimal.RequireFromString(tt.expected).Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}

	invalid := []struct {
		name   string
		amount string
	}{
		{name: "zero", amount: "0"},
		{name: "negative", amount: "-5"},
		{name: "not a number", amount: "abc"},
		{name: "fraction", amount: "1.5"},
		{name: "empty", amount: ""},
		{name: "nan", amount: "NaN"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := swap.ValidateAmount(tt.amount)
			require.ErrorIs(t, err, swap.ErrInvalidAmount)
		})
	}
}
