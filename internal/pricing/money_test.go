package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-duka/internal/pricing"
)

func TestSubtotal(t *testing.T) {
	require.Equal(t, pricing.Money(500), pricing.Subtotal(5, 100))
	require.Equal(t, pricing.Money(0), pricing.Subtotal(0, 100))
	require.Equal(t, pricing.Money(0), pricing.Subtotal(-3, 100))
	require.Equal(t, pricing.Money(0), pricing.Subtotal(5, 0))
}

func TestFromDecimal(t *testing.T) {
	m, err := pricing.FromDecimal(2930)
	require.NoError(t, err)
	require.Equal(t, pricing.Money(293000), m)

	m, err = pricing.FromDecimal(10.555)
	require.NoError(t, err)
	require.Equal(t, pricing.Money(1056), m)

	_, err = pricing.FromDecimal(-1)
	require.Error(t, err)
}

func TestFormat(t *testing.T) {
	cases := []struct {
		amount pricing.Money
		want   string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{293000, "2,930.00"},
		{109500, "1,095.00"},
		{123456789, "1,234,567.89"},
		{-5300, "-53.00"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, pricing.Format(tc.amount))
	}
}
