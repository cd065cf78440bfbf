package pricing

import (
	"fmt"
	"math"
	"strings"
)

// Money represents a monetary value stored in minor units.
type Money = int64

// Subtotal computes the amount for a line of qty units at the given rate.
func Subtotal(qty int, rate Money) Money {
	if qty <= 0 || rate <= 0 {
		return 0
	}
	return Money(qty) * rate
}

// FromDecimal converts a decimal major-unit amount (e.g. a KES value from a
// request payload) into minor units, rounding to the nearest cent.
func FromDecimal(v float64) (Money, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("amount is not a number")
	}
	if v < 0 {
		return 0, fmt.Errorf("amount must not be negative")
	}
	return Money(math.Round(v * 100)), nil
}

// Decimal converts minor units back to a major-unit float for JSON payloads.
func Decimal(m Money) float64 {
	return float64(m) / 100
}

// Format renders minor units as a grouped decimal string, e.g. 293000 ->
// "2,930.00". Used by the receipt renderer.
func Format(m Money) string {
	negative := m < 0
	if negative {
		m = -m
	}
	whole := m / 100
	cents := m % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := fmt.Sprintf("%s.%02d", b.String(), cents)
	if negative {
		return "-" + out
	}
	return out
}
