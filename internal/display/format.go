// Package display holds the pure presentation helpers shared by every card
// and gallery view: currency text, discount math, name abbreviation and
// image URL resolution.
package display

import (
	"math"
	"strconv"
	"strings"
)

// Currency renders a price in the pt-BR convention: "R$ 1.234,50".
// Non-finite inputs render as zero.
func Currency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	neg := v < 0
	cents := int64(math.Round(math.Abs(v) * 100))
	whole := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	b.WriteString("R$ ")
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	b.WriteByte(',')
	if frac < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(frac, 10))
	return b.String()
}

// DiscountPercent is round((list-sale)/list*100). It is total: a non-positive
// or non-finite list price yields 0 rather than dividing by zero.
func DiscountPercent(list, sale float64) int {
	if list <= 0 || math.IsNaN(list) || math.IsInf(list, 0) || math.IsNaN(sale) || math.IsInf(sale, 0) {
		return 0
	}
	return int(math.Round((list - sale) / list * 100))
}

// SavingsAmount is the absolute saving shown under sale prices, clamped at 0.
func SavingsAmount(list, sale float64) float64 {
	if math.IsNaN(list) || math.IsNaN(sale) {
		return 0
	}
	if d := list - sale; d > 0 {
		return d
	}
	return 0
}

// AbbreviateName keeps the first maxWords whitespace-separated tokens of a
// product name for card display. Shorter names pass through unchanged.
func AbbreviateName(name string, maxWords int) string {
	if maxWords <= 0 {
		maxWords = 4
	}
	words := strings.Fields(name)
	if len(words) <= maxWords {
		return name
	}
	return strings.Join(words[:maxWords], " ")
}
