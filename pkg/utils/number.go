package utils

import (
	"math"
	"strconv"
	"strings"
)

// RoundWithTwoDecimalPlace rounds half to even, so exact .005 ties in the
// binary representation land on the even cent.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.RoundToEven(f*100) / 100
}

// FormatUSD renders an amount as "$1,234,567.89"
func FormatUSD(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	fixed := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	return sign + "$" + b.String() + "." + fracPart
}
