package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeRatio divide numerator por denominator, retornando 0 quando o denominador não é positivo
func SafeRatio(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}

	return numerator / denominator
}

// Money arredonda um valor monetário para duas casas decimais
func Money(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}
