package tax

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// Round2 redondea a céntimos (mitad hacia arriba para importes positivos).
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// RateFraction convierte un porcentaje (21) a fracción (0.21).
func RateFraction(rate decimal.Decimal) decimal.Decimal {
	return rate.Div(hundred)
}

// FromFloat convierte un float64 a decimal rechazando NaN e Inf.
// Es la frontera para llamadores que todavía manejan importes en coma flotante.
func FromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, ErrNonFiniteAmount
	}
	return decimal.NewFromFloat(f), nil
}

// ValidateRates comprueba signo de los porcentajes y que el denominador
// 1 + (iva - retención)/100 sea positivo.
func ValidateRates(vatRate, withholdingRate decimal.Decimal) error {
	if vatRate.IsNegative() || withholdingRate.IsNegative() {
		return ErrNegativeRate
	}
	if !denominator(vatRate, withholdingRate).IsPositive() {
		return ErrDegenerateRates
	}
	return nil
}

func denominator(vatRate, withholdingRate decimal.Decimal) decimal.Decimal {
	return one.Add(RateFraction(vatRate)).Sub(RateFraction(withholdingRate))
}
