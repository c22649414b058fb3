package taxes

import (
	"fmt"

	"github.com/jhoicas/Impuestos-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Límites de entrada. Un exponente sin acotar obliga a construir big.Int
// de millones de dígitos al redondear o dividir.
const (
	minExponent = -10
	maxExponent = 15
)

var (
	maxAmount = decimal.New(1, maxExponent)
	maxRate   = decimal.NewFromInt(100)
)

// inScale se comprueba antes que cualquier comparación: Cmp reescala al exponente menor.
func inScale(d decimal.Decimal) bool {
	return d.Exponent() >= minExponent && d.Exponent() <= maxExponent
}

func checkAmount(field string, d decimal.Decimal) error {
	if !inScale(d) || d.Abs().GreaterThan(maxAmount) {
		return fmt.Errorf("%w: %s fuera de rango", domain.ErrInvalidInput, field)
	}
	return nil
}

// checkRate solo acota por arriba; los negativos los rechaza el motor con su propio error.
func checkRate(field string, r decimal.Decimal) error {
	if !inScale(r) || r.GreaterThan(maxRate) {
		return fmt.Errorf("%w: %s fuera de rango", domain.ErrInvalidInput, field)
	}
	return nil
}

func checkDecompose(total, vatRate, withholdingRate decimal.Decimal) error {
	if err := checkAmount("total", total); err != nil {
		return err
	}
	if err := checkRate("vat_rate", vatRate); err != nil {
		return err
	}
	return checkRate("withholding_rate", withholdingRate)
}
