package tax

import "github.com/shopspring/decimal"

// ComputeBase reconstruye la base imponible a partir del total y de los importes
// ya conocidos de IVA y retención: base = total - iva + retención.
// No redondea ni valida signos; si las entradas están en céntimos, la base también.
func ComputeBase(total, vatAmount, withholdingAmount decimal.Decimal) decimal.Decimal {
	return total.Sub(vatAmount).Add(withholdingAmount)
}
