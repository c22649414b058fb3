package tax

import "github.com/shopspring/decimal"

// Breakdown es el desglose de un total: base imponible, cuota de IVA y cuota de retención.
type Breakdown struct {
	Base              decimal.Decimal
	VATAmount         decimal.Decimal
	WithholdingAmount decimal.Decimal
}

// Total recompone base + IVA - retención.
func (b Breakdown) Total() decimal.Decimal {
	return b.Base.Add(b.VATAmount).Sub(b.WithholdingAmount)
}

// ComputeBaseAndTaxes obtiene base, IVA y retención a partir del total y los porcentajes.
//
// Se resuelve total = base + base*iva/100 - base*ret/100, es decir
//
//	base = total / (1 + iva/100 - ret/100)
//
// La base se redondea primero a céntimos y las cuotas se calculan sobre la base ya
// redondeada, igual que aparecen en una factura. El total recompuesto puede diferir
// del original en un céntimo.
//
// Sin retención, la cuota de IVA es total - base para que la suma cuadre exacta.
func ComputeBaseAndTaxes(total, vatRate, withholdingRate decimal.Decimal) (Breakdown, error) {
	if err := ValidateRates(vatRate, withholdingRate); err != nil {
		return Breakdown{}, err
	}

	if withholdingRate.IsZero() {
		base := Round2(total.Div(one.Add(RateFraction(vatRate))))
		return Breakdown{
			Base:              base,
			VATAmount:         Round2(total.Sub(base)),
			WithholdingAmount: decimal.Zero,
		}, nil
	}

	base := Round2(total.Div(denominator(vatRate, withholdingRate)))
	return Breakdown{
		Base:              base,
		VATAmount:         Round2(base.Mul(RateFraction(vatRate))),
		WithholdingAmount: Round2(base.Mul(RateFraction(withholdingRate))),
	}, nil
}
