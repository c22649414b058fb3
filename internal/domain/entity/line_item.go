package entity

import (
	"github.com/jhoicas/Impuestos-api/internal/domain/tax"
	"github.com/shopspring/decimal"
)

// LineItem representa una línea de factura, presupuesto o gasto de la que solo se conoce
// el total y los porcentajes de IVA y retención.
type LineItem struct {
	Description     string
	Total           decimal.Decimal
	VATRate         decimal.Decimal // porcentaje (21 = 21%)
	WithholdingRate decimal.Decimal // porcentaje (15 = 15%); cero = sin retención
}

// Decompose obtiene base, IVA y retención de la línea.
func (l LineItem) Decompose() (tax.Breakdown, error) {
	return tax.ComputeBaseAndTaxes(l.Total, l.VATRate, l.WithholdingRate)
}

// RateKey identifica la combinación de porcentajes para el resumen por tipos.
func (l LineItem) RateKey() string {
	return l.VATRate.String() + "/" + l.WithholdingRate.String()
}
