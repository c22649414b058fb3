package tax

import "github.com/shopspring/decimal"

// WithholdingSignal es una indicación orientativa, nunca una determinación fiscal.
type WithholdingSignal bool

const (
	WithholdingUnlikely WithholdingSignal = false
	WithholdingLikely   WithholdingSignal = true
)

// Likely indica si probablemente se aplicó retención.
func (s WithholdingSignal) Likely() bool { return bool(s) }

func (s WithholdingSignal) String() string {
	if s {
		return "likely"
	}
	return "unlikely"
}

// Factores combinados habituales: IVA 21% con IRPF 15% y con IRPF 7%.
var commonCombinedFactors = []decimal.Decimal{
	decimal.RequireFromString("1.06"),
	decimal.RequireFromString("1.14"),
}

// Rangos de céntimos típicos de un total con IVA sumado y retención restada.
var withholdingCentBands = [][2]decimal.Decimal{
	{decimal.NewFromInt(5), decimal.NewFromInt(10)},
	{decimal.NewFromInt(30), decimal.NewFromInt(35)},
	{decimal.NewFromInt(55), decimal.NewFromInt(60)},
	{decimal.NewFromInt(80), decimal.NewFromInt(85)},
}

// LooksLikeWithholdingApplied estima, solo con el total, si ya lleva una retención descontada.
// Heurística: falsos positivos y negativos son esperables.
func LooksLikeWithholdingApplied(total decimal.Decimal) WithholdingSignal {
	if total.IsNegative() {
		return WithholdingUnlikely
	}
	if hasWholeBase(total) {
		return WithholdingLikely
	}
	// Mod en decimal: IntPart desborda int64 con totales muy grandes.
	cents := total.Mul(hundred).Round(0).Mod(hundred)
	for _, band := range withholdingCentBands {
		if cents.GreaterThanOrEqual(band[0]) && cents.LessThanOrEqual(band[1]) {
			return WithholdingLikely
		}
	}
	return WithholdingUnlikely
}

// hasWholeBase: el total sale de una base entera con alguna combinación habitual.
func hasWholeBase(total decimal.Decimal) bool {
	for _, factor := range commonCombinedFactors {
		base := Round2(total.Div(factor))
		if !base.IsPositive() || !base.Equal(base.Truncate(0)) {
			continue
		}
		if Round2(base.Mul(factor)).Equal(Round2(total)) {
			return true
		}
	}
	return false
}
