package tax_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/jhoicas/Impuestos-api/internal/domain/tax"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// assertDecimal compara por valor (100 y 100.00 son iguales).
func assertDecimal(t *testing.T, want, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, want.Equal(got), "esperado %s, obtenido %s %v", want, got, msgAndArgs)
}

var oneCent = d("0.01")

// ── ComputeBase ───────────────────────────────────────────────────────────────

func TestComputeBase_Fixtures(t *testing.T) {
	cases := []struct {
		total, vat, withholding, want string
	}{
		{"121", "21", "0", "100"},
		{"106", "21", "15", "100"},
		{"93.17", "10.17", "7", "90"},
	}
	for _, c := range cases {
		got := tax.ComputeBase(d(c.total), d(c.vat), d(c.withholding))
		assertDecimal(t, d(c.want), got, c)
	}
}

func TestComputeBase_SinRedondeo(t *testing.T) {
	got := tax.ComputeBase(d("10.005"), d("1.001"), d("0.0001"))
	assertDecimal(t, d("9.0041"), got, "la base no se redondea")
}

func TestComputeBase_TotalNegativoSeAceptaAritmeticamente(t *testing.T) {
	got := tax.ComputeBase(d("-121"), d("-21"), decimal.Zero)
	assertDecimal(t, d("-100"), got)
}

func TestComputeBase_EsExacta(t *testing.T) {
	for total := 0; total <= 5000; total += 123 {
		for vat := 0; vat <= 300; vat += 37 {
			for wh := 0; wh <= 200; wh += 41 {
				tot := decimal.New(int64(total), -2)
				v := decimal.New(int64(vat), -2)
				w := decimal.New(int64(wh), -2)
				assertDecimal(t, tot.Sub(v).Add(w), tax.ComputeBase(tot, v, w))
			}
		}
	}
}

// ── ComputeBaseAndTaxes ───────────────────────────────────────────────────────

func TestComputeBaseAndTaxes_Fixtures(t *testing.T) {
	cases := []struct {
		total, vatRate, whRate   string
		base, vatAmount, whAmount string
	}{
		{"121", "21", "0", "100", "21", "0"},
		{"106", "21", "15", "100", "21", "15"},
		{"95", "10", "15", "100", "10", "15"},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%s_%s_%s", c.total, c.vatRate, c.whRate), func(t *testing.T) {
			b, err := tax.ComputeBaseAndTaxes(d(c.total), d(c.vatRate), d(c.whRate))
			require.NoError(t, err)
			assertDecimal(t, d(c.base), b.Base, "base")
			assertDecimal(t, d(c.vatAmount), b.VATAmount, "iva")
			assertDecimal(t, d(c.whAmount), b.WithholdingAmount, "retención")
		})
	}
}

func TestComputeBaseAndTaxes_SinRetencionCuadraExacto(t *testing.T) {
	b, err := tax.ComputeBaseAndTaxes(d("10"), d("21"), decimal.Zero)
	require.NoError(t, err)
	assertDecimal(t, d("8.26"), b.Base)
	assertDecimal(t, d("1.74"), b.VATAmount, "IVA = total - base")
	assert.True(t, b.WithholdingAmount.IsZero())
	assertDecimal(t, d("10"), b.Total())
}

func TestComputeBaseAndTaxes_RedondeaBaseAntesDeCuotas(t *testing.T) {
	// base = 50 / 1.06 = 47.1698... -> 47.17; cuotas sobre 47.17
	b, err := tax.ComputeBaseAndTaxes(d("50"), d("21"), d("15"))
	require.NoError(t, err)
	assertDecimal(t, d("47.17"), b.Base)
	assertDecimal(t, d("9.91"), b.VATAmount)
	assertDecimal(t, d("7.08"), b.WithholdingAmount)
}

func TestComputeBaseAndTaxes_IvaIgualARetencion(t *testing.T) {
	b, err := tax.ComputeBaseAndTaxes(d("80"), d("15"), d("15"))
	require.NoError(t, err)
	assertDecimal(t, d("80"), b.Base, "denominador 1")
	assertDecimal(t, d("12"), b.VATAmount)
	assertDecimal(t, d("12"), b.WithholdingAmount)
}

var rateCombos = [][2]int64{
	{21, 15}, {21, 7}, {10, 15}, {4, 15}, {21, 19}, {0, 15}, {21, 21}, {100, 100},
}

func TestComputeBaseAndTaxes_RecomponeTotalConUnCentimo(t *testing.T) {
	for cents := int64(0); cents <= 200000; cents += 37 {
		total := decimal.New(cents, -2)
		for _, rc := range rateCombos {
			b, err := tax.ComputeBaseAndTaxes(total, decimal.NewFromInt(rc[0]), decimal.NewFromInt(rc[1]))
			require.NoError(t, err)
			diff := b.Total().Sub(total).Abs()
			if !assert.True(t, diff.LessThanOrEqual(oneCent), "total %s iva %d ret %d: %s", total, rc[0], rc[1], b.Total()) {
				return
			}
		}
	}
}

func TestComputeBaseAndTaxes_SoloIvaIdaYVuelta(t *testing.T) {
	for cents := int64(0); cents <= 200000; cents += 41 {
		total := decimal.New(cents, -2)
		for _, vat := range []int64{0, 4, 10, 21, 100} {
			rate := decimal.NewFromInt(vat)
			b, err := tax.ComputeBaseAndTaxes(total, rate, decimal.Zero)
			require.NoError(t, err)
			rebuilt := tax.Round2(b.Base.Mul(decimal.NewFromInt(1).Add(tax.RateFraction(rate))))
			if !assert.True(t, rebuilt.Sub(total).Abs().LessThanOrEqual(oneCent), "total %s iva %d", total, vat) {
				return
			}
		}
	}
}

func TestComputeBaseAndTaxes_RedondeoEstable(t *testing.T) {
	for cents := int64(1); cents <= 100000; cents += 97 {
		first, err := tax.ComputeBaseAndTaxes(decimal.New(cents, -2), d("21"), d("15"))
		require.NoError(t, err)
		again, err := tax.ComputeBaseAndTaxes(first.Base, decimal.Zero, decimal.Zero)
		require.NoError(t, err)
		assertDecimal(t, first.Base, again.Base)
	}
}

func TestComputeBaseAndTaxes_TotalNegativo(t *testing.T) {
	b, err := tax.ComputeBaseAndTaxes(d("-106"), d("21"), d("15"))
	require.NoError(t, err, "las facturas rectificativas tienen total negativo")
	assertDecimal(t, d("-100"), b.Base)
	assertDecimal(t, d("-21"), b.VATAmount)
	assertDecimal(t, d("-15"), b.WithholdingAmount)
}

// ── Errores de validación ─────────────────────────────────────────────────────

func TestComputeBaseAndTaxes_ErrorSiIvaNegativo(t *testing.T) {
	_, err := tax.ComputeBaseAndTaxes(d("100"), d("-21"), decimal.Zero)
	assert.ErrorIs(t, err, tax.ErrNegativeRate)
}

func TestComputeBaseAndTaxes_ErrorSiRetencionNegativa(t *testing.T) {
	_, err := tax.ComputeBaseAndTaxes(d("100"), d("21"), d("-15"))
	assert.ErrorIs(t, err, tax.ErrNegativeRate)
}

func TestComputeBaseAndTaxes_ErrorSiDenominadorCero(t *testing.T) {
	_, err := tax.ComputeBaseAndTaxes(d("100"), decimal.Zero, d("100"))
	assert.ErrorIs(t, err, tax.ErrDegenerateRates)

	_, err = tax.ComputeBaseAndTaxes(d("100"), d("5"), d("120"))
	assert.ErrorIs(t, err, tax.ErrDegenerateRates, "denominador negativo")
}

func TestFromFloat(t *testing.T) {
	v, err := tax.FromFloat(93.17)
	require.NoError(t, err)
	assertDecimal(t, d("93.17"), v)

	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := tax.FromFloat(f)
		assert.ErrorIs(t, err, tax.ErrNonFiniteAmount)
	}
}

// ── LooksLikeWithholdingApplied ───────────────────────────────────────────────

func TestLooksLikeWithholdingApplied_Fixtures(t *testing.T) {
	cases := map[string]bool{
		"106":    true,
		"530":    true,
		"1060":   true,
		"318.32": true,
		"121":    false,
		"100":    false,
		"150":    false,
		"212.45": false,
	}
	for total, want := range cases {
		got := tax.LooksLikeWithholdingApplied(d(total))
		assert.Equal(t, want, got.Likely(), "total %s", total)
	}
}

func TestLooksLikeWithholdingApplied_LimitesDeBandas(t *testing.T) {
	likely := []string{"1.05", "1.10", "7.30", "7.35", "9.55", "9.60", "3.80", "3.85"}
	unlikely := []string{"1.04", "1.11", "7.29", "7.36", "9.53", "9.61", "3.79", "3.86"}
	for _, s := range likely {
		assert.True(t, tax.LooksLikeWithholdingApplied(d(s)).Likely(), s)
	}
	for _, s := range unlikely {
		assert.False(t, tax.LooksLikeWithholdingApplied(d(s)).Likely(), s)
	}
}

func TestLooksLikeWithholdingApplied_CasosLimite(t *testing.T) {
	assert.Equal(t, tax.WithholdingUnlikely, tax.LooksLikeWithholdingApplied(decimal.Zero))
	assert.Equal(t, tax.WithholdingUnlikely, tax.LooksLikeWithholdingApplied(d("-106")))
	assert.Equal(t, tax.WithholdingLikely, tax.LooksLikeWithholdingApplied(d("114")), "IVA 21% + IRPF 7%")
}

func TestLooksLikeWithholdingApplied_TotalesFueraDeInt64(t *testing.T) {
	assert.True(t, tax.LooksLikeWithholdingApplied(d("100000000000000000.07")).Likely())
	assert.True(t, tax.LooksLikeWithholdingApplied(d("9223372036854775807.33")).Likely())
	assert.False(t, tax.LooksLikeWithholdingApplied(d("100000000000000000.20")).Likely())
}

func TestWithholdingSignal_String(t *testing.T) {
	assert.Equal(t, "likely", tax.WithholdingLikely.String())
	assert.Equal(t, "unlikely", tax.WithholdingUnlikely.String())
}
