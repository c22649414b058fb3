package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jhoicas/Impuestos-api/internal/application/dto"
	"github.com/jhoicas/Impuestos-api/internal/application/taxes"
	"github.com/jhoicas/Impuestos-api/internal/cli"
	"github.com/jhoicas/Impuestos-api/internal/domain/tax"
	pkgjwt "github.com/jhoicas/Impuestos-api/pkg/jwt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// run ejecuta taxcalc con los argumentos dados y devuelve la salida.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := cli.NewRootCmd(cli.Options{
		UseCase:    taxes.NewUseCase(taxes.Config{MaxBatchLines: 50, BatchWorkers: 2}, nil),
		Output:     &out,
		JWTSecret:  "secreto",
		JWTIssuer:  "taxcalc-test",
		JWTExpMins: 5,
	})
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	err := root.Execute()
	return out.String(), err
}

func TestBreakdown(t *testing.T) {
	out, err := run(t, "", "breakdown", "--total", "106", "--vat-rate", "21", "--withholding-rate", "15")
	require.NoError(t, err)

	var resp dto.DecomposeResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, d("100").Equal(resp.Base))
	assert.True(t, d("21").Equal(resp.VATAmount))
	assert.True(t, d("15").Equal(resp.WithholdingAmount))
}

func TestBreakdown_RechazaNaN(t *testing.T) {
	_, err := run(t, "", "breakdown", "--total", "NaN", "--vat-rate", "21")
	assert.ErrorIs(t, err, tax.ErrNonFiniteAmount)
}

func TestBase(t *testing.T) {
	out, err := run(t, "", "base", "--total", "93.17", "--vat-amount", "10.17", "--withholding-amount", "7")
	require.NoError(t, err)

	var resp dto.BaseResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, d("90").Equal(resp.Base), "base %s", resp.Base)
}

func TestDetect(t *testing.T) {
	out, err := run(t, "", "detect", "--total", "1060")
	require.NoError(t, err)

	var resp dto.DetectResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.Likely)
}

func TestBatch_DesdeStdin(t *testing.T) {
	csv := "descripcion;total;iva;retencion\nDiseño;106;21;15\nHosting;121;21;\n"
	out, err := run(t, csv, "batch", "--file", "-", "--sep", ";")
	require.NoError(t, err)

	var resp dto.BatchResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Lines, 2)
	assert.Equal(t, "Diseño", resp.Lines[0].Description)
	assert.True(t, d("200").Equal(resp.Totals.Base))
}

func TestBatch_FicheroLatin1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gastos.csv")
	// "Diseño" en ISO-8859-1: ñ = 0xF1
	require.NoError(t, os.WriteFile(path, []byte("Dise\xf1o,106,21,15\n"), 0o600))

	out, err := run(t, "", "batch", "--file", path, "--latin1")
	require.NoError(t, err)

	var resp dto.BatchResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "Diseño", resp.Lines[0].Description)
}

func TestBatch_SeparadorInvalido(t *testing.T) {
	_, err := run(t, "", "batch", "--file", "-", "--sep", ";;")
	assert.Error(t, err)
}

func TestToken(t *testing.T) {
	out, err := run(t, "", "token", "--role", pkgjwt.RoleAdmin)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse("secreto", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, pkgjwt.RoleAdmin, claims.Role)
	assert.Equal(t, "taxcalc-test", claims.Issuer)
}

// ── CSV ───────────────────────────────────────────────────────────────────────

func TestParseAmount(t *testing.T) {
	cases := map[string]string{
		"1234.56":  "1234.56",
		"1234,56":  "1234.56",
		"1.234,56": "1234.56",
		"1,234.56": "1234.56",
		" 21 % ":   "21",
		"-106":     "-106",
		"1 060,00": "1060",
	}
	for in, want := range cases {
		got, err := cli.ParseAmount(in)
		require.NoError(t, err, in)
		assert.True(t, d(want).Equal(got), "%q -> %s", in, got)
	}

	_, err := cli.ParseAmount("abc")
	assert.Error(t, err)
}

func TestParseSpanishAmount_PuntoDeMiles(t *testing.T) {
	cases := map[string]string{
		"1.234":      "1234",
		"1.234.567":  "1234567",
		"-2.500":     "-2500",
		"1.234,56":   "1234.56",
		"10.5":       "10.5",
		"1.2345":     "1.2345",
		"21":         "21",
		"1.060,00 €": "",
	}
	for in, want := range cases {
		got, err := cli.ParseSpanishAmount(in)
		if want == "" {
			assert.Error(t, err, in)
			continue
		}
		require.NoError(t, err, in)
		assert.True(t, d(want).Equal(got), "%q -> %s", in, got)
	}

	got, err := cli.ParseAmount("1.234")
	require.NoError(t, err)
	assert.True(t, d("1.234").Equal(got), "con coma como separador el punto es decimal")
}

func TestReadLines_PuntoYComaLeeMiles(t *testing.T) {
	lines, err := cli.ReadLines(strings.NewReader("Obra;1.234;21;15\nLicencia;1.234,50;21\n"), ';', false)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.True(t, d("1234").Equal(lines[0].Total), "total %s", lines[0].Total)
	assert.True(t, d("1234.5").Equal(lines[1].Total))

	lines, err = cli.ReadLines(strings.NewReader("Obra,1.234,21\n"), ',', false)
	require.NoError(t, err)
	assert.True(t, d("1.234").Equal(lines[0].Total))
}

func TestReadLines_ErrorColumnas(t *testing.T) {
	_, err := cli.ReadLines(strings.NewReader("solo,106\n"), ',', false)
	assert.Error(t, err)
}

func TestReadLines_SinCabeceraYRetencionOpcional(t *testing.T) {
	lines, err := cli.ReadLines(strings.NewReader("a,121,21\nb,\"1.060,00\",21,15\n"), ',', false)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.True(t, lines[0].WithholdingRate.IsZero())
	assert.True(t, d("1060").Equal(lines[1].Total))
	assert.True(t, d("15").Equal(lines[1].WithholdingRate))
}
