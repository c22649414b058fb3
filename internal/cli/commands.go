package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jhoicas/Impuestos-api/internal/application/dto"
	"github.com/jhoicas/Impuestos-api/internal/application/taxes"
	"github.com/jhoicas/Impuestos-api/internal/domain/tax"
	"github.com/jhoicas/Impuestos-api/pkg/jwt"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Options dependencias del CLI.
type Options struct {
	UseCase *taxes.UseCase
	Output  io.Writer

	// JWT para el subcomando token (desarrollo).
	JWTSecret  string
	JWTIssuer  string
	JWTExpMins int
}

// NewRootCmd construye el comando taxcalc con sus subcomandos.
func NewRootCmd(opts Options) *cobra.Command {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	root := &cobra.Command{
		Use:           "taxcalc",
		Short:         "Desglose de totales en base imponible, IVA y retención",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newBaseCmd(opts),
		newBreakdownCmd(opts),
		newDetectCmd(opts),
		newBatchCmd(opts),
		newTokenCmd(opts),
	)
	return root
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// amounts convierte flags float64 a decimal rechazando NaN/Inf.
func amounts(values ...float64) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(values))
	for i, f := range values {
		d, err := tax.FromFloat(f)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

type baseCmd struct {
	opts              Options
	total             float64
	vatAmount         float64
	withholdingAmount float64
}

func newBaseCmd(opts Options) *cobra.Command {
	bc := &baseCmd{opts: opts}
	cmd := &cobra.Command{
		Use:   "base",
		Short: "Base imponible desde total e importes de IVA y retención",
		RunE:  bc.run,
	}
	cmd.Flags().Float64Var(&bc.total, "total", 0, "Total de la factura")
	cmd.Flags().Float64Var(&bc.vatAmount, "vat-amount", 0, "Importe de IVA")
	cmd.Flags().Float64Var(&bc.withholdingAmount, "withholding-amount", 0, "Importe de retención")
	_ = cmd.MarkFlagRequired("total")
	_ = cmd.MarkFlagRequired("vat-amount")
	return cmd
}

func (bc *baseCmd) run(cmd *cobra.Command, args []string) error {
	v, err := amounts(bc.total, bc.vatAmount, bc.withholdingAmount)
	if err != nil {
		return err
	}
	resp, err := bc.opts.UseCase.ComputeBase(cmd.Context(), dto.BaseRequest{Total: v[0], VATAmount: v[1], WithholdingAmount: v[2]})
	if err != nil {
		return err
	}
	return printJSON(bc.opts.Output, resp)
}

type breakdownCmd struct {
	opts            Options
	total           float64
	vatRate         float64
	withholdingRate float64
}

func newBreakdownCmd(opts Options) *cobra.Command {
	bc := &breakdownCmd{opts: opts}
	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Base, IVA y retención desde el total y los porcentajes",
		RunE:  bc.run,
	}
	cmd.Flags().Float64Var(&bc.total, "total", 0, "Total de la factura")
	cmd.Flags().Float64Var(&bc.vatRate, "vat-rate", 0, "Porcentaje de IVA (21 = 21%)")
	cmd.Flags().Float64Var(&bc.withholdingRate, "withholding-rate", 0, "Porcentaje de retención (15 = 15%)")
	_ = cmd.MarkFlagRequired("total")
	_ = cmd.MarkFlagRequired("vat-rate")
	return cmd
}

func (bc *breakdownCmd) run(cmd *cobra.Command, args []string) error {
	v, err := amounts(bc.total, bc.vatRate, bc.withholdingRate)
	if err != nil {
		return err
	}
	resp, err := bc.opts.UseCase.Decompose(cmd.Context(), dto.DecomposeRequest{Total: v[0], VATRate: v[1], WithholdingRate: v[2]})
	if err != nil {
		return err
	}
	return printJSON(bc.opts.Output, resp)
}

type detectCmd struct {
	opts  Options
	total float64
}

func newDetectCmd(opts Options) *cobra.Command {
	dc := &detectCmd{opts: opts}
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Indica si el total parece llevar retención (orientativo)",
		RunE:  dc.run,
	}
	cmd.Flags().Float64Var(&dc.total, "total", 0, "Total de la factura")
	_ = cmd.MarkFlagRequired("total")
	return cmd
}

func (dc *detectCmd) run(cmd *cobra.Command, args []string) error {
	v, err := amounts(dc.total)
	if err != nil {
		return err
	}
	resp, err := dc.opts.UseCase.DetectWithholding(cmd.Context(), dto.DetectRequest{Total: v[0]})
	if err != nil {
		return err
	}
	return printJSON(dc.opts.Output, resp)
}

type batchCmd struct {
	opts   Options
	file   string
	sep    string
	latin1 bool
}

func newBatchCmd(opts Options) *cobra.Command {
	bc := &batchCmd{opts: opts}
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Desglosa un CSV de líneas (descripcion,total,iva,retencion)",
		RunE:  bc.run,
	}
	cmd.Flags().StringVar(&bc.file, "file", "", "Ruta al CSV ('-' para stdin)")
	cmd.Flags().StringVar(&bc.sep, "sep", ",", "Separador de columnas")
	cmd.Flags().BoolVar(&bc.latin1, "latin1", false, "El CSV está en ISO-8859-1")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (bc *batchCmd) run(cmd *cobra.Command, args []string) error {
	if len([]rune(bc.sep)) != 1 {
		return fmt.Errorf("separador inválido %q", bc.sep)
	}
	var in io.Reader = cmd.InOrStdin()
	if bc.file != "-" {
		f, err := os.Open(bc.file)
		if err != nil {
			return fmt.Errorf("abrir CSV: %w", err)
		}
		defer f.Close()
		in = f
	}
	lines, err := ReadLines(in, []rune(bc.sep)[0], bc.latin1)
	if err != nil {
		return err
	}
	resp, err := bc.opts.UseCase.DecomposeBatch(cmd.Context(), dto.BatchRequest{Lines: lines})
	if err != nil {
		return err
	}
	return printJSON(bc.opts.Output, resp)
}

type tokenCmd struct {
	opts    Options
	userID  string
	company string
	role    string
}

func newTokenCmd(opts Options) *cobra.Command {
	tc := &tokenCmd{opts: opts}
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un JWT de desarrollo para probar la API",
		RunE:  tc.run,
	}
	cmd.Flags().StringVar(&tc.userID, "user", "dev-user", "user_id del token")
	cmd.Flags().StringVar(&tc.company, "company", "dev-company", "company_id del token")
	cmd.Flags().StringVar(&tc.role, "role", jwt.RoleContable, "Rol: admin | contable | consulta")
	return cmd
}

func (tc *tokenCmd) run(cmd *cobra.Command, args []string) error {
	tok, err := jwt.Generate(tc.opts.JWTSecret, tc.userID, tc.company, tc.role, tc.opts.JWTIssuer, tc.opts.JWTExpMins)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(tc.opts.Output, tok)
	return err
}
