package taxes

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/Impuestos-api/internal/application/dto"
	"github.com/jhoicas/Impuestos-api/internal/domain"
	"github.com/jhoicas/Impuestos-api/internal/domain/entity"
	"github.com/jhoicas/Impuestos-api/internal/domain/tax"
	"github.com/jhoicas/Impuestos-api/pkg/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Config límites del caso de uso.
type Config struct {
	MaxBatchLines int
	BatchWorkers  int
}

// LineError indica qué línea del lote no se pudo desglosar.
type LineError struct {
	Index int
	Err   error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("línea %d: %v", e.Index, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// UseCase expone el motor de descomposición de impuestos a HTTP y CLI.
type UseCase struct {
	cfg Config
	log *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(cfg Config, log *logger.Logger) *UseCase {
	if cfg.MaxBatchLines <= 0 {
		cfg.MaxBatchLines = 500
	}
	if cfg.BatchWorkers <= 0 {
		cfg.BatchWorkers = 1
	}
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{cfg: cfg, log: log.Component("taxes")}
}

// ComputeBase reconstruye la base desde importes de IVA y retención ya conocidos.
func (uc *UseCase) ComputeBase(ctx context.Context, in dto.BaseRequest) (*dto.BaseResponse, error) {
	for _, a := range []struct {
		field string
		value decimal.Decimal
	}{
		{"total", in.Total},
		{"vat_amount", in.VATAmount},
		{"withholding_amount", in.WithholdingAmount},
	} {
		if err := checkAmount(a.field, a.value); err != nil {
			return nil, err
		}
	}
	base := tax.ComputeBase(in.Total, in.VATAmount, in.WithholdingAmount)
	uc.log.Debug().
		Str("total", in.Total.String()).
		Str("vat_amount", in.VATAmount.String()).
		Str("withholding_amount", in.WithholdingAmount.String()).
		Str("base", base.String()).
		Msg("base desde importes")
	return &dto.BaseResponse{Base: base}, nil
}

// Decompose desglosa un total con sus porcentajes y añade la señal orientativa de retención.
func (uc *UseCase) Decompose(ctx context.Context, in dto.DecomposeRequest) (*dto.DecomposeResponse, error) {
	if err := checkDecompose(in.Total, in.VATRate, in.WithholdingRate); err != nil {
		return nil, err
	}
	line := entity.LineItem{Total: in.Total, VATRate: in.VATRate, WithholdingRate: in.WithholdingRate}
	b, err := line.Decompose()
	if err != nil {
		uc.log.Warn().Err(err).
			Str("vat_rate", in.VATRate.String()).
			Str("withholding_rate", in.WithholdingRate.String()).
			Msg("desglose rechazado")
		return nil, err
	}
	signal := tax.LooksLikeWithholdingApplied(in.Total)
	uc.log.Debug().
		Str("total", in.Total.String()).
		Str("base", b.Base.String()).
		Stringer("withholding_signal", signal).
		Msg("desglose por porcentajes")
	return &dto.DecomposeResponse{
		Total:             in.Total,
		VATRate:           in.VATRate,
		WithholdingRate:   in.WithholdingRate,
		Base:              b.Base,
		VATAmount:         b.VATAmount,
		WithholdingAmount: b.WithholdingAmount,
		WithholdingSignal: signal.String(),
	}, nil
}

// DetectWithholding estima si el total ya lleva una retención descontada.
func (uc *UseCase) DetectWithholding(ctx context.Context, in dto.DetectRequest) (*dto.DetectResponse, error) {
	if err := checkAmount("total", in.Total); err != nil {
		return nil, err
	}
	signal := tax.LooksLikeWithholdingApplied(in.Total)
	return &dto.DetectResponse{
		Total:             in.Total,
		WithholdingSignal: signal.String(),
		Likely:            signal.Likely(),
	}, nil
}

// DecomposeBatch desglosa las líneas en paralelo conservando el orden y agrega
// totales y resumen por tipos. Una línea inválida invalida el lote completo.
func (uc *UseCase) DecomposeBatch(ctx context.Context, in dto.BatchRequest) (*dto.BatchResponse, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Lines) > uc.cfg.MaxBatchLines {
		return nil, domain.ErrBatchTooLarge
	}

	batchID := uuid.New().String()
	lc := uc.log.With().Str("batch_id", batchID).Int("lines", len(in.Lines))
	if caller, ok := CallerFrom(ctx); ok {
		lc = lc.Str("user_id", caller.UserID).Str("company_id", caller.CompanyID)
	}
	log := lc.Logger()

	for i, l := range in.Lines {
		if err := checkDecompose(l.Total, l.VATRate, l.WithholdingRate); err != nil {
			log.Warn().Err(err).Int("line", i).Msg("lote rechazado")
			return nil, &LineError{Index: i, Err: err}
		}
	}

	breakdowns := make([]tax.Breakdown, len(in.Lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.BatchWorkers)
	for i, l := range in.Lines {
		i, l := i, l
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b, err := toLineItem(l).Decompose()
			if err != nil {
				return &LineError{Index: i, Err: err}
			}
			breakdowns[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		var lineErr *LineError
		if errors.As(err, &lineErr) {
			log.Warn().Err(err).Int("line", lineErr.Index).Msg("lote rechazado")
		}
		return nil, err
	}

	resp := &dto.BatchResponse{
		BatchID: batchID,
		Lines:   make([]dto.BatchLineResult, 0, len(in.Lines)),
		Summary: make([]dto.RateSummary, 0),
	}
	summaryIdx := make(map[string]int)
	for i, l := range in.Lines {
		b := breakdowns[i]
		resp.Lines = append(resp.Lines, dto.BatchLineResult{
			Index:             i,
			Description:       l.Description,
			Total:             l.Total,
			VATRate:           l.VATRate,
			WithholdingRate:   l.WithholdingRate,
			Base:              b.Base,
			VATAmount:         b.VATAmount,
			WithholdingAmount: b.WithholdingAmount,
		})

		key := toLineItem(l).RateKey()
		idx, ok := summaryIdx[key]
		if !ok {
			idx = len(resp.Summary)
			summaryIdx[key] = idx
			resp.Summary = append(resp.Summary, dto.RateSummary{VATRate: l.VATRate, WithholdingRate: l.WithholdingRate})
		}
		s := &resp.Summary[idx]
		s.Lines++
		s.Base = s.Base.Add(b.Base)
		s.VATAmount = s.VATAmount.Add(b.VATAmount)
		s.WithholdingAmount = s.WithholdingAmount.Add(b.WithholdingAmount)

		resp.Totals.Base = resp.Totals.Base.Add(b.Base)
		resp.Totals.VATAmount = resp.Totals.VATAmount.Add(b.VATAmount)
		resp.Totals.WithholdingAmount = resp.Totals.WithholdingAmount.Add(b.WithholdingAmount)
		resp.Totals.InputTotal = resp.Totals.InputTotal.Add(l.Total)
	}
	resp.Totals.Total = resp.Totals.Base.Add(resp.Totals.VATAmount).Sub(resp.Totals.WithholdingAmount)

	log.Info().
		Str("base", resp.Totals.Base.String()).
		Str("total", resp.Totals.Total.String()).
		Int("rate_groups", len(resp.Summary)).
		Msg("lote desglosado")
	return resp, nil
}

func toLineItem(l dto.BatchLine) entity.LineItem {
	return entity.LineItem{
		Description:     l.Description,
		Total:           l.Total,
		VATRate:         l.VATRate,
		WithholdingRate: l.WithholdingRate,
	}
}
