package dto

import "github.com/shopspring/decimal"

// BaseRequest body para POST /api/tax/base (importes ya conocidos, no porcentajes).
type BaseRequest struct {
	Total             decimal.Decimal `json:"total"`
	VATAmount         decimal.Decimal `json:"vat_amount"`
	WithholdingAmount decimal.Decimal `json:"withholding_amount"`
}

// BaseResponse base imponible reconstruida.
type BaseResponse struct {
	Base decimal.Decimal `json:"base"`
}

// DecomposeRequest body para POST /api/tax/breakdown. Porcentajes (21 = 21%).
type DecomposeRequest struct {
	Total           decimal.Decimal `json:"total"`
	VATRate         decimal.Decimal `json:"vat_rate"`
	WithholdingRate decimal.Decimal `json:"withholding_rate"`
}

// DecomposeResponse desglose de un total en base, IVA y retención.
type DecomposeResponse struct {
	Total             decimal.Decimal `json:"total"`
	VATRate           decimal.Decimal `json:"vat_rate"`
	WithholdingRate   decimal.Decimal `json:"withholding_rate"`
	Base              decimal.Decimal `json:"base"`
	VATAmount         decimal.Decimal `json:"vat_amount"`
	WithholdingAmount decimal.Decimal `json:"withholding_amount"`
	// WithholdingSignal es orientativo: "likely" | "unlikely".
	WithholdingSignal string `json:"withholding_signal"`
}

// DetectRequest body para POST /api/tax/withholding-check.
type DetectRequest struct {
	Total decimal.Decimal `json:"total"`
}

// DetectResponse indicación orientativa de retención aplicada.
type DetectResponse struct {
	Total             decimal.Decimal `json:"total"`
	WithholdingSignal string          `json:"withholding_signal"`
	Likely            bool            `json:"likely"`
}

// BatchLine línea de factura o gasto dentro de un lote.
type BatchLine struct {
	Description     string          `json:"description,omitempty"`
	Total           decimal.Decimal `json:"total"`
	VATRate         decimal.Decimal `json:"vat_rate"`
	WithholdingRate decimal.Decimal `json:"withholding_rate"`
}

// BatchRequest body para POST /api/tax/batch.
type BatchRequest struct {
	Lines []BatchLine `json:"lines"`
}

// BatchLineResult desglose de una línea del lote, en el mismo orden de entrada.
type BatchLineResult struct {
	Index             int             `json:"index"`
	Description       string          `json:"description,omitempty"`
	Total             decimal.Decimal `json:"total"`
	VATRate           decimal.Decimal `json:"vat_rate"`
	WithholdingRate   decimal.Decimal `json:"withholding_rate"`
	Base              decimal.Decimal `json:"base"`
	VATAmount         decimal.Decimal `json:"vat_amount"`
	WithholdingAmount decimal.Decimal `json:"withholding_amount"`
}

// RateSummary acumulado por combinación de tipos (IVA/retención), como el cuadro de impuestos de una factura.
type RateSummary struct {
	VATRate           decimal.Decimal `json:"vat_rate"`
	WithholdingRate   decimal.Decimal `json:"withholding_rate"`
	Lines             int             `json:"lines"`
	Base              decimal.Decimal `json:"base"`
	VATAmount         decimal.Decimal `json:"vat_amount"`
	WithholdingAmount decimal.Decimal `json:"withholding_amount"`
}

// BatchTotals totales del lote. Total es base + IVA - retención; InputTotal la suma de totales recibidos.
type BatchTotals struct {
	Base              decimal.Decimal `json:"base"`
	VATAmount         decimal.Decimal `json:"vat_amount"`
	WithholdingAmount decimal.Decimal `json:"withholding_amount"`
	Total             decimal.Decimal `json:"total"`
	InputTotal        decimal.Decimal `json:"input_total"`
}

// BatchResponse resultado del desglose por lotes.
type BatchResponse struct {
	BatchID string            `json:"batch_id"`
	Lines   []BatchLineResult `json:"lines"`
	Summary []RateSummary     `json:"summary"`
	Totals  BatchTotals       `json:"totals"`
}
