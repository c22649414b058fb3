package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Impuestos-api/internal/application/dto"
	"github.com/jhoicas/Impuestos-api/internal/application/taxes"
	"github.com/jhoicas/Impuestos-api/internal/domain"
	"github.com/jhoicas/Impuestos-api/internal/domain/tax"
)

// TaxHandler maneja los endpoints de descomposición de impuestos.
type TaxHandler struct {
	uc *taxes.UseCase
}

// NewTaxHandler construye el handler.
func NewTaxHandler(uc *taxes.UseCase) *TaxHandler {
	return &TaxHandler{uc: uc}
}

// Base godoc
// @Summary      Base imponible desde importes
// @Description  base = total - IVA + retención, sin redondeo.
// @Tags         tax
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.BaseRequest  true  "Total e importes conocidos"
// @Success      200   {object}  dto.BaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tax/base [post]
func (h *TaxHandler) Base(c *fiber.Ctx) error {
	var in dto.BaseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	resp, err := h.uc.ComputeBase(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Breakdown godoc
// @Summary      Desglose por porcentajes
// @Description  Base, IVA y retención a partir del total y los porcentajes. Incluye señal orientativa de retención.
// @Tags         tax
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.DecomposeRequest  true  "Total y porcentajes"
// @Success      200   {object}  dto.DecomposeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tax/breakdown [post]
func (h *TaxHandler) Breakdown(c *fiber.Ctx) error {
	var in dto.DecomposeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	resp, err := h.uc.Decompose(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// WithholdingCheck godoc
// @Summary      ¿Lleva retención?
// @Description  Heurística sobre los céntimos del total. Orientativo, no es una determinación fiscal.
// @Tags         tax
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.DetectRequest  true  "Total"
// @Success      200   {object}  dto.DetectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tax/withholding-check [post]
func (h *TaxHandler) WithholdingCheck(c *fiber.Ctx) error {
	var in dto.DetectRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	resp, err := h.uc.DetectWithholding(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Batch godoc
// @Summary      Desglose por lotes
// @Description  Desglosa las líneas de una factura o relación de gastos y devuelve totales y resumen por tipos.
// @Tags         tax
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.BatchRequest  true  "Líneas"
// @Success      200   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      413   {object}  dto.ErrorResponse
// @Router       /api/tax/batch [post]
func (h *TaxHandler) Batch(c *fiber.Ctx) error {
	var in dto.BatchRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	ctx := c.UserContext()
	if userID := GetUserID(c); userID != "" {
		ctx = taxes.WithCaller(ctx, taxes.Caller{UserID: userID, CompanyID: GetCompanyID(c)})
	}
	resp, err := h.uc.DecomposeBatch(ctx, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// writeError traduce errores de dominio y del motor a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, tax.ErrNegativeRate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NEGATIVE_RATE", Message: err.Error()})
	case errors.Is(err, tax.ErrDegenerateRates):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DEGENERATE_RATES", Message: err.Error()})
	case errors.Is(err, domain.ErrBatchTooLarge):
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "BATCH_TOO_LARGE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
