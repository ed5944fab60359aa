package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/libros-pyme/internal/application/billing"
	"github.com/tu-usuario/libros-pyme/internal/application/dto"
	"github.com/tu-usuario/libros-pyme/internal/domain"
	"github.com/tu-usuario/libros-pyme/internal/domain/voucher"
)

// VoucherHandler maneja las peticiones HTTP de comprobantes (protegido).
type VoucherHandler struct {
	uc *billing.VoucherUseCase
}

// NewVoucherHandler construye el handler.
func NewVoucherHandler(uc *billing.VoucherUseCase) *VoucherHandler {
	return &VoucherHandler{uc: uc}
}

// Preview godoc
// @Summary      Recalcular totales de un borrador (sin efectos)
// @Tags         vouchers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VoucherDraftRequest  true  "borrador"
// @Success      200   {object}  dto.TotalsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/vouchers/preview [post]
func (h *VoucherHandler) Preview(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.VoucherDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	totals, err := h.uc.Preview(c.Context(), companyID, in)
	if err != nil {
		return voucherError(c, err)
	}
	return c.JSON(totals)
}

// Submit godoc
// @Summary      Enviar un borrador de comprobante
// @Tags         vouchers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VoucherDraftRequest  true  "borrador"
// @Success      201   {object}  dto.VoucherResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/vouchers [post]
func (h *VoucherHandler) Submit(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.VoucherDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Submit(c.Context(), companyID, in)
	if err != nil {
		return voucherError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/vouchers/:id
func (h *VoucherHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.uc.GetVoucher(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return voucherError(c, err)
	}
	return c.JSON(out)
}

// List GET /api/vouchers?limit=20&offset=0
func (h *VoucherHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.ListVouchers(c.Context(), companyID, limit, offset)
	if err != nil {
		return voucherError(c, err)
	}
	return c.JSON(list)
}

// voucherError traduce los errores del motor de comprobantes a HTTP.
// La validación del borrador viaja completa (todas las reglas violadas);
// un fallo del colaborador de persistencia es un 502, no un error del cliente.
func voucherError(c *fiber.Ctx, err error) error {
	var vErr *billing.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Code:       "DRAFT_INVALID",
			Message:    "el borrador no cumple las reglas de envío",
			Violations: vErr.Violations,
		})
	}
	var sErr *billing.SubmissionError
	if errors.As(err, &sErr) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "SUBMISSION_FAILED", Message: sErr.Error()})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, voucher.ErrMissingLedgerRef):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el recurso pertenece a otra empresa"})
	case errors.Is(err, domain.ErrDraftClosed), errors.Is(err, domain.ErrSubmitInFlight), errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
