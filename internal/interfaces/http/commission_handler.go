package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/caja-api/internal/application/commission"
	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/domain/entity"
)

const commissionNotFound = "comisión no encontrada"

// CommissionHandler tabla de comisiones por medio de pago (protegido).
type CommissionHandler struct {
	uc *commission.UseCase
}

// NewCommissionHandler construye el handler.
func NewCommissionHandler(uc *commission.UseCase) *CommissionHandler {
	return &CommissionHandler{uc: uc}
}

// List godoc
// @Summary      Listar comisiones activas
// @Tags         commissions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=[]dto.CommissionResponse}
// @Router       /api/commissions [get]
func (h *CommissionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetUserID(c))
	if err != nil {
		return handleError(c, err, commissionNotFound)
	}
	return ok(c, fiber.StatusOK, out)
}

// Organized godoc
// @Summary      Comisiones agrupadas por medio, marca y cuotas
// @Tags         commissions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.OrganizedCommissions}
// @Router       /api/commissions/organized [get]
func (h *CommissionHandler) Organized(c *fiber.Ctx) error {
	out, err := h.uc.Organized(c.UserContext(), GetUserID(c))
	if err != nil {
		return handleError(c, err, commissionNotFound)
	}
	return ok(c, fiber.StatusOK, out)
}

// CreateDefaults godoc
// @Summary      Cargar la tabla de comisiones por defecto
// @Description  Idempotente: solo inserta las filas que falten; no pisa valores editados.
// @Tags         commissions
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.APIResponse{data=[]dto.CommissionResponse}
// @Router       /api/commissions/default [post]
func (h *CommissionHandler) CreateDefaults(c *fiber.Ctx) error {
	out, err := h.uc.CreateDefaults(c.UserContext(), GetUserID(c))
	if err != nil {
		return handleError(c, err, commissionNotFound)
	}
	return ok(c, fiber.StatusCreated, out)
}

// Update godoc
// @Summary      Actualizar comisión
// @Tags         commissions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la comisión"
// @Param        body  body  dto.UpdateCommissionRequest  true  "percentage, fixedAmount, isActive"
// @Success      200   {object}  dto.APIResponse{data=dto.CommissionResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/commissions/{id} [put]
func (h *CommissionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCommissionRequest
	if valid, err := bindJSON(c, &in); !valid {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return handleError(c, err, commissionNotFound)
	}
	return ok(c, fiber.StatusOK, out)
}

// Calculate godoc
// @Summary      Calcular comisión de una operación
// @Description  Nunca falla por errores internos: en ese caso la comisión es 0.
// @Tags         commissions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CalculateCommissionRequest  true  "Medio de pago y monto"
// @Success      200   {object}  dto.APIResponse{data=dto.CalculateCommissionResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/commissions/calculate [post]
func (h *CommissionHandler) Calculate(c *fiber.Ctx) error {
	var in dto.CalculateCommissionRequest
	if valid, err := bindJSON(c, &in); !valid {
		return err
	}
	if !in.Amount.IsPositive() {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "amount debe ser mayor a 0")
	}
	if in.PaymentMethod == entity.PaymentMethodCredit && (in.CardBrand == nil || in.Installments == nil) {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "tarjeta_credito requiere cardBrand e installments")
	}
	fee := h.uc.Calculate(c.UserContext(), GetUserID(c), in.PaymentMethod, in.Amount, in.CardBrand, in.Installments)
	return ok(c, fiber.StatusOK, dto.CalculateCommissionResponse{
		Commission: fee,
		NetAmount:  in.Amount.Sub(fee),
	})
}
