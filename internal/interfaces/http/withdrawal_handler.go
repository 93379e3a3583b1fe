package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/application/withdrawal"
)

const withdrawalNotFound = "retiro no encontrado"

// WithdrawalHandler retiros de caja (protegido).
type WithdrawalHandler struct {
	uc *withdrawal.UseCase
}

// NewWithdrawalHandler construye el handler.
func NewWithdrawalHandler(uc *withdrawal.UseCase) *WithdrawalHandler {
	return &WithdrawalHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar retiro
// @Tags         withdrawals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWithdrawalRequest  true  "Retiro"
// @Success      201   {object}  dto.APIResponse{data=dto.WithdrawalResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/withdrawals [post]
func (h *WithdrawalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWithdrawalRequest
	if valid, err := bindJSON(c, &in); !valid {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return handleError(c, err, withdrawalNotFound)
	}
	return ok(c, fiber.StatusCreated, out)
}

// List godoc
// @Summary      Listar retiros
// @Tags         withdrawals
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        reason     query  string  false  "Motivo"
// @Success      200  {object}  dto.APIResponse{data=[]dto.WithdrawalResponse}
// @Router       /api/withdrawals [get]
func (h *WithdrawalHandler) List(c *fiber.Ctx) error {
	var q dto.WithdrawalFilterQuery
	if valid, err := bindQuery(c, &q); !valid {
		return err
	}
	out, err := h.uc.List(c.UserContext(), GetUserID(c), q)
	if err != nil {
		return handleError(c, err, withdrawalNotFound)
	}
	return ok(c, fiber.StatusOK, out)
}

// GetByID godoc
// @Summary      Obtener retiro
// @Tags         withdrawals
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del retiro"
// @Success      200  {object}  dto.APIResponse{data=dto.WithdrawalResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/withdrawals/{id} [get]
func (h *WithdrawalHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"), GetUserID(c))
	if err != nil {
		return handleError(c, err, withdrawalNotFound)
	}
	return ok(c, fiber.StatusOK, out)
}

// Update godoc
// @Summary      Actualizar retiro
// @Tags         withdrawals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del retiro"
// @Param        body  body  dto.UpdateWithdrawalRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.APIResponse{data=dto.WithdrawalResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/withdrawals/{id} [put]
func (h *WithdrawalHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWithdrawalRequest
	if valid, err := bindJSON(c, &in); !valid {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return handleError(c, err, withdrawalNotFound)
	}
	return ok(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Eliminar retiro
// @Tags         withdrawals
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del retiro"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/withdrawals/{id} [delete]
func (h *WithdrawalHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id"), GetUserID(c)); err != nil {
		return handleError(c, err, withdrawalNotFound)
	}
	return okMessage(c, "retiro eliminado")
}
