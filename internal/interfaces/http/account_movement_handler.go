package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/application/ledger"
	"github.com/jhoicas/caja-api/internal/application/receipts"
)

const movementNotFound = "movimiento no encontrado"

// AccountMovementHandler cuenta corriente de clientes (protegido).
type AccountMovementHandler struct {
	uc       *ledger.UseCase
	receipts *receipts.UseCase
}

// NewAccountMovementHandler construye el handler.
func NewAccountMovementHandler(uc *ledger.UseCase, r *receipts.UseCase) *AccountMovementHandler {
	return &AccountMovementHandler{uc: uc, receipts: r}
}

// Create godoc
// @Summary      Registrar movimiento
// @Description  sale > 0, payment < 0, adjustment distinto de 0. El saldo se calcula sobre el último movimiento.
// @Tags         account-movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.APIResponse{data=dto.MovementResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/account-movements [post]
func (h *AccountMovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if valid, err := bindJSON(c, &in); !valid {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return handleError(c, err, customerNotFound)
	}
	return ok(c, fiber.StatusCreated, out)
}

// List godoc
// @Summary      Listar movimientos
// @Tags         account-movements
// @Security     Bearer
// @Produce      json
// @Param        customerId  query  string  false  "Cliente"
// @Param        startDate   query  string  false  "Desde (YYYY-MM-DD)"
// @Param        endDate     query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        type        query  string  false  "sale | payment | adjustment"
// @Success      200  {object}  dto.APIResponse{data=[]dto.MovementResponse}
// @Router       /api/account-movements [get]
func (h *AccountMovementHandler) List(c *fiber.Ctx) error {
	var q dto.MovementFilterQuery
	if valid, err := bindQuery(c, &q); !valid {
		return err
	}
	out, err := h.uc.List(c.UserContext(), GetUserID(c), q)
	if err != nil {
		return handleError(c, err, movementNotFound)
	}
	return ok(c, fiber.StatusOK, out)
}

// GetByID godoc
// @Summary      Obtener movimiento
// @Tags         account-movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.APIResponse{data=dto.MovementResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/account-movements/{id} [get]
func (h *AccountMovementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"), GetUserID(c))
	if err != nil {
		return handleError(c, err, movementNotFound)
	}
	if out == nil {
		return notFound(c, movementNotFound)
	}
	return ok(c, fiber.StatusOK, out)
}

// Account godoc
// @Summary      Cuenta corriente completa de un cliente
// @Tags         account-movements
// @Security     Bearer
// @Produce      json
// @Param        customerId  path  string  true  "ID del cliente"
// @Success      200  {object}  dto.APIResponse{data=dto.CustomerAccountResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/account-movements/customer/{customerId} [get]
func (h *AccountMovementHandler) Account(c *fiber.Ctx) error {
	out, err := h.uc.Account(c.UserContext(), c.Params("customerId"), GetUserID(c))
	if err != nil {
		return handleError(c, err, customerNotFound)
	}
	return ok(c, fiber.StatusOK, out)
}

// Balance godoc
// @Summary      Saldo actual de un cliente
// @Tags         account-movements
// @Security     Bearer
// @Produce      json
// @Param        customerId  path  string  true  "ID del cliente"
// @Success      200  {object}  dto.APIResponse{data=dto.BalanceResponse}
// @Router       /api/account-movements/customer/{customerId}/balance [get]
func (h *AccountMovementHandler) Balance(c *fiber.Ctx) error {
	balance, err := h.uc.Balance(c.UserContext(), c.Params("customerId"), GetUserID(c))
	if err != nil {
		return handleError(c, err, customerNotFound)
	}
	return ok(c, fiber.StatusOK, dto.BalanceResponse{Balance: balance})
}

// Recalculate godoc
// @Summary      Recalcular saldos de un cliente
// @Description  Reescribe el saldo de cada movimiento como suma acumulada, del más antiguo al más reciente.
// @Tags         account-movements
// @Security     Bearer
// @Produce      json
// @Param        customerId  path  string  true  "ID del cliente"
// @Success      200  {object}  dto.APIResponse{data=dto.RecalculateResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/account-movements/customer/{customerId}/recalculate [post]
func (h *AccountMovementHandler) Recalculate(c *fiber.Ctx) error {
	out, err := h.uc.Recalculate(c.UserContext(), c.Params("customerId"), GetUserID(c))
	if err != nil {
		return handleError(c, err, customerNotFound)
	}
	return ok(c, fiber.StatusOK, out)
}

// Statement godoc
// @Summary      Resumen de cuenta en PDF
// @Tags         account-movements
// @Security     Bearer
// @Produce      application/pdf
// @Param        customerId  path  string  true  "ID del cliente"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/account-movements/customer/{customerId}/statement.pdf [get]
func (h *AccountMovementHandler) Statement(c *fiber.Ctx) error {
	customerID := c.Params("customerId")
	out, err := h.receipts.CustomerStatement(c.UserContext(), customerID, GetUserID(c))
	if err != nil {
		return handleError(c, err, customerNotFound)
	}
	return sendPDF(c, "resumen-"+customerID+".pdf", out)
}

// Update godoc
// @Summary      Actualizar movimiento
// @Description  Si cambia amount se ajusta el saldo de este movimiento; los posteriores no se recalculan.
// @Tags         account-movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.UpdateMovementRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.APIResponse{data=dto.MovementResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/account-movements/{id} [put]
func (h *AccountMovementHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMovementRequest
	if valid, err := bindJSON(c, &in); !valid {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return handleError(c, err, movementNotFound)
	}
	if out == nil {
		return notFound(c, movementNotFound)
	}
	return ok(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Eliminar movimiento
// @Tags         account-movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/account-movements/{id} [delete]
func (h *AccountMovementHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.Delete(c.UserContext(), c.Params("id"), GetUserID(c))
	if err != nil {
		return handleError(c, err, movementNotFound)
	}
	if !deleted {
		return notFound(c, movementNotFound)
	}
	return okMessage(c, "movimiento eliminado")
}

// Import godoc
// @Summary      Importar movimientos ya calculados
// @Description  Los saldos se guardan tal cual vienen; se insertan en orden ascendente de fecha.
// @Tags         account-movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportMovementsRequest  true  "Cliente y movimientos"
// @Success      201   {object}  dto.APIResponse{data=[]dto.MovementResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/account-movements/import [post]
func (h *AccountMovementHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportMovementsRequest
	if valid, err := bindJSON(c, &in); !valid {
		return err
	}
	out, err := h.uc.ImportMovements(c.UserContext(), in.CustomerID, GetUserID(c), in.Movements)
	if err != nil {
		return handleError(c, err, customerNotFound)
	}
	return ok(c, fiber.StatusCreated, out)
}

// ImportCustomerData godoc
// @Summary      Importar planilla de un cliente
// @Description  Busca el cliente por nombre (sin distinguir mayúsculas) o lo crea, e importa sus filas.
// @Tags         account-movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportCustomerDataRequest  true  "Nombre del cliente y filas"
// @Success      201   {object}  dto.APIResponse{data=dto.ImportCustomerDataResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/account-movements/import-excel [post]
func (h *AccountMovementHandler) ImportCustomerData(c *fiber.Ctx) error {
	var in dto.ImportCustomerDataRequest
	if valid, err := bindJSON(c, &in); !valid {
		return err
	}
	out, err := h.uc.ImportCustomerData(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return handleError(c, err, customerNotFound)
	}
	return ok(c, fiber.StatusCreated, out)
}
