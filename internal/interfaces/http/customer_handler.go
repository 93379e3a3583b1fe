package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/caja-api/internal/application/customer"
	"github.com/jhoicas/caja-api/internal/application/dto"
)

const customerNotFound = "cliente no encontrado"

// CustomerHandler maneja las peticiones HTTP de clientes (protegido).
type CustomerHandler struct {
	uc *customer.UseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *customer.UseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.APIResponse{data=dto.CustomerResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
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
// @Summary      Listar clientes
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        name  query  string  false  "Filtro por nombre (contiene, sin distinguir mayúsculas)"
// @Success      200   {object}  dto.APIResponse{data=[]dto.CustomerResponse}
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetUserID(c), c.Query("name"))
	if err != nil {
		return handleError(c, err, customerNotFound)
	}
	return ok(c, fiber.StatusOK, out)
}

// Search godoc
// @Summary      Buscar clientes por nombre, email o teléfono
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  true  "Texto a buscar"
// @Success      200  {object}  dto.APIResponse{data=[]dto.CustomerResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/customers/search [get]
func (h *CustomerHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), GetUserID(c), c.Query("q"))
	if err != nil {
		return handleError(c, err, customerNotFound)
	}
	return ok(c, fiber.StatusOK, out)
}

// Balances godoc
// @Summary      Clientes con saldo de cuenta corriente
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        hasDebt  query  bool  false  "Solo clientes con deuda"
// @Success      200  {object}  dto.APIResponse{data=[]dto.CustomerBalanceResponse}
// @Router       /api/customers/balances [get]
func (h *CustomerHandler) Balances(c *fiber.Ctx) error {
	out, err := h.uc.Balances(c.UserContext(), GetUserID(c), c.QueryBool("hasDebt", false))
	if err != nil {
		return handleError(c, err, customerNotFound)
	}
	return ok(c, fiber.StatusOK, out)
}

// GetByID godoc
// @Summary      Obtener cliente
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.APIResponse{data=dto.CustomerResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"), GetUserID(c))
	if err != nil {
		return handleError(c, err, customerNotFound)
	}
	return ok(c, fiber.StatusOK, out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cliente"
// @Param        body  body  dto.UpdateCustomerRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.APIResponse{data=dto.CustomerResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if valid, err := bindJSON(c, &in); !valid {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return handleError(c, err, customerNotFound)
	}
	return ok(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Eliminar cliente (sus movimientos no se borran)
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id"), GetUserID(c)); err != nil {
		return handleError(c, err, customerNotFound)
	}
	return okMessage(c, "cliente eliminado")
}
