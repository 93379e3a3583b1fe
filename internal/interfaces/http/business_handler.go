package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/caja-api/internal/application/business"
	"github.com/jhoicas/caja-api/internal/application/dto"
)

const businessNotFound = "el negocio no está configurado"

// BusinessHandler datos del negocio usados en los comprobantes (protegido).
type BusinessHandler struct {
	uc *business.UseCase
}

// NewBusinessHandler construye el handler.
func NewBusinessHandler(uc *business.UseCase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener configuración del negocio
// @Tags         business
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.BusinessResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/business [get]
func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetUserID(c))
	if err != nil {
		return handleError(c, err, businessNotFound)
	}
	return ok(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Crear configuración del negocio
// @Tags         business
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBusinessRequest  true  "Datos del negocio"
// @Success      201   {object}  dto.APIResponse{data=dto.BusinessResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/business [post]
func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBusinessRequest
	if valid, err := bindJSON(c, &in); !valid {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return handleError(c, err, businessNotFound)
	}
	return ok(c, fiber.StatusCreated, out)
}

// Update godoc
// @Summary      Actualizar configuración del negocio
// @Tags         business
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateBusinessRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.APIResponse{data=dto.BusinessResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/business [put]
func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBusinessRequest
	if valid, err := bindJSON(c, &in); !valid {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return handleError(c, err, businessNotFound)
	}
	return ok(c, fiber.StatusOK, out)
}
