package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/application/receipts"
	"github.com/jhoicas/caja-api/internal/application/sales"
)

const saleNotFound = "venta no encontrada"

// SaleHandler ventas de mostrador (protegido).
type SaleHandler struct {
	uc       *sales.UseCase
	receipts *receipts.UseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.UseCase, r *receipts.UseCase) *SaleHandler {
	return &SaleHandler{uc: uc, receipts: r}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Calcula la comisión del medio de pago y separa efectivo de digital.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Venta"
// @Success      201   {object}  dto.APIResponse{data=dto.SaleResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if valid, err := bindJSON(c, &in); !valid {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return handleError(c, err, saleNotFound)
	}
	return ok(c, fiber.StatusCreated, out)
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        startDate      query  string  false  "Desde (YYYY-MM-DD)"
// @Param        endDate        query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        paymentMethod  query  string  false  "Medio de pago"
// @Success      200  {object}  dto.APIResponse{data=[]dto.SaleResponse}
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var q dto.SaleFilterQuery
	if valid, err := bindQuery(c, &q); !valid {
		return err
	}
	out, err := h.uc.List(c.UserContext(), GetUserID(c), q)
	if err != nil {
		return handleError(c, err, saleNotFound)
	}
	return ok(c, fiber.StatusOK, out)
}

// GetByID godoc
// @Summary      Obtener venta
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.APIResponse{data=dto.SaleResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"), GetUserID(c))
	if err != nil {
		return handleError(c, err, saleNotFound)
	}
	return ok(c, fiber.StatusOK, out)
}

// Receipt godoc
// @Summary      Comprobante de venta en PDF
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt.pdf [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.receipts.SaleReceipt(c.UserContext(), id, GetUserID(c))
	if err != nil {
		return handleError(c, err, saleNotFound)
	}
	return sendPDF(c, "venta-"+id+".pdf", out)
}

// Update godoc
// @Summary      Actualizar venta
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.UpdateSaleRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.APIResponse{data=dto.SaleResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [put]
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSaleRequest
	if valid, err := bindJSON(c, &in); !valid {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return handleError(c, err, saleNotFound)
	}
	return ok(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Eliminar venta
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id"), GetUserID(c)); err != nil {
		return handleError(c, err, saleNotFound)
	}
	return okMessage(c, "venta eliminada")
}
