package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/application/receipts"
	"github.com/jhoicas/caja-api/internal/application/summary"
)

// SummaryHandler reportes de caja (protegido, solo lectura).
type SummaryHandler struct {
	uc       *summary.UseCase
	receipts *receipts.UseCase
}

// NewSummaryHandler construye el handler.
func NewSummaryHandler(uc *summary.UseCase, r *receipts.UseCase) *SummaryHandler {
	return &SummaryHandler{uc: uc, receipts: r}
}

// Daily godoc
// @Summary      Resumen de caja de un día
// @Tags         summary
// @Security     Bearer
// @Produce      json
// @Param        date  path  string  true  "Día (YYYY-MM-DD)"
// @Success      200  {object}  dto.APIResponse{data=dto.DailySummary}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/summary/daily/{date} [get]
func (h *SummaryHandler) Daily(c *fiber.Ctx) error {
	out, err := h.uc.Daily(c.UserContext(), c.Params("date"), GetUserID(c))
	if err != nil {
		return handleError(c, err, "")
	}
	return ok(c, fiber.StatusOK, out)
}

// Closure godoc
// @Summary      Cierre de caja de un día
// @Tags         summary
// @Security     Bearer
// @Produce      json
// @Param        date  path  string  true  "Día (YYYY-MM-DD)"
// @Success      200  {object}  dto.APIResponse{data=dto.DailyClosure}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/summary/daily/{date}/closure [get]
func (h *SummaryHandler) Closure(c *fiber.Ctx) error {
	out, err := h.uc.Closure(c.UserContext(), c.Params("date"), GetUserID(c))
	if err != nil {
		return handleError(c, err, "")
	}
	return ok(c, fiber.StatusOK, out)
}

// ClosurePDF godoc
// @Summary      Cierre de caja en PDF
// @Tags         summary
// @Security     Bearer
// @Produce      application/pdf
// @Param        date  path  string  true  "Día (YYYY-MM-DD)"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/summary/daily/{date}/closure.pdf [get]
func (h *SummaryHandler) ClosurePDF(c *fiber.Ctx) error {
	date := c.Params("date")
	out, err := h.receipts.DailyClosure(c.UserContext(), date, GetUserID(c))
	if err != nil {
		return handleError(c, err, "")
	}
	return sendPDF(c, "cierre-"+date+".pdf", out)
}

// Range godoc
// @Summary      Resumen diario de un rango de fechas
// @Description  Incluye los días sin movimientos en cero.
// @Tags         summary
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  true  "Desde (YYYY-MM-DD)"
// @Param        endDate    query  string  true  "Hasta (YYYY-MM-DD)"
// @Success      200  {object}  dto.APIResponse{data=[]dto.DailySummary}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/summary/range [get]
func (h *SummaryHandler) Range(c *fiber.Ctx) error {
	var q dto.DateRangeQuery
	if valid, err := bindQuery(c, &q); !valid {
		return err
	}
	out, err := h.uc.Range(c.UserContext(), q.StartDate, q.EndDate, GetUserID(c))
	if err != nil {
		return handleError(c, err, "")
	}
	return ok(c, fiber.StatusOK, out)
}

// Month godoc
// @Summary      Resumen diario de un mes
// @Tags         summary
// @Security     Bearer
// @Produce      json
// @Param        year   path  int  true  "Año"
// @Param        month  path  int  true  "Mes (1-12)"
// @Success      200  {object}  dto.APIResponse{data=[]dto.DailySummary}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/summary/month/{year}/{month} [get]
func (h *SummaryHandler) Month(c *fiber.Ctx) error {
	year, err := c.ParamsInt("year")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "año inválido")
	}
	month, err := c.ParamsInt("month")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "mes inválido")
	}
	out, err := h.uc.Month(c.UserContext(), year, month, GetUserID(c))
	if err != nil {
		return handleError(c, err, "")
	}
	return ok(c, fiber.StatusOK, out)
}
