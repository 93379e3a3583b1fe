package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/domain"
)

// ok responde {success:true, data}.
func ok(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(dto.APIResponse{Success: true, Data: data})
}

// okMessage responde {success:true, message}.
func okMessage(c *fiber.Ctx, message string) error {
	return c.JSON(dto.APIResponse{Success: true, Message: message})
}

// fail responde {success:false, error, code}.
func fail(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: message, Code: code})
}

// notFound 404 con mensaje propio del recurso.
func notFound(c *fiber.Ctx, message string) error {
	return fail(c, fiber.StatusNotFound, "NOT_FOUND", message)
}

// handleError traduce errores de dominio a HTTP. Los recursos de otro usuario
// responden igual que los inexistentes.
func handleError(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "datos inválidos")
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas")
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrForbidden):
		return notFound(c, notFoundMsg)
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fail(c, fiber.StatusConflict, "EMAIL_EXISTS", "el email ya está registrado")
	case errors.Is(err, domain.ErrDuplicate):
		return fail(c, fiber.StatusConflict, "DUPLICATE", "el recurso ya existe")
	case errors.Is(err, domain.ErrConflict):
		return fail(c, fiber.StatusConflict, "CONFLICT", err.Error())
	}
	return fail(c, fiber.StatusInternalServerError, "INTERNAL", err.Error())
}

// sendPDF responde el documento inline con su nombre de archivo.
func sendPDF(c *fiber.Ctx, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Status(fiber.StatusOK).Send(body)
}
