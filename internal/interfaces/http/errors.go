package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/OnKodr-dev/inventory-app/internal/application/dto"
	"github.com/OnKodr-dev/inventory-app/internal/domain"
)

var messages = map[string]string{
	domain.CodeEmptyField:        "falta un campo obligatorio",
	domain.CodeDuplicateSKU:      "ya existe un artículo con ese SKU",
	domain.CodeItemHasMovements:  "el artículo tiene movimientos y no se puede borrar",
	domain.CodeNotFound:          "recurso no encontrado",
	domain.CodeInvalidInput:      "datos inválidos",
	domain.CodeInsufficientStock: "stock insuficiente",
}

// statusFor código HTTP para un código de dominio.
func statusFor(code string) int {
	switch code {
	case domain.CodeEmptyField, domain.CodeInvalidInput:
		return fiber.StatusBadRequest
	case domain.CodeDuplicateSKU, domain.CodeItemHasMovements, domain.CodeInsufficientStock:
		return fiber.StatusConflict
	case domain.CodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// writeError responde con dto.ErrorResponse. Los errores que no son de dominio pasan al
// ErrorHandler de la app.
func writeError(c *fiber.Ctx, err error) error {
	if !domain.IsRejection(err) {
		return err
	}
	code := domain.Code(err)
	return c.Status(statusFor(code)).JSON(dto.ErrorResponse{Code: code, Message: messages[code]})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: domain.CodeInvalidInput, Message: msg})
}

func notFound(c *fiber.Ctx) error {
	return writeError(c, domain.ErrNotFound)
}

// ErrorHandler registra el error y responde INTERNAL (o el status de un *fiber.Error).
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: codeForStatus(fe.Code), Message: fe.Message})
		}
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: domain.CodeInternal, Message: "error interno"})
	}
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return domain.CodeNotFound
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return domain.CodeInvalidInput
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	default:
		return domain.CodeInternal
	}
}
