package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// AuditMutations registra cada petición que cambia estado con el dispositivo que la hizo.
// Va después de AuthMiddleware; sin autenticación el dispositivo queda vacío.
func AuditMutations(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return err
		}
		ev := log.Info()
		if err != nil {
			ev = log.Warn().Err(err)
		}
		ev.Str("device", GetDevice(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Msg("mutación")
		return err
	}
}
