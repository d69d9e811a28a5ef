package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/OnKodr-dev/inventory-app/internal/application/dto"
	"github.com/OnKodr-dev/inventory-app/pkg/jwt"
)

// LocalDevice clave en c.Locals con el dispositivo del token.
const LocalDevice = "device"

// AuthMiddleware valida el Bearer Token JWT y guarda el dispositivo en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		// fasthttp recorta los espacios finales: "Bearer   " llega como "Bearer".
		if strings.EqualFold(authHeader, "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		device, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalDevice, device)
		return c.Next()
	}
}

// GetDevice devuelve el dispositivo del contexto (después del middleware de auth).
// Vacío si la API corre sin autenticación.
func GetDevice(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalDevice).(string)
	return s
}
