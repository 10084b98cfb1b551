package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/agoramarket/agora-api/internal/application/dto"
	"github.com/agoramarket/agora-api/pkg/jwt"
)

// Local key para el handle de la cuenta autenticada en Fiber.
const LocalCuenta = "cuenta"

// AuthMiddleware valida el Bearer Token JWT y deja el handle de la cuenta en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		cuenta, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalCuenta, cuenta)
		return c.Next()
	}
}

// GetCuenta devuelve el handle de la cuenta autenticada (después del middleware de auth).
func GetCuenta(c *fiber.Ctx) string {
	v := c.Locals(LocalCuenta)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
