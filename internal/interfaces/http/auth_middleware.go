package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/saborurbano/backoffice/internal/application/dto"
	"github.com/saborurbano/backoffice/pkg/jwt"
)

// AuthMiddleware valida el Bearer token y deja user_id y rol en los locals.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fallo("Token requerido"))
		}
		token := strings.TrimPrefix(header, "Bearer ")
		userID, rol, err := jwt.Parse(secret, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fallo("Token inválido o expirado"))
		}
		c.Locals("user_id", userID)
		c.Locals("rol", rol)
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe ir después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rol := GetRol(c)
		if rol == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fallo("Token sin rol"))
		}
		for _, r := range roles {
			if r == rol {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Fallo("Rol sin permisos para esta operación"))
	}
}

// GetUserID devuelve el user_id dejado por AuthMiddleware, o "" si no hay sesión.
func GetUserID(c *fiber.Ctx) string {
	if v, ok := c.Locals("user_id").(string); ok {
		return v
	}
	return ""
}

// GetRol devuelve el rol dejado por AuthMiddleware, o "" si no hay sesión.
func GetRol(c *fiber.Ctx) string {
	if v, ok := c.Locals("rol").(string); ok {
		return v
	}
	return ""
}
