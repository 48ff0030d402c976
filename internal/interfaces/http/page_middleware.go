package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okasc/intranet-api/internal/application/dto"
	"github.com/okasc/intranet-api/internal/domain/entity"
)

// pageChecker es el contrato mínimo que necesita el middleware para verificar páginas.
// Lo implementa *usecase.NavigationService; el uso de interfaz evita el import circular.
type pageChecker interface {
	HasPageAccess(role entity.Role, page entity.Page) bool
}

// RequirePage devuelve un middleware Fiber que verifica si el rol del token JWT
// puede abrir la página. Debe usarse DESPUÉS de AuthMiddleware (necesita LocalRole).
// Es la misma tabla con la que se construye el menú.
//
// Comportamiento:
//   - 401 Unauthorized → no hay rol en el contexto.
//   - 403 PAGE_FORBIDDEN → la página no está en los permisos del rol.
func RequirePage(page entity.Page, checker pageChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "rol no encontrado en el token",
			})
		}
		if !checker.HasPageAccess(role, page) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "PAGE_FORBIDDEN",
				Message: "la página '" + page.Label() + "' no está disponible para el rol " + string(role),
			})
		}
		return c.Next()
	}
}
