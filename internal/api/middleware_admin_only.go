package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/heroforce/heroforce/internal/models"
)

// AdminOnly gates mutation routes server-side; UI-level role checks are
// not a security boundary.
func (handler *Handler) AdminOnly(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Não autorizado")
	}
	if user.Role != models.RoleAdmin {
		return apiError(c, fiber.StatusForbidden, "Acesso restrito a administradores")
	}
	return c.Next()
}
