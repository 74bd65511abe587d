package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/heroforce/heroforce/internal/models"
)

const contextUserKey = "heroforce_user"

// AuthRequired guards a route with a bearer token. The token subject must
// still resolve to a stored user, so deleting a hero kills their
// outstanding tokens immediately.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return apiError(c, fiber.StatusUnauthorized, "Não autorizado")
	}

	claims, err := handler.tokens.Verify(token)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "Não autorizado")
	}

	user, err := handler.auth.ValidateSession(claims.UserID)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "Não autorizado")
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
