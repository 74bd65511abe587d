package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/heroforce/heroforce/internal/db"
	"gorm.io/gorm"
)

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.repos.Users.ListAll()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Falha ao listar heróis")
	}
	return c.JSON(newUserViews(users))
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Não autorizado")
	}
	return c.JSON(user.Public())
}

func (handler *Handler) GetUser(c *fiber.Ctx) error {
	user, err := handler.repos.Users.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "Herói não encontrado")
		}
		return apiError(c, fiber.StatusInternalServerError, "Falha ao carregar herói")
	}
	return c.JSON(user.Public())
}

func (handler *Handler) DeleteUser(c *fiber.Ctx) error {
	existed, err := handler.repos.Users.Delete(c.Params("id"))
	if err != nil {
		if db.IsForeignKeyConstraintError(err) {
			return apiError(c, fiber.StatusConflict, "Herói é responsável por projetos e não pode ser removido")
		}
		return apiError(c, fiber.StatusInternalServerError, "Falha ao remover herói")
	}
	if !existed {
		return apiError(c, fiber.StatusNotFound, "Herói não encontrado")
	}
	return c.JSON(fiber.Map{"message": "Herói removido com sucesso"})
}
