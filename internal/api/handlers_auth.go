package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/heroforce/heroforce/internal/services"
)

type registerInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Character string `json:"character"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Dados inválidos")
	}

	registration := services.RegisterInput{
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Character: strings.TrimSpace(input.Character),
		Password:  input.Password,
		Role:      input.Role,
	}
	if messages := services.ValidateRegisterInput(registration); len(messages) > 0 {
		return apiValidationError(c, messages)
	}

	result, err := handler.auth.Register(registration)
	if err != nil {
		if errors.Is(err, services.ErrEmailAlreadyRegistered) {
			return apiError(c, fiber.StatusConflict, "Email já cadastrado")
		}
		return apiError(c, fiber.StatusInternalServerError, "Falha ao criar conta")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"access_token": result.AccessToken,
		"user":         result.User.Public(),
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Dados inválidos")
	}

	email, password, err := services.NormalizeLoginInput(input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Dados inválidos")
	}

	result, err := handler.auth.Login(email, password)
	if err != nil {
		// One message for both unknown email and wrong password.
		return apiError(c, fiber.StatusUnauthorized, "Credenciais inválidas")
	}

	return c.JSON(fiber.Map{
		"access_token": result.AccessToken,
		"user":         result.User.Public(),
	})
}
