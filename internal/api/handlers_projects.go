package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/heroforce/heroforce/internal/services"
)

type createProjectInput struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Status        string `json:"status"`
	Agilidade     int    `json:"agilidade"`
	Encantamento  int    `json:"encantamento"`
	Eficiencia    int    `json:"eficiencia"`
	Excelencia    int    `json:"excelencia"`
	Transparencia int    `json:"transparencia"`
	Ambicao       int    `json:"ambicao"`
	Completion    int    `json:"completion"`
	ResponsibleID string `json:"responsibleId"`
}

// updateProjectInput uses pointers so an absent key is distinguishable
// from a zero value.
type updateProjectInput struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Status        *string `json:"status"`
	Agilidade     *int    `json:"agilidade"`
	Encantamento  *int    `json:"encantamento"`
	Eficiencia    *int    `json:"eficiencia"`
	Excelencia    *int    `json:"excelencia"`
	Transparencia *int    `json:"transparencia"`
	Ambicao       *int    `json:"ambicao"`
	Completion    *int    `json:"completion"`
	ResponsibleID *string `json:"responsibleId"`
}

func (handler *Handler) CreateProject(c *fiber.Ctx) error {
	var input createProjectInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Dados inválidos")
	}

	creation := services.CreateProjectInput{
		Name:          input.Name,
		Description:   input.Description,
		Status:        input.Status,
		Agilidade:     input.Agilidade,
		Encantamento:  input.Encantamento,
		Eficiencia:    input.Eficiencia,
		Excelencia:    input.Excelencia,
		Transparencia: input.Transparencia,
		Ambicao:       input.Ambicao,
		Completion:    input.Completion,
		ResponsibleID: input.ResponsibleID,
	}
	if messages := services.ValidateCreateProjectInput(creation); len(messages) > 0 {
		return apiValidationError(c, messages)
	}

	project, err := handler.projects.Create(creation)
	if err != nil {
		if errors.Is(err, services.ErrResponsibleNotFound) {
			return apiValidationError(c, []string{"ID do responsável inválido"})
		}
		return apiError(c, fiber.StatusInternalServerError, "Falha ao criar projeto")
	}

	return c.Status(fiber.StatusCreated).JSON(newProjectView(project))
}

func (handler *Handler) ListProjects(c *fiber.Ctx) error {
	status := c.Query("status")
	responsibleID := c.Query("responsibleId")

	projects, err := handler.projects.List(status, responsibleID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Falha ao listar projetos")
	}
	return c.JSON(newProjectViews(projects))
}

func (handler *Handler) ProjectStatistics(c *fiber.Ctx) error {
	statistics, err := handler.projects.Statistics()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Falha ao calcular estatísticas")
	}
	return c.JSON(statistics)
}

func (handler *Handler) GetProject(c *fiber.Ctx) error {
	project, err := handler.projects.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return apiError(c, fiber.StatusNotFound, "Projeto não encontrado")
		}
		return apiError(c, fiber.StatusInternalServerError, "Falha ao carregar projeto")
	}
	return c.JSON(newProjectView(project))
}

func (handler *Handler) UpdateProject(c *fiber.Ctx) error {
	var input updateProjectInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Dados inválidos")
	}

	patch := services.UpdateProjectInput{
		Name:          input.Name,
		Description:   input.Description,
		Status:        input.Status,
		Agilidade:     input.Agilidade,
		Encantamento:  input.Encantamento,
		Eficiencia:    input.Eficiencia,
		Excelencia:    input.Excelencia,
		Transparencia: input.Transparencia,
		Ambicao:       input.Ambicao,
		Completion:    input.Completion,
		ResponsibleID: input.ResponsibleID,
	}
	if messages := services.ValidateUpdateProjectInput(patch); len(messages) > 0 {
		return apiValidationError(c, messages)
	}

	project, err := handler.projects.Update(c.Params("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			return apiError(c, fiber.StatusNotFound, "Projeto não encontrado")
		case errors.Is(err, services.ErrResponsibleNotFound):
			return apiValidationError(c, []string{"ID do responsável inválido"})
		}
		return apiError(c, fiber.StatusInternalServerError, "Falha ao atualizar projeto")
	}

	return c.JSON(newProjectView(project))
}

func (handler *Handler) DeleteProject(c *fiber.Ctx) error {
	if err := handler.projects.Remove(c.Params("id")); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return apiError(c, fiber.StatusNotFound, "Projeto não encontrado")
		}
		return apiError(c, fiber.StatusInternalServerError, "Falha ao remover projeto")
	}
	return c.JSON(fiber.Map{"message": "Projeto removido com sucesso"})
}
