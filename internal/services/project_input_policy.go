package services

import (
	"fmt"
	"strings"

	"github.com/heroforce/heroforce/internal/models"
)

type CreateProjectInput struct {
	Name          string
	Description   string
	Status        string
	Agilidade     int
	Encantamento  int
	Eficiencia    int
	Excelencia    int
	Transparencia int
	Ambicao       int
	Completion    int
	ResponsibleID string
}

// UpdateProjectInput carries a partial patch: nil means the field was not
// provided and keeps its stored value.
type UpdateProjectInput struct {
	Name          *string
	Description   *string
	Status        *string
	Agilidade     *int
	Encantamento  *int
	Eficiencia    *int
	Excelencia    *int
	Transparencia *int
	Ambicao       *int
	Completion    *int
	ResponsibleID *string
}

type goalField struct {
	label     string
	masculine bool
	value     int
}

func ValidateCreateProjectInput(input CreateProjectInput) []string {
	messages := make([]string, 0)

	if strings.TrimSpace(input.Name) == "" {
		messages = append(messages, "Nome é obrigatório")
	}
	if strings.TrimSpace(input.Description) == "" {
		messages = append(messages, "Descrição é obrigatória")
	}
	if input.Status != "" && !models.ValidProjectStatus(input.Status) {
		messages = append(messages, "Status inválido")
	}

	goals := []goalField{
		{label: "Agilidade", value: input.Agilidade},
		{label: "Encantamento", masculine: true, value: input.Encantamento},
		{label: "Eficiência", value: input.Eficiencia},
		{label: "Excelência", value: input.Excelencia},
		{label: "Transparência", value: input.Transparencia},
		{label: "Ambição", value: input.Ambicao},
		{label: "Conclusão", value: input.Completion},
	}
	for _, goal := range goals {
		if message := validateGoalRange(goal.label, goal.masculine, goal.value); message != "" {
			messages = append(messages, message)
		}
	}

	if strings.TrimSpace(input.ResponsibleID) == "" {
		messages = append(messages, "Responsável é obrigatório")
	}

	return messages
}

func ValidateUpdateProjectInput(input UpdateProjectInput) []string {
	messages := make([]string, 0)

	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		messages = append(messages, "Nome é obrigatório")
	}
	if input.Description != nil && strings.TrimSpace(*input.Description) == "" {
		messages = append(messages, "Descrição é obrigatória")
	}
	if input.Status != nil && !models.ValidProjectStatus(*input.Status) {
		messages = append(messages, "Status inválido")
	}
	if input.ResponsibleID != nil && strings.TrimSpace(*input.ResponsibleID) == "" {
		messages = append(messages, "Responsável é obrigatório")
	}

	goals := []struct {
		label     string
		masculine bool
		value     *int
	}{
		{label: "Agilidade", value: input.Agilidade},
		{label: "Encantamento", masculine: true, value: input.Encantamento},
		{label: "Eficiência", value: input.Eficiencia},
		{label: "Excelência", value: input.Excelencia},
		{label: "Transparência", value: input.Transparencia},
		{label: "Ambição", value: input.Ambicao},
		{label: "Conclusão", value: input.Completion},
	}
	for _, goal := range goals {
		if goal.value == nil {
			continue
		}
		if message := validateGoalRange(goal.label, goal.masculine, *goal.value); message != "" {
			messages = append(messages, message)
		}
	}

	return messages
}

func validateGoalRange(label string, masculine bool, value int) string {
	minWord, maxWord := "mínima", "máxima"
	if masculine {
		minWord, maxWord = "mínimo", "máximo"
	}
	if value < 0 {
		return fmt.Sprintf("%s %s é 0", label, minWord)
	}
	if value > 100 {
		return fmt.Sprintf("%s %s é 100", label, maxWord)
	}
	return ""
}

// BuildProjectUpdates maps the provided patch fields onto column updates.
// Omitted fields stay out of the map so the store leaves them untouched.
func BuildProjectUpdates(input UpdateProjectInput) map[string]any {
	updates := make(map[string]any)

	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.Agilidade != nil {
		updates["agilidade"] = *input.Agilidade
	}
	if input.Encantamento != nil {
		updates["encantamento"] = *input.Encantamento
	}
	if input.Eficiencia != nil {
		updates["eficiencia"] = *input.Eficiencia
	}
	if input.Excelencia != nil {
		updates["excelencia"] = *input.Excelencia
	}
	if input.Transparencia != nil {
		updates["transparencia"] = *input.Transparencia
	}
	if input.Ambicao != nil {
		updates["ambicao"] = *input.Ambicao
	}
	if input.Completion != nil {
		updates["completion"] = *input.Completion
	}
	if input.ResponsibleID != nil {
		updates["responsible_id"] = *input.ResponsibleID
	}

	return updates
}
