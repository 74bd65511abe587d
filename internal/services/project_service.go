package services

import (
	"errors"

	"github.com/heroforce/heroforce/internal/models"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrResponsibleNotFound = errors.New("responsible user not found")
)

type ProjectRepository interface {
	Create(project *models.Project) error
	FindByID(projectID string) (models.Project, error)
	FindFiltered(status string, responsibleID string) ([]models.Project, error)
	UpdateFields(projectID string, fields map[string]any) error
	Delete(projectID string) (bool, error)
	CountAll() (int64, error)
	CountByStatus(status string) (int64, error)
}

type ResponsibleResolver interface {
	FindByID(userID string) (models.User, error)
}

type ProjectService struct {
	projects ProjectRepository
	users    ResponsibleResolver
}

func NewProjectService(projects ProjectRepository, users ResponsibleResolver) *ProjectService {
	return &ProjectService{projects: projects, users: users}
}

type ProjectStatistics struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
	Completed  int64 `json:"completed"`
}

func (service *ProjectService) Create(input CreateProjectInput) (models.Project, error) {
	if _, err := service.users.FindByID(input.ResponsibleID); err != nil {
		return models.Project{}, ErrResponsibleNotFound
	}

	status := input.Status
	if status == "" {
		status = models.StatusPending
	}

	project := models.Project{
		Name:          input.Name,
		Description:   input.Description,
		Status:        status,
		Agilidade:     input.Agilidade,
		Encantamento:  input.Encantamento,
		Eficiencia:    input.Eficiencia,
		Excelencia:    input.Excelencia,
		Transparencia: input.Transparencia,
		Ambicao:       input.Ambicao,
		Completion:    input.Completion,
		ResponsibleID: input.ResponsibleID,
	}
	if err := service.projects.Create(&project); err != nil {
		return models.Project{}, err
	}

	return service.projects.FindByID(project.ID)
}

func (service *ProjectService) List(status string, responsibleID string) ([]models.Project, error) {
	return service.projects.FindFiltered(status, responsibleID)
}

func (service *ProjectService) GetByID(projectID string) (models.Project, error) {
	project, err := service.projects.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, ErrProjectNotFound
		}
		return models.Project{}, err
	}
	return project, nil
}

// Update merges only the provided fields; a patch that carries no fields
// returns the stored project unchanged.
func (service *ProjectService) Update(projectID string, input UpdateProjectInput) (models.Project, error) {
	if _, err := service.GetByID(projectID); err != nil {
		return models.Project{}, err
	}

	if input.ResponsibleID != nil {
		if _, err := service.users.FindByID(*input.ResponsibleID); err != nil {
			return models.Project{}, ErrResponsibleNotFound
		}
	}

	updates := BuildProjectUpdates(input)
	if len(updates) > 0 {
		if err := service.projects.UpdateFields(projectID, updates); err != nil {
			return models.Project{}, err
		}
	}

	return service.projects.FindByID(projectID)
}

func (service *ProjectService) Remove(projectID string) error {
	existed, err := service.projects.Delete(projectID)
	if err != nil {
		return err
	}
	if !existed {
		return ErrProjectNotFound
	}
	return nil
}

// Statistics runs four independent counts; under concurrent writes the
// numbers may disagree by the margin of in-flight mutations.
func (service *ProjectService) Statistics() (ProjectStatistics, error) {
	total, err := service.projects.CountAll()
	if err != nil {
		return ProjectStatistics{}, err
	}
	pending, err := service.projects.CountByStatus(models.StatusPending)
	if err != nil {
		return ProjectStatistics{}, err
	}
	inProgress, err := service.projects.CountByStatus(models.StatusInProgress)
	if err != nil {
		return ProjectStatistics{}, err
	}
	completed, err := service.projects.CountByStatus(models.StatusCompleted)
	if err != nil {
		return ProjectStatistics{}, err
	}

	return ProjectStatistics{
		Total:      total,
		Pending:    pending,
		InProgress: inProgress,
		Completed:  completed,
	}, nil
}
