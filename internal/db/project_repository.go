package db

import (
	"github.com/heroforce/heroforce/internal/models"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	database *gorm.DB
}

func NewProjectRepository(database *gorm.DB) *ProjectRepository {
	return &ProjectRepository{database: database}
}

func (repo *ProjectRepository) Create(project *models.Project) error {
	return repo.database.Create(project).Error
}

// FindByID loads the project with its responsible user. Reads never skip
// the join.
func (repo *ProjectRepository) FindByID(projectID string) (models.Project, error) {
	var project models.Project
	if err := repo.database.
		Preload("Responsible").
		First(&project, "id = ?", projectID).Error; err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// FindFiltered combines the optional status and responsible filters with
// AND; an empty filter value means no constraint.
func (repo *ProjectRepository) FindFiltered(status string, responsibleID string) ([]models.Project, error) {
	query := repo.database.Preload("Responsible")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if responsibleID != "" {
		query = query.Where("responsible_id = ?", responsibleID)
	}

	projects := make([]models.Project, 0)
	if err := query.Order("created_at ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// UpdateFields merges the provided columns onto the stored row; columns
// not present in the map keep their prior values.
func (repo *ProjectRepository) UpdateFields(projectID string, fields map[string]any) error {
	return repo.database.Model(&models.Project{}).Where("id = ?", projectID).Updates(fields).Error
}

func (repo *ProjectRepository) Delete(projectID string) (bool, error) {
	result := repo.database.Delete(&models.Project{}, "id = ?", projectID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *ProjectRepository) CountAll() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Project{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *ProjectRepository) CountByStatus(status string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Project{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
