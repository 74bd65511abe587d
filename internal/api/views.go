package api

import "github.com/heroforce/heroforce/internal/models"

// projectView serializes a project together with the responsible user's
// public fields. The password hash never leaves the models layer.
type projectView struct {
	models.Project
	Responsible models.PublicUser `json:"responsible"`
}

func newProjectView(project models.Project) projectView {
	return projectView{
		Project:     project,
		Responsible: project.Responsible.Public(),
	}
}

func newProjectViews(projects []models.Project) []projectView {
	views := make([]projectView, 0, len(projects))
	for _, project := range projects {
		views = append(views, newProjectView(project))
	}
	return views
}

func newUserViews(users []models.User) []models.PublicUser {
	views := make([]models.PublicUser, 0, len(users))
	for index := range users {
		views = append(views, users[index].Public())
	}
	return views
}
