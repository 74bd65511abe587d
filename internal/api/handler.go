package api

import (
	"time"

	"github.com/heroforce/heroforce/internal/db"
	"github.com/heroforce/heroforce/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	repos    *db.Repositories
	tokens   *services.TokenService
	auth     *services.AuthService
	projects *services.ProjectService
}

func NewHandler(database *gorm.DB, secretKey string, tokenTTL time.Duration) *Handler {
	repos := db.NewRepositories(database)
	tokens := services.NewTokenService(secretKey, tokenTTL)

	return &Handler{
		repos:    repos,
		tokens:   tokens,
		auth:     services.NewAuthService(repos.Users, tokens),
		projects: services.NewProjectService(repos.Projects, repos.Users),
	}
}
