package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	auth := app.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)

	users := app.Group("/users", handler.AuthRequired)
	users.Get("", handler.ListUsers)
	users.Get("/me", handler.Me)
	users.Get("/:id", handler.GetUser)
	users.Delete("/:id", handler.AdminOnly, handler.DeleteUser)

	projects := app.Group("/projects", handler.AuthRequired)
	projects.Post("", handler.AdminOnly, handler.CreateProject)
	projects.Get("", handler.ListProjects)
	projects.Get("/statistics", handler.ProjectStatistics)
	projects.Get("/:id", handler.GetProject)
	projects.Patch("/:id", handler.AdminOnly, handler.UpdateProject)
	projects.Delete("/:id", handler.AdminOnly, handler.DeleteProject)
}
