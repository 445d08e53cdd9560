package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/taskforge/taskforge/auth"
	"github.com/taskforge/taskforge/handlers"
	"github.com/taskforge/taskforge/middleware"
)

// SetupRoutes wires every endpoint. Auth routes are open; every task
// route sits behind the token gate.
func SetupRoutes(app *fiber.App, authHandler *handlers.AuthHandler, taskHandler *handlers.TaskHandler, tokens *auth.TokenManager) {
	app.Get("/health", handlers.HandleHealthCheck)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	tasks := app.Group("/tasks", middleware.RequireToken(tokens))
	tasks.Get("/", taskHandler.List)
	tasks.Post("/", taskHandler.Create)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Delete("/:id", taskHandler.Delete)
}
