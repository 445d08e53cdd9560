package app

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/taskforge/taskforge/auth"
	"github.com/taskforge/taskforge/config"
	"github.com/taskforge/taskforge/database"
	"github.com/taskforge/taskforge/handlers"
	"github.com/taskforge/taskforge/router"
	"github.com/taskforge/taskforge/service"
	"github.com/taskforge/taskforge/store"
)

// New assembles a fully wired Fiber app over the given stores. The
// stores are passed in so tests can run the whole stack against an
// in-memory database.
func New(cfg *config.Config, users store.UserStore, tasks store.TaskStore) *fiber.App {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authHandler := handlers.NewAuthHandler(service.NewAuthService(users, tokens))
	taskHandler := handlers.NewTaskHandler(service.NewTaskService(tasks))

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path} ${latency}\n",
	}))

	router.SetupRoutes(app, authHandler, taskHandler, tokens)
	config.AddSwaggerRoutes(app)

	return app
}

// SetupAndRunApp loads configuration, connects the store selected by
// the connection string and serves until the listener fails.
func SetupAndRunApp() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var users store.UserStore
	var tasks store.TaskStore

	if path, ok := strings.CutPrefix(cfg.DatabaseURL, "sqlite:"); ok {
		db, err := database.ConnectSQLite(path)
		if err != nil {
			return err
		}
		defer db.Close()
		st := store.NewSQLite(db)
		users, tasks = st, st
	} else {
		pool, err := database.ConnectPostgres(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()
		st := store.NewPostgres(pool)
		users, tasks = st, st
	}

	app := New(cfg, users, tasks)
	return app.Listen(":" + cfg.Port)
}
