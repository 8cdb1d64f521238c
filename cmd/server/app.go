package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/caseflow/task-api/internal/config"
	"github.com/caseflow/task-api/internal/platform/postgres"
	"github.com/caseflow/task-api/internal/service"
	"github.com/caseflow/task-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	taskStore   store.TaskStore
	taskService service.TaskService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.taskStore = postgres.NewPostgresTaskStore(db, logger)

	taskRepo := service.NewTaskRepositoryAdapter(app.taskStore, db)

	taskService, err := service.NewTaskService(taskRepo, logger)
	if err != nil {
		// Only reachable with a nil repository, which the wiring above rules out.
		panic(fmt.Sprintf("failed to create task service: %v", err))
	}
	app.taskService = taskService

	logger.Info("Application initialized successfully")
	return app
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
