package main

import (
	"log"
	"net/http"

	"taskhub/config"
	"taskhub/handlers"
	"taskhub/repository"
	"taskhub/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Pick the repository implementation: in-memory by default, the
	// database-backed one when a DSN is configured.
	var projectRepo repository.ProjectRepository
	var taskRepo repository.TaskRepository
	var workerRepo repository.WorkerRepository
	if cfg.DatabaseURL != "" {
		db, err := repository.OpenDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		store := repository.NewGormStore(db, cfg.ProjectPrefix, cfg.ProjectSuffix)
		projectRepo, taskRepo, workerRepo = store.Projects(), store.Tasks(), store.Workers()
	} else {
		store := repository.NewStore(cfg.ProjectPrefix, cfg.ProjectSuffix)
		projectRepo, taskRepo, workerRepo = store.Projects(), store.Tasks(), store.Workers()
	}

	// Initialize services and handlers
	projectHandler := handlers.NewProjectHandler(service.NewProjectService(projectRepo))
	taskHandler := handlers.NewTaskHandler(service.NewTaskService(taskRepo, projectRepo))
	workerHandler := handlers.NewWorkerHandler(service.NewWorkerService(workerRepo))

	// Setup router
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Mount("/", handlers.NewRouter(projectHandler, taskHandler, workerHandler))

	log.Printf("Server starting on port %s", cfg.ServerPort)
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, router))
}
