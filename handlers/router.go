package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter wires the REST endpoints. Middleware is attached by the
// caller so tests can mount the bare routes.
func NewRouter(projects *ProjectHandler, tasks *TaskHandler, workers *WorkerHandler) *chi.Mux {
	router := chi.NewRouter()

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	router.Route("/projects", func(r chi.Router) {
		r.Get("/", projects.FindMany)
		r.Post("/", projects.Create)
		r.Get("/{id}", projects.FindOne)
		r.Put("/{id}", projects.Update)
		r.Delete("/{id}", projects.Delete)
	})

	router.Route("/tasks", func(r chi.Router) {
		r.Get("/", tasks.FindMany)
		r.Post("/", tasks.Create)
		r.Get("/{id}", tasks.FindOne)
		r.Put("/{id}", tasks.Update)
		r.Delete("/{id}", tasks.Delete)
	})

	router.Route("/workers", func(r chi.Router) {
		r.Get("/", workers.FindMany)
		r.Post("/", workers.Create)
		r.Get("/{id}", workers.FindOne)
		r.Put("/{id}", workers.Update)
		r.Delete("/{id}", workers.Delete)
	})

	return router
}
