package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"taskhub/mapper"
	"taskhub/models"
	"taskhub/service"
)

type ProjectHandler struct {
	service *service.ProjectService
}

func NewProjectHandler(s *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: s}
}

// pathID parses the {id} route parameter. A non-numeric id is reported
// as a 400 and the second return value is false.
func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid id: "+raw)
		return 0, false
	}
	return uint(id), true
}

func (h *ProjectHandler) FindOne(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	project, err := h.service.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapper.ProjectToDTO(project))
}

func (h *ProjectHandler) FindMany(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var entities []*models.Project
	var err error
	if query.Has("name") {
		entities, err = h.service.FindByName(query.Get("name"))
	} else {
		entities, err = h.service.FindAll()
	}
	if err != nil {
		writeError(w, err)
		return
	}

	list := make([]mapper.ProjectDTO, 0, len(entities))
	for _, p := range entities {
		list = append(list, mapper.ProjectToDTO(p))
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var dto mapper.ProjectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if dto.Name == "" {
		writeProblem(w, http.StatusBadRequest, "name is required")
		return
	}
	saved, err := h.service.Save(mapper.ProjectFromDTO(dto))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapper.ProjectToDTO(saved))
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var dto mapper.ProjectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.service.UpdateByID(id, mapper.ProjectFromDTO(dto))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapper.ProjectToDTO(updated))
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteByID(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
