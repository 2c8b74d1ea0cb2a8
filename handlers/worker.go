package handlers

import (
	"encoding/json"
	"net/http"

	"taskhub/mapper"
	"taskhub/service"
)

type WorkerHandler struct {
	service *service.WorkerService
}

func NewWorkerHandler(s *service.WorkerService) *WorkerHandler {
	return &WorkerHandler{service: s}
}

func (h *WorkerHandler) FindOne(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	worker, err := h.service.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapper.WorkerToDTO(worker))
}

func (h *WorkerHandler) FindMany(w http.ResponseWriter, r *http.Request) {
	entities, err := h.service.FindAll()
	if err != nil {
		writeError(w, err)
		return
	}
	list := make([]mapper.WorkerDTO, 0, len(entities))
	for _, worker := range entities {
		list = append(list, mapper.WorkerToDTO(worker))
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *WorkerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var dto mapper.WorkerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if dto.Email == "" {
		writeProblem(w, http.StatusBadRequest, "email is required")
		return
	}
	saved, err := h.service.Save(mapper.WorkerFromDTO(dto))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapper.WorkerToDTO(saved))
}

func (h *WorkerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var dto mapper.WorkerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.service.UpdateByID(id, mapper.WorkerFromDTO(dto))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapper.WorkerToDTO(updated))
}

func (h *WorkerHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
