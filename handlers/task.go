package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"taskhub/mapper"
	"taskhub/models"
	"taskhub/service"
)

type TaskHandler struct {
	service *service.TaskService
}

func NewTaskHandler(s *service.TaskService) *TaskHandler {
	return &TaskHandler{service: s}
}

func (h *TaskHandler) FindOne(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	task, err := h.service.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapper.TaskToDTO(task))
}

// FindMany lists tasks, optionally filtered by due date, status, or
// assignee first name:
//
//	GET /tasks?dueAfter=2025-02-10        due date strictly after
//	GET /tasks?dueFrom=2025-02-10         due date on or after
//	GET /tasks?dueBefore=…&status=TO_DO   overdue for a status
//	GET /tasks?assignee=John              assignee first name
func (h *TaskHandler) FindMany(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	parseDate := func(key string) (time.Time, bool) {
		d, err := time.Parse("2006-01-02", query.Get(key))
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "invalid "+key+" date, expected YYYY-MM-DD")
			return time.Time{}, false
		}
		return d, true
	}

	var entities []*models.Task
	var err error
	switch {
	case query.Has("dueAfter"):
		d, ok := parseDate("dueAfter")
		if !ok {
			return
		}
		entities, err = h.service.FindByDueDateGreaterThan(d)
	case query.Has("dueFrom"):
		d, ok := parseDate("dueFrom")
		if !ok {
			return
		}
		entities, err = h.service.FindByDueDateGreaterThanEqual(d)
	case query.Has("dueBefore"):
		d, ok := parseDate("dueBefore")
		if !ok {
			return
		}
		status := models.TaskStatus(query.Get("status"))
		if !status.Valid() {
			writeProblem(w, http.StatusBadRequest, "invalid task status "+query.Get("status"))
			return
		}
		entities, err = h.service.FindByDueDateBeforeAndStatus(d, status)
	case query.Has("assignee"):
		entities, err = h.service.FindByAssigneeFirstName(query.Get("assignee"))
	default:
		entities, err = h.service.FindAll()
	}
	if err != nil {
		writeError(w, err)
		return
	}

	list := make([]mapper.TaskDTO, 0, len(entities))
	for _, t := range entities {
		list = append(list, mapper.TaskToDTO(t))
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var dto mapper.TaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if dto.Name == "" {
		writeProblem(w, http.StatusBadRequest, "name is required")
		return
	}
	saved, err := h.service.Save(mapper.TaskFromDTO(dto))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapper.TaskToDTO(saved))
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var dto mapper.TaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.service.UpdateByID(id, mapper.TaskFromDTO(dto))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapper.TaskToDTO(updated))
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
