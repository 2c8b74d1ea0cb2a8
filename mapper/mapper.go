// Package mapper translates between stored entities and the DTO shapes
// used on the wire. All mapping functions are pure and total: a value
// that cannot be parsed maps to its zero value, never to an error.
package mapper

import (
	"time"

	"taskhub/models"
)

const dateLayout = "2006-01-02"

type ProjectDTO struct {
	ID          *uint     `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DateCreated string    `json:"dateCreated,omitempty"`
	Tasks       []TaskDTO `json:"tasks"`
}

type TaskDTO struct {
	ID          *uint  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DateCreated string `json:"dateCreated,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
	Status      string `json:"status,omitempty"`
	ProjectID   uint   `json:"projectId,omitempty"`
	AssigneeID  *uint  `json:"assigneeId,omitempty"`
}

type WorkerDTO struct {
	ID        *uint  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func ParseDate(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func idValue(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}

func idOf(id *uint) uint {
	if id == nil {
		return 0
	}
	return *id
}

func ProjectToDTO(project *models.Project) ProjectDTO {
	tasks := make([]TaskDTO, 0, len(project.Tasks))
	for i := range project.Tasks {
		tasks = append(tasks, TaskToDTO(&project.Tasks[i]))
	}
	return ProjectDTO{
		ID:          idValue(project.ID),
		Code:        project.Code,
		Name:        project.Name,
		Description: project.Description,
		DateCreated: FormatDate(project.DateCreated),
		Tasks:       tasks,
	}
}

// ProjectFromDTO ignores the task collection: tasks are managed
// through their own endpoints.
func ProjectFromDTO(dto ProjectDTO) *models.Project {
	return &models.Project{
		ID:          idOf(dto.ID),
		Code:        dto.Code,
		Name:        dto.Name,
		Description: dto.Description,
		DateCreated: ParseDate(dto.DateCreated),
	}
}

func TaskToDTO(task *models.Task) TaskDTO {
	return TaskDTO{
		ID:          idValue(task.ID),
		Name:        task.Name,
		Description: task.Description,
		DateCreated: FormatDate(task.DateCreated),
		DueDate:     FormatDate(task.DueDate),
		Status:      string(task.Status),
		ProjectID:   task.ProjectID,
		AssigneeID:  task.AssigneeID,
	}
}

func TaskFromDTO(dto TaskDTO) *models.Task {
	return &models.Task{
		ID:          idOf(dto.ID),
		Name:        dto.Name,
		Description: dto.Description,
		DateCreated: ParseDate(dto.DateCreated),
		DueDate:     ParseDate(dto.DueDate),
		Status:      models.TaskStatus(dto.Status),
		ProjectID:   dto.ProjectID,
		AssigneeID:  dto.AssigneeID,
	}
}

func WorkerToDTO(worker *models.Worker) WorkerDTO {
	return WorkerDTO{
		ID:        idValue(worker.ID),
		Email:     worker.Email,
		FirstName: worker.FirstName,
		LastName:  worker.LastName,
	}
}

func WorkerFromDTO(dto WorkerDTO) *models.Worker {
	return &models.Worker{
		ID:        idOf(dto.ID),
		Email:     dto.Email,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
	}
}
