package repository

import (
	"time"

	"taskhub/models"
)

// ProjectRepository is the persistence port for projects. Single-entity
// lookups report absence through the bool, never through the error.
type ProjectRepository interface {
	FindByID(id uint) (*models.Project, bool, error)
	FindAll() ([]*models.Project, error)
	FindByNameContaining(name string) ([]*models.Project, error)
	FindDistinctByTasksNameContaining(name string) ([]*models.Project, error)
	FindByCode(code string) (*models.Project, bool, error)
	Save(project *models.Project) (*models.Project, error)
	// SaveAll persists the whole batch or nothing at all.
	SaveAll(projects []*models.Project) ([]*models.Project, error)
	// DeleteByID removes the project and every task that belongs to it.
	DeleteByID(id uint) error
	Delete(project *models.Project) error
	DeleteByNameContaining(name string) (int, error)
	Count() (int64, error)
}

type TaskRepository interface {
	FindByID(id uint) (*models.Task, bool, error)
	FindAll() ([]*models.Task, error)
	FindByDueDateGreaterThan(d time.Time) ([]*models.Task, error)
	FindByDueDateGreaterThanEqual(d time.Time) ([]*models.Task, error)
	FindByDueDateBeforeAndStatus(d time.Time, status models.TaskStatus) ([]*models.Task, error)
	FindByAssigneeFirstName(firstName string) ([]*models.Task, error)
	Save(task *models.Task) (*models.Task, error)
	DeleteByID(id uint) error
	Count() (int64, error)
}

type WorkerRepository interface {
	FindByID(id uint) (*models.Worker, bool, error)
	FindAll() ([]*models.Worker, error)
	FindByEmail(email string) (*models.Worker, bool, error)
	Save(worker *models.Worker) (*models.Worker, error)
	DeleteByID(id uint) error
	Count() (int64, error)
}
