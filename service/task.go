package service

import (
	"fmt"
	"time"

	"taskhub/models"
	"taskhub/repository"
)

type TaskService struct {
	repo     repository.TaskRepository
	projects repository.ProjectRepository
}

func NewTaskService(repo repository.TaskRepository, projects repository.ProjectRepository) *TaskService {
	return &TaskService{repo: repo, projects: projects}
}

func (s *TaskService) FindByID(id uint) (*models.Task, error) {
	task, found, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, models.NewNotFoundError("Task", id)
	}
	return task, nil
}

func (s *TaskService) FindAll() ([]*models.Task, error) {
	return s.repo.FindAll()
}

func (s *TaskService) FindByDueDateGreaterThan(d time.Time) ([]*models.Task, error) {
	return s.repo.FindByDueDateGreaterThan(d)
}

func (s *TaskService) FindByDueDateGreaterThanEqual(d time.Time) ([]*models.Task, error) {
	return s.repo.FindByDueDateGreaterThanEqual(d)
}

func (s *TaskService) FindByDueDateBeforeAndStatus(d time.Time, status models.TaskStatus) ([]*models.Task, error) {
	return s.repo.FindByDueDateBeforeAndStatus(d, status)
}

func (s *TaskService) FindByAssigneeFirstName(firstName string) ([]*models.Task, error) {
	return s.repo.FindByAssigneeFirstName(firstName)
}

// Save stamps the creation date and defaults the status on first
// persist. Every task must belong to a stored project.
func (s *TaskService) Save(task *models.Task) (*models.Task, error) {
	if task.ID == 0 {
		task.DateCreated = today()
		if task.Status == "" {
			task.Status = models.StatusToDo
		}
	}
	if !task.Status.Valid() {
		return nil, &models.ValidationError{
			Message: fmt.Sprintf("invalid task status %q", task.Status),
		}
	}
	if _, found, err := s.projects.FindByID(task.ProjectID); err != nil {
		return nil, err
	} else if !found {
		return nil, models.NewNotFoundError("Project", task.ProjectID)
	}
	return s.repo.Save(task)
}

func (s *TaskService) UpdateByID(id uint, task *models.Task) (*models.Task, error) {
	existing, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	task.ID = existing.ID
	task.DateCreated = existing.DateCreated
	return s.Save(task)
}

func (s *TaskService) DeleteByID(id uint) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	return s.repo.DeleteByID(id)
}
