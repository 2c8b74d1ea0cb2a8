package service

import (
	"taskhub/models"
	"taskhub/repository"
)

type WorkerService struct {
	repo repository.WorkerRepository
}

func NewWorkerService(repo repository.WorkerRepository) *WorkerService {
	return &WorkerService{repo: repo}
}

func (s *WorkerService) FindByID(id uint) (*models.Worker, error) {
	worker, found, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, models.NewNotFoundError("Worker", id)
	}
	return worker, nil
}

func (s *WorkerService) FindAll() ([]*models.Worker, error) {
	return s.repo.FindAll()
}

func (s *WorkerService) FindByEmail(email string) (*models.Worker, bool, error) {
	return s.repo.FindByEmail(email)
}

func (s *WorkerService) Save(worker *models.Worker) (*models.Worker, error) {
	return s.repo.Save(worker)
}

func (s *WorkerService) UpdateByID(id uint, worker *models.Worker) (*models.Worker, error) {
	existing, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	worker.ID = existing.ID
	return s.repo.Save(worker)
}

func (s *WorkerService) DeleteByID(id uint) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	return s.repo.DeleteByID(id)
}
