package service

import (
	"time"

	"taskhub/models"
	"taskhub/repository"
)

// today returns the current calendar date, without a time component.
func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type ProjectService struct {
	repo repository.ProjectRepository
}

func NewProjectService(repo repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) FindByID(id uint) (*models.Project, error) {
	project, found, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, models.NewNotFoundError("Project", id)
	}
	return project, nil
}

func (s *ProjectService) FindAll() ([]*models.Project, error) {
	return s.repo.FindAll()
}

func (s *ProjectService) FindByName(name string) ([]*models.Project, error) {
	return s.repo.FindByNameContaining(name)
}

func (s *ProjectService) FindByCode(code string) (*models.Project, bool, error) {
	return s.repo.FindByCode(code)
}

// Save stamps the creation date on first persist and passes everything
// else through to the repository.
func (s *ProjectService) Save(project *models.Project) (*models.Project, error) {
	if project.ID == 0 {
		project.DateCreated = today()
	}
	return s.repo.Save(project)
}

func (s *ProjectService) SaveAll(projects []*models.Project) ([]*models.Project, error) {
	for _, p := range projects {
		if p.ID == 0 {
			p.DateCreated = today()
		}
	}
	return s.repo.SaveAll(projects)
}

// UpdateByID replaces the stored project, keeping its id and original
// creation date.
func (s *ProjectService) UpdateByID(id uint, project *models.Project) (*models.Project, error) {
	existing, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	project.ID = existing.ID
	project.DateCreated = existing.DateCreated
	return s.repo.Save(project)
}

func (s *ProjectService) DeleteByID(id uint) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	return s.repo.DeleteByID(id)
}
