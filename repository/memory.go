package repository

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"taskhub/models"
)

// Store is the default, in-memory implementation of the persistence
// ports. One mutex guards all three collections; queries are linear
// scans and results come back in insertion order.
type Store struct {
	mu sync.Mutex

	prefix      string
	suffix      int
	internalIDs bool

	projects []*models.Project
	tasks    []*models.Task
	workers  []*models.Worker

	nextProjectID uint
	nextTaskID    uint
	nextWorkerID  uint
}

// NewStore builds an empty store. When both prefix and suffix are
// configured (suffix must parse as an integer, anything else is
// ignored) every saved project gets an internal id of the form
// "<prefix>-<id>-<suffix>".
func NewStore(prefix, suffix string) *Store {
	s := &Store{
		nextProjectID: 1,
		nextTaskID:    1,
		nextWorkerID:  1,
	}
	if prefix != "" && suffix != "" {
		if n, err := strconv.Atoi(suffix); err == nil {
			s.prefix = prefix
			s.suffix = n
			s.internalIDs = true
		}
	}
	return s
}

func (s *Store) Projects() ProjectRepository { return &memoryProjects{s} }
func (s *Store) Tasks() TaskRepository       { return &memoryTasks{s} }
func (s *Store) Workers() WorkerRepository   { return &memoryWorkers{s} }

// projectWithTasks returns a detached copy with the task set derived
// from the task collection. The store never holds mutual references.
func (s *Store) projectWithTasks(p *models.Project) *models.Project {
	clone := p.Clone()
	clone.Tasks = []models.Task{}
	for _, t := range s.tasks {
		if t.ProjectID == p.ID {
			clone.Tasks = append(clone.Tasks, *t.Clone())
		}
	}
	return clone
}

func (s *Store) findProjectIndex(id uint) int {
	return slices.IndexFunc(s.projects, func(p *models.Project) bool { return p.ID == id })
}

func (s *Store) saveProject(p *models.Project) (*models.Project, error) {
	for _, existing := range s.projects {
		if existing.Code == p.Code && existing.ID != p.ID {
			return nil, &models.ConflictError{
				Message: fmt.Sprintf("Project code %q already in use", p.Code),
				ID:      existing.ID,
			}
		}
	}

	stored := p.Clone()
	stored.Tasks = nil

	if idx := s.findProjectIndex(p.ID); p.ID != 0 && idx >= 0 {
		stored.DateCreated = s.projects[idx].DateCreated
		s.setInternalID(stored)
		s.projects[idx] = stored
		return s.projectWithTasks(stored), nil
	}

	if stored.ID == 0 {
		stored.ID = s.nextProjectID
		s.nextProjectID++
	} else if stored.ID >= s.nextProjectID {
		s.nextProjectID = stored.ID + 1
	}
	s.setInternalID(stored)
	s.projects = append(s.projects, stored)
	return s.projectWithTasks(stored), nil
}

func (s *Store) setInternalID(p *models.Project) {
	if s.internalIDs {
		p.InternalID = fmt.Sprintf("%s-%d-%d", s.prefix, p.ID, s.suffix)
	}
}

func (s *Store) deleteProject(id uint) error {
	idx := s.findProjectIndex(id)
	if idx < 0 {
		return models.NewNotFoundError("Project", id)
	}
	s.projects = slices.Delete(s.projects, idx, idx+1)
	s.tasks = slices.DeleteFunc(s.tasks, func(t *models.Task) bool { return t.ProjectID == id })
	return nil
}

type memoryProjects struct {
	store *Store
}

func (r *memoryProjects) FindByID(id uint) (*models.Project, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if idx := r.store.findProjectIndex(id); idx >= 0 {
		return r.store.projectWithTasks(r.store.projects[idx]), true, nil
	}
	return nil, false, nil
}

func (r *memoryProjects) FindAll() ([]*models.Project, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*models.Project, 0, len(r.store.projects))
	for _, p := range r.store.projects {
		out = append(out, r.store.projectWithTasks(p))
	}
	return out, nil
}

func (r *memoryProjects) FindByNameContaining(name string) ([]*models.Project, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*models.Project
	for _, p := range r.store.projects {
		if strings.Contains(p.Name, name) {
			out = append(out, r.store.projectWithTasks(p))
		}
	}
	return out, nil
}

func (r *memoryProjects) FindDistinctByTasksNameContaining(name string) ([]*models.Project, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*models.Project
	for _, p := range r.store.projects {
		for _, t := range r.store.tasks {
			if t.ProjectID == p.ID && strings.Contains(t.Name, name) {
				out = append(out, r.store.projectWithTasks(p))
				break
			}
		}
	}
	return out, nil
}

func (r *memoryProjects) FindByCode(code string) (*models.Project, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range r.store.projects {
		if p.Code == code {
			return r.store.projectWithTasks(p), true, nil
		}
	}
	return nil, false, nil
}

func (r *memoryProjects) Save(project *models.Project) (*models.Project, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.saveProject(project)
}

func (r *memoryProjects) SaveAll(projects []*models.Project) ([]*models.Project, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// Stored structs are never mutated in place, so restoring the slice
	// is enough to undo a partially applied batch.
	backup := slices.Clone(r.store.projects)
	out := make([]*models.Project, 0, len(projects))
	for _, p := range projects {
		stored, err := r.store.saveProject(p)
		if err != nil {
			r.store.projects = backup
			return nil, err
		}
		out = append(out, stored)
	}
	return out, nil
}

func (r *memoryProjects) DeleteByID(id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.deleteProject(id)
}

func (r *memoryProjects) Delete(project *models.Project) error {
	return r.DeleteByID(project.ID)
}

func (r *memoryProjects) DeleteByNameContaining(name string) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var ids []uint
	for _, p := range r.store.projects {
		if strings.Contains(p.Name, name) {
			ids = append(ids, p.ID)
		}
	}
	for _, id := range ids {
		if err := r.store.deleteProject(id); err != nil {
			return 0, err
		}
	}
	return len(ids), nil
}

func (r *memoryProjects) Count() (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.projects)), nil
}

type memoryTasks struct {
	store *Store
}

func (r *memoryTasks) findIndex(id uint) int {
	return slices.IndexFunc(r.store.tasks, func(t *models.Task) bool { return t.ID == id })
}

func (r *memoryTasks) FindByID(id uint) (*models.Task, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if idx := r.findIndex(id); idx >= 0 {
		return r.store.tasks[idx].Clone(), true, nil
	}
	return nil, false, nil
}

func (r *memoryTasks) FindAll() ([]*models.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*models.Task, 0, len(r.store.tasks))
	for _, t := range r.store.tasks {
		out = append(out, t.Clone())
	}
	return out, nil
}

func (r *memoryTasks) FindByDueDateGreaterThan(d time.Time) ([]*models.Task, error) {
	return r.filter(func(t *models.Task) bool { return t.DueDate.After(d) })
}

func (r *memoryTasks) FindByDueDateGreaterThanEqual(d time.Time) ([]*models.Task, error) {
	return r.filter(func(t *models.Task) bool { return !t.DueDate.Before(d) })
}

func (r *memoryTasks) FindByDueDateBeforeAndStatus(d time.Time, status models.TaskStatus) ([]*models.Task, error) {
	return r.filter(func(t *models.Task) bool { return t.DueDate.Before(d) && t.Status == status })
}

func (r *memoryTasks) FindByAssigneeFirstName(firstName string) ([]*models.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*models.Task
	for _, t := range r.store.tasks {
		if t.AssigneeID == nil {
			continue
		}
		for _, w := range r.store.workers {
			if w.ID == *t.AssigneeID && w.FirstName == firstName {
				out = append(out, t.Clone())
				break
			}
		}
	}
	return out, nil
}

func (r *memoryTasks) filter(keep func(*models.Task) bool) ([]*models.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*models.Task
	for _, t := range r.store.tasks {
		if keep(t) {
			out = append(out, t.Clone())
		}
	}
	return out, nil
}

func (r *memoryTasks) Save(task *models.Task) (*models.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := task.Clone()
	if idx := r.findIndex(task.ID); task.ID != 0 && idx >= 0 {
		stored.DateCreated = r.store.tasks[idx].DateCreated
		r.store.tasks[idx] = stored
		return stored.Clone(), nil
	}

	if stored.ID == 0 {
		stored.ID = r.store.nextTaskID
		r.store.nextTaskID++
	} else if stored.ID >= r.store.nextTaskID {
		r.store.nextTaskID = stored.ID + 1
	}
	r.store.tasks = append(r.store.tasks, stored)
	return stored.Clone(), nil
}

func (r *memoryTasks) DeleteByID(id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	idx := r.findIndex(id)
	if idx < 0 {
		return models.NewNotFoundError("Task", id)
	}
	r.store.tasks = slices.Delete(r.store.tasks, idx, idx+1)
	return nil
}

func (r *memoryTasks) Count() (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.tasks)), nil
}

type memoryWorkers struct {
	store *Store
}

func (r *memoryWorkers) findIndex(id uint) int {
	return slices.IndexFunc(r.store.workers, func(w *models.Worker) bool { return w.ID == id })
}

func (r *memoryWorkers) FindByID(id uint) (*models.Worker, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if idx := r.findIndex(id); idx >= 0 {
		return r.store.workers[idx].Clone(), true, nil
	}
	return nil, false, nil
}

func (r *memoryWorkers) FindAll() ([]*models.Worker, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*models.Worker, 0, len(r.store.workers))
	for _, w := range r.store.workers {
		out = append(out, w.Clone())
	}
	return out, nil
}

func (r *memoryWorkers) FindByEmail(email string) (*models.Worker, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, w := range r.store.workers {
		if w.Email == email {
			return w.Clone(), true, nil
		}
	}
	return nil, false, nil
}

func (r *memoryWorkers) Save(worker *models.Worker) (*models.Worker, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.workers {
		if existing.Email == worker.Email && existing.ID != worker.ID {
			return nil, &models.ConflictError{
				Message: fmt.Sprintf("Worker email %q already in use", worker.Email),
				ID:      existing.ID,
			}
		}
	}

	stored := worker.Clone()
	if idx := r.findIndex(worker.ID); worker.ID != 0 && idx >= 0 {
		r.store.workers[idx] = stored
		return stored.Clone(), nil
	}

	if stored.ID == 0 {
		stored.ID = r.store.nextWorkerID
		r.store.nextWorkerID++
	} else if stored.ID >= r.store.nextWorkerID {
		r.store.nextWorkerID = stored.ID + 1
	}
	r.store.workers = append(r.store.workers, stored)
	return stored.Clone(), nil
}

func (r *memoryWorkers) DeleteByID(id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	idx := r.findIndex(id)
	if idx < 0 {
		return models.NewNotFoundError("Worker", id)
	}
	r.store.workers = slices.Delete(r.store.workers, idx, idx+1)

	// Tasks keep existing when their assignee goes away, they just
	// become unassigned.
	for _, t := range r.store.tasks {
		if t.AssigneeID != nil && *t.AssigneeID == id {
			t.AssigneeID = nil
		}
	}
	return nil
}

func (r *memoryWorkers) Count() (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.workers)), nil
}
