package repository

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskhub/models"
)

// OpenDB connects to postgres and migrates the schema.
func OpenDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.Worker{}, &models.Project{}, &models.Task{}); err != nil {
		return nil, err
	}
	return db, nil
}

// GormStore implements the persistence ports on a relational database.
// It honors the same contract as the in-memory Store; batch saves and
// cascading deletes run inside a transaction.
type GormStore struct {
	db *gorm.DB

	prefix      string
	suffix      int
	internalIDs bool
}

func NewGormStore(db *gorm.DB, prefix, suffix string) *GormStore {
	s := &GormStore{db: db}
	if prefix != "" && suffix != "" {
		if n, err := strconv.Atoi(suffix); err == nil {
			s.prefix = prefix
			s.suffix = n
			s.internalIDs = true
		}
	}
	return s
}

func (s *GormStore) Projects() ProjectRepository { return &gormProjects{s} }
func (s *GormStore) Tasks() TaskRepository       { return &gormTasks{s} }
func (s *GormStore) Workers() WorkerRepository   { return &gormWorkers{s} }

// likePattern escapes LIKE metacharacters so substring matches stay
// literal.
func likePattern(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
	return "%" + escaped + "%"
}

type gormProjects struct {
	store *GormStore
}

func (r *gormProjects) FindByID(id uint) (*models.Project, bool, error) {
	var project models.Project
	err := r.store.db.Preload("Tasks").First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &project, true, nil
}

func (r *gormProjects) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	if err := r.store.db.Preload("Tasks").Order("id").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *gormProjects) FindByNameContaining(name string) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.store.db.Preload("Tasks").
		Where("name LIKE ?", likePattern(name)).
		Order("id").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *gormProjects) FindDistinctByTasksNameContaining(name string) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.store.db.Preload("Tasks").
		Distinct("projects.*").
		Joins("JOIN tasks ON tasks.project_id = projects.id").
		Where("tasks.name LIKE ?", likePattern(name)).
		Order("projects.id").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *gormProjects) FindByCode(code string) (*models.Project, bool, error) {
	var project models.Project
	err := r.store.db.Preload("Tasks").Where("code = ?", code).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &project, true, nil
}

func (r *gormProjects) Save(project *models.Project) (*models.Project, error) {
	var saved *models.Project
	err := r.store.db.Transaction(func(tx *gorm.DB) error {
		var err error
		saved, err = r.saveTx(tx, project)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *gormProjects) saveTx(tx *gorm.DB, project *models.Project) (*models.Project, error) {
	var conflict models.Project
	err := tx.Where("code = ? AND id <> ?", project.Code, project.ID).First(&conflict).Error
	if err == nil {
		return nil, &models.ConflictError{
			Message: fmt.Sprintf("Project code %q already in use", project.Code),
			ID:      conflict.ID,
		}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	stored := project.Clone()
	stored.Tasks = nil

	if stored.ID != 0 {
		var existing models.Project
		err := tx.First(&existing, stored.ID).Error
		if err == nil {
			stored.DateCreated = existing.DateCreated
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if err := tx.Save(stored).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &models.ConflictError{
				Message: fmt.Sprintf("Project code %q already in use", stored.Code),
			}
		}
		return nil, err
	}

	if r.store.internalIDs {
		stored.InternalID = fmt.Sprintf("%s-%d-%d", r.store.prefix, stored.ID, r.store.suffix)
		if err := tx.Model(stored).Update("internal_id", stored.InternalID).Error; err != nil {
			return nil, err
		}
	}
	return stored, nil
}

func (r *gormProjects) SaveAll(projects []*models.Project) ([]*models.Project, error) {
	var out []*models.Project
	err := r.store.db.Transaction(func(tx *gorm.DB) error {
		for _, p := range projects {
			saved, err := r.saveTx(tx, p)
			if err != nil {
				return err
			}
			out = append(out, saved)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *gormProjects) DeleteByID(id uint) error {
	return r.store.db.Transaction(func(tx *gorm.DB) error {
		return deleteProjectTx(tx, id)
	})
}

func deleteProjectTx(tx *gorm.DB, id uint) error {
	if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
		return err
	}
	result := tx.Delete(&models.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Project", id)
	}
	return nil
}

func (r *gormProjects) Delete(project *models.Project) error {
	return r.DeleteByID(project.ID)
}

func (r *gormProjects) DeleteByNameContaining(name string) (int, error) {
	var count int
	err := r.store.db.Transaction(func(tx *gorm.DB) error {
		var ids []uint
		err := tx.Model(&models.Project{}).
			Where("name LIKE ?", likePattern(name)).
			Order("id").
			Pluck("id", &ids).Error
		if err != nil {
			return err
		}
		for _, id := range ids {
			if err := deleteProjectTx(tx, id); err != nil {
				return err
			}
		}
		count = len(ids)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *gormProjects) Count() (int64, error) {
	var count int64
	if err := r.store.db.Model(&models.Project{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type gormTasks struct {
	store *GormStore
}

func (r *gormTasks) FindByID(id uint) (*models.Task, bool, error) {
	var task models.Task
	err := r.store.db.First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &task, true, nil
}

func (r *gormTasks) FindAll() ([]*models.Task, error) {
	return r.find(r.store.db)
}

func (r *gormTasks) FindByDueDateGreaterThan(d time.Time) ([]*models.Task, error) {
	return r.find(r.store.db.Where("due_date > ?", d))
}

func (r *gormTasks) FindByDueDateGreaterThanEqual(d time.Time) ([]*models.Task, error) {
	return r.find(r.store.db.Where("due_date >= ?", d))
}

func (r *gormTasks) FindByDueDateBeforeAndStatus(d time.Time, status models.TaskStatus) ([]*models.Task, error) {
	return r.find(r.store.db.Where("due_date < ? AND status = ?", d, status))
}

func (r *gormTasks) FindByAssigneeFirstName(firstName string) ([]*models.Task, error) {
	return r.find(r.store.db.
		Joins("JOIN workers ON workers.id = tasks.assignee_id").
		Where("workers.first_name = ?", firstName))
}

func (r *gormTasks) find(query *gorm.DB) ([]*models.Task, error) {
	var tasks []*models.Task
	if err := query.Order("tasks.id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *gormTasks) Save(task *models.Task) (*models.Task, error) {
	stored := task.Clone()
	err := r.store.db.Transaction(func(tx *gorm.DB) error {
		if stored.ID != 0 {
			var existing models.Task
			err := tx.First(&existing, stored.ID).Error
			if err == nil {
				stored.DateCreated = existing.DateCreated
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}
		return tx.Save(stored).Error
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

func (r *gormTasks) DeleteByID(id uint) error {
	result := r.store.db.Delete(&models.Task{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Task", id)
	}
	return nil
}

func (r *gormTasks) Count() (int64, error) {
	var count int64
	if err := r.store.db.Model(&models.Task{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type gormWorkers struct {
	store *GormStore
}

func (r *gormWorkers) FindByID(id uint) (*models.Worker, bool, error) {
	var worker models.Worker
	err := r.store.db.First(&worker, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &worker, true, nil
}

func (r *gormWorkers) FindAll() ([]*models.Worker, error) {
	var workers []*models.Worker
	if err := r.store.db.Order("id").Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}

func (r *gormWorkers) FindByEmail(email string) (*models.Worker, bool, error) {
	var worker models.Worker
	err := r.store.db.Where("email = ?", email).First(&worker).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &worker, true, nil
}

func (r *gormWorkers) Save(worker *models.Worker) (*models.Worker, error) {
	var conflict models.Worker
	err := r.store.db.Where("email = ? AND id <> ?", worker.Email, worker.ID).First(&conflict).Error
	if err == nil {
		return nil, &models.ConflictError{
			Message: fmt.Sprintf("Worker email %q already in use", worker.Email),
			ID:      conflict.ID,
		}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	stored := worker.Clone()
	if err := r.store.db.Save(stored).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &models.ConflictError{
				Message: fmt.Sprintf("Worker email %q already in use", stored.Email),
			}
		}
		return nil, err
	}
	return stored, nil
}

func (r *gormWorkers) DeleteByID(id uint) error {
	return r.store.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Task{}).
			Where("assignee_id = ?", id).
			Update("assignee_id", nil).Error
		if err != nil {
			return err
		}
		result := tx.Delete(&models.Worker{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.NewNotFoundError("Worker", id)
		}
		return nil
	})
}

func (r *gormWorkers) Count() (int64, error) {
	var count int64
	if err := r.store.db.Model(&models.Worker{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
