package models

import (
	"time"
)

type TaskStatus string

const (
	StatusToDo       TaskStatus = "TO_DO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusOnHold     TaskStatus = "ON_HOLD"
	StatusDone       TaskStatus = "DONE"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusOnHold, StatusDone:
		return true
	}
	return false
}

func (s TaskStatus) Label() string {
	switch s {
	case StatusToDo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusOnHold:
		return "On Hold"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"not null;size:100" json:"name"`
	Description string     `json:"description"`
	DateCreated time.Time  `json:"date_created"`
	DueDate     time.Time  `json:"due_date"`
	Status      TaskStatus `gorm:"not null;size:20" json:"status"`
	ProjectID   uint       `gorm:"index;not null" json:"project_id"`
	AssigneeID  *uint      `gorm:"index" json:"assignee_id,omitempty"`
}

func (t *Task) Clone() *Task {
	clone := *t
	if t.AssigneeID != nil {
		assignee := *t.AssigneeID
		clone.AssigneeID = &assignee
	}
	return &clone
}
