package models

import (
	"time"
)

type Project struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Code        string    `gorm:"uniqueIndex;not null;size:50" json:"code"`
	Name        string    `gorm:"not null;size:100" json:"name"`
	Description string    `json:"description"`
	InternalID  string    `json:"internal_id,omitempty"`
	DateCreated time.Time `json:"date_created"`
	Tasks       []Task    `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
}

// Clone returns a deep copy so stored state cannot be mutated through
// a retained reference.
func (p *Project) Clone() *Project {
	clone := *p
	if p.Tasks != nil {
		clone.Tasks = make([]Task, len(p.Tasks))
		for i, t := range p.Tasks {
			clone.Tasks[i] = *t.Clone()
		}
	}
	return &clone
}
