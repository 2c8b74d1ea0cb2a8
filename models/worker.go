package models

type Worker struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Email     string `gorm:"uniqueIndex;not null;size:200" json:"email"`
	FirstName string `gorm:"size:100" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`
}

func (w *Worker) Clone() *Worker {
	clone := *w
	return &clone
}
