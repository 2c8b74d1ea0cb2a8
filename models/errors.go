package models

import (
	"errors"
	"fmt"
)

// NotFoundError reports a lookup for an entity that is not stored.
type NotFoundError struct {
	Message string
	ID      uint
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(entity string, id uint) *NotFoundError {
	return &NotFoundError{
		Message: fmt.Sprintf("%s %d not found", entity, id),
		ID:      id,
	}
}

// ConflictError reports a uniqueness violation, e.g. a duplicate
// project code.
type ConflictError struct {
	Message string
	ID      uint
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ValidationError reports a rejected input value.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}
