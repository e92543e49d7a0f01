package models

import (
	"errors"
	"fmt"
)

// Storage-level failures surfaced by repositories.
var (
	ErrDuplicate     = errors.New("duplicate record")
	ErrOverlap       = errors.New("overlapping booking")
	ErrSerialization = errors.New("concurrent update, retry")
	ErrForeignKey    = errors.New("referenced record does not exist")
	ErrLimitReached  = errors.New("limit reached")
)

// ConstraintError names the database constraint behind a storage failure.
type ConstraintError struct {
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Err, e.Constraint)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}
