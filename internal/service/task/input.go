package task

import (
	"time"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

const maxNotesLength = 2000

// CreateTaskInput holds the parameters for assigning a book.
type CreateTaskInput struct {
	BookID         int64
	AssigneeUserID *int64
	TargetStateID  *int64
	DueAt          *time.Time
	Notes          *string
}

// Validate checks all fields and collects all errors.
func (i CreateTaskInput) Validate() error {
	var errs []domain.FieldError

	if i.BookID <= 0 {
		errs = append(errs, domain.FieldError{Field: "bookId", Message: "required"})
	}
	if i.AssigneeUserID != nil && *i.AssigneeUserID <= 0 {
		errs = append(errs, domain.FieldError{Field: "assigneeUserId", Message: "must be a positive id"})
	}
	if i.TargetStateID != nil && *i.TargetStateID <= 0 {
		errs = append(errs, domain.FieldError{Field: "targetStateId", Message: "must be a positive id"})
	}
	if i.Notes != nil && len([]rune(*i.Notes)) > maxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
