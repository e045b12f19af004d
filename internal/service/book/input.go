package book

import (
	"strings"
	"time"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

const (
	maxTitleLength    = 255
	maxAuthorLength   = 255
	maxLocationLength = 50
)

// CreateBookInput holds the parameters for cataloguing a book.
type CreateBookInput struct {
	ISBN            *string
	Title           string
	Author          string
	PublicationDate *time.Time
	PageCount       int
	Shelf           string
	Space           string
	CategoryID      *int64
	PDFPath         *string
	CoverImagePath  *string
}

// Validate checks all fields and collects all errors.
func (i CreateBookInput) Validate() error {
	var errs []domain.FieldError

	errs = requireText(errs, "title", i.Title, maxTitleLength)
	errs = requireText(errs, "author", i.Author, maxAuthorLength)
	errs = requireText(errs, "shelf", i.Shelf, maxLocationLength)
	errs = requireText(errs, "space", i.Space, maxLocationLength)

	if i.PageCount <= 0 {
		errs = append(errs, domain.FieldError{Field: "pageCount", Message: "must be greater than 0"})
	}
	if i.CategoryID != nil && *i.CategoryID <= 0 {
		errs = append(errs, domain.FieldError{Field: "categoryId", Message: "must be a positive id"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateBookInput holds a partial book update. Nil fields keep their value.
type UpdateBookInput struct {
	ID              int64
	ISBN            *string
	Title           *string
	Author          *string
	PublicationDate *time.Time
	PageCount       *int
	Shelf           *string
	Space           *string
	CategoryID      *int64
	StateID         *int64
	PDFPath         *string
	CoverImagePath  *string
}

func (i UpdateBookInput) params() domain.BookUpdateParams {
	var shelf, space *string
	if i.Shelf != nil {
		shelf = trimPtr(i.Shelf)
	}
	if i.Space != nil {
		space = trimPtr(i.Space)
	}
	return domain.BookUpdateParams{
		ISBN:            trimPtr(i.ISBN),
		Title:           trimPtr(i.Title),
		Author:          trimPtr(i.Author),
		PublicationDate: i.PublicationDate,
		PageCount:       i.PageCount,
		Shelf:           shelf,
		Space:           space,
		CategoryID:      i.CategoryID,
		StateID:         i.StateID,
		PDFPath:         trimPtr(i.PDFPath),
		CoverImagePath:  trimPtr(i.CoverImagePath),
	}
}

// Validate checks all fields and collects all errors.
func (i UpdateBookInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.params().IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = requireText(errs, "title", *i.Title, maxTitleLength)
	}
	if i.Author != nil {
		errs = requireText(errs, "author", *i.Author, maxAuthorLength)
	}
	if i.Shelf != nil {
		errs = requireText(errs, "shelf", *i.Shelf, maxLocationLength)
	}
	if i.Space != nil {
		errs = requireText(errs, "space", *i.Space, maxLocationLength)
	}
	if i.PageCount != nil && *i.PageCount <= 0 {
		errs = append(errs, domain.FieldError{Field: "pageCount", Message: "must be greater than 0"})
	}
	if i.CategoryID != nil && *i.CategoryID <= 0 {
		errs = append(errs, domain.FieldError{Field: "categoryId", Message: "must be a positive id"})
	}
	if i.StateID != nil && *i.StateID <= 0 {
		errs = append(errs, domain.FieldError{Field: "stateId", Message: "must be a positive id"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateCategoryInput holds the parameters for creating a category.
type CreateCategoryInput struct {
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateCategoryInput) Validate() error {
	var errs []domain.FieldError
	errs = requireText(errs, "name", i.Name, 100)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCategoryInput holds a partial category update.
type UpdateCategoryInput struct {
	ID          int64
	Name        *string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i UpdateCategoryInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = requireText(errs, "name", *i.Name, 100)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func requireText(errs []domain.FieldError, field, value string, max int) []domain.FieldError {
	v := strings.TrimSpace(value)
	if v == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len([]rune(v)) > max {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}
