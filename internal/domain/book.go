package domain

import "time"

// DefaultStateName is the workflow state assigned to every new book.
const DefaultStateName = "Registrado"

// BookState is one step of the ordered digitization workflow.
type BookState struct {
	ID          int64
	Name        string
	Description *string
	Order       int
}

// Category classifies books by subject.
type Category struct {
	ID          int64
	Name        string
	Description *string
}

// Book is a physical book tracked through the workflow.
type Book struct {
	ID              int64
	ISBN            *string
	Title           string
	Author          string
	PublicationDate *time.Time
	PageCount       int
	Shelf           string
	Space           string
	CategoryID      *int64
	StateID         int64
	PDFPath         *string
	CoverImagePath  *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Hydrated by joins, nil when not loaded.
	State    *BookState
	Category *Category
}

// BookFilter holds the optional list filters for books.
type BookFilter struct {
	StateID    *int64
	CategoryID *int64
	Search     *string // substring over title, author and isbn
	Title      *string
	Author     *string
	ISBN       *string
}

// BookUpdateParams lists the columns an update writes. Nil means keep.
type BookUpdateParams struct {
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

// IsEmpty reports whether no column is set.
func (p BookUpdateParams) IsEmpty() bool {
	return p.ISBN == nil && p.Title == nil && p.Author == nil && p.PublicationDate == nil &&
		p.PageCount == nil && p.Shelf == nil && p.Space == nil && p.CategoryID == nil &&
		p.StateID == nil && p.PDFPath == nil && p.CoverImagePath == nil
}

// FieldChange is one entry of a field-level diff.
type FieldChange struct {
	Field    string `json:"field"`
	OldValue any    `json:"oldValue"`
	NewValue any    `json:"newValue"`
}

// StateTransition describes a book moving between workflow states.
type StateTransition struct {
	BookID       int64  `json:"bookId"`
	BookTitle    string `json:"bookTitle"`
	OldStateName string `json:"oldStateName"`
	NewStateName string `json:"newStateName"`
}

// CategoryUpdateParams lists category columns to change. Nil means keep.
type CategoryUpdateParams struct {
	Name        *string
	Description *string
}
