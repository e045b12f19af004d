package book

import "github.com/heartmarshall/bookflow-backend/internal/domain"

// UpdateResult is the outcome of UpdateBook. Transition is set only when the
// workflow state changed.
type UpdateResult struct {
	Book       *domain.Book
	Changes    []domain.FieldChange
	Transition *domain.StateTransition
}
