package book

import (
	"context"
	"fmt"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// GetBook returns a single hydrated book.
func (s *Service) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be a positive id")
	}

	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}

	if !viewer(ctx).CanSeeAllStates() {
		published, err := s.states.PublishedState()
		if err != nil {
			return nil, fmt.Errorf("published state: %w", err)
		}
		if book.StateID != published.ID {
			return nil, domain.ErrForbidden
		}
	}

	return book, nil
}
