package book

import (
	"context"
	"fmt"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// ListBooks returns the books visible to the caller. Only elevated roles see
// books outside the published state.
func (s *Service) ListBooks(ctx context.Context, filter domain.BookFilter) ([]domain.Book, error) {
	if !viewer(ctx).CanSeeAllStates() {
		published, err := s.states.PublishedState()
		if err != nil {
			return nil, fmt.Errorf("published state: %w", err)
		}
		if filter.StateID != nil && *filter.StateID != published.ID {
			return []domain.Book{}, nil
		}
		filter.StateID = &published.ID
	}

	filter.Search = trimOrNil(filter.Search)
	filter.Title = trimOrNil(filter.Title)
	filter.Author = trimOrNil(filter.Author)
	filter.ISBN = trimOrNil(filter.ISBN)

	books, err := s.books.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}
