package book

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// CreateBook catalogues a new book in the default workflow state.
func (s *Service) CreateBook(ctx context.Context, input CreateBookInput) (*domain.Book, error) {
	actor, err := staffPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	state, err := s.states.DefaultState()
	if err != nil {
		return nil, fmt.Errorf("default state: %w", err)
	}

	if input.CategoryID != nil {
		exists, err := s.categories.Exists(ctx, *input.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("check category: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("category %d: %w", *input.CategoryID, domain.ErrNotFound)
		}
	}

	created, err := s.books.Create(ctx, &domain.Book{
		ISBN:            trimOrNil(input.ISBN),
		Title:           strings.TrimSpace(input.Title),
		Author:          strings.TrimSpace(input.Author),
		PublicationDate: input.PublicationDate,
		PageCount:       input.PageCount,
		Shelf:           strings.TrimSpace(input.Shelf),
		Space:           strings.TrimSpace(input.Space),
		CategoryID:      input.CategoryID,
		StateID:         state.ID,
		PDFPath:         trimOrNil(input.PDFPath),
		CoverImagePath:  trimOrNil(input.CoverImagePath),
	})
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	book, err := s.books.GetByID(ctx, created.ID)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}

	s.auditFailed(ctx, "create book", s.audit.LogCreate(ctx, actor.UserID, domain.TargetBook, book.ID, map[string]any{
		"bookId":    book.ID,
		"title":     book.Title,
		"stateName": state.Name,
	}))

	s.log.InfoContext(ctx, "book created",
		slog.Int64("user_id", actor.UserID),
		slog.Int64("book_id", book.ID),
	)

	return book, nil
}
