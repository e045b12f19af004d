package book

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// DeactivateBook removes a book. Tasks and history rows that reference it
// are left in place with a dangling book id.
func (s *Service) DeactivateBook(ctx context.Context, id int64) error {
	actor, err := staffPrincipal(ctx)
	if err != nil {
		return err
	}

	if id <= 0 {
		return domain.NewValidationError("id", "must be a positive id")
	}

	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get book: %w", err)
	}

	if err := s.books.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	s.auditFailed(ctx, "delete book", s.audit.LogDelete(ctx, actor.UserID, domain.TargetBook, id, map[string]any{
		"bookId": id,
		"title":  book.Title,
	}))

	s.log.InfoContext(ctx, "book deleted",
		slog.Int64("user_id", actor.UserID),
		slog.Int64("book_id", id),
	)

	return nil
}
