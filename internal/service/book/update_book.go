package book

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// UpdateBook applies a partial update. The row is locked for the duration of
// the transaction so the diff matches the row actually overwritten.
func (s *Service) UpdateBook(ctx context.Context, input UpdateBookInput) (*UpdateResult, error) {
	actor, err := staffPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := input.params()

	var (
		old     *domain.Book
		updated *domain.Book
		changes []domain.FieldChange
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		old, getErr = s.books.GetByIDForUpdate(txCtx, input.ID)
		if getErr != nil {
			return fmt.Errorf("get book: %w", getErr)
		}

		if params.CategoryID != nil {
			exists, existsErr := s.categories.Exists(txCtx, *params.CategoryID)
			if existsErr != nil {
				return fmt.Errorf("check category: %w", existsErr)
			}
			if !exists {
				return fmt.Errorf("category %d: %w", *params.CategoryID, domain.ErrNotFound)
			}
		}
		if params.StateID != nil {
			if _, stateErr := s.states.StateByID(*params.StateID); stateErr != nil {
				return fmt.Errorf("state %d: %w", *params.StateID, stateErr)
			}
		}

		changes = buildBookChanges(old, params)

		if updateErr := s.books.Update(txCtx, input.ID, params); updateErr != nil {
			return fmt.Errorf("update book: %w", updateErr)
		}

		updated, getErr = s.books.GetByID(txCtx, input.ID)
		if getErr != nil {
			return fmt.Errorf("get book: %w", getErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &UpdateResult{Book: updated, Changes: changes}
	if result.Changes == nil {
		result.Changes = []domain.FieldChange{}
	}

	switch {
	case params.StateID != nil && *params.StateID != old.StateID:
		result.Transition = &domain.StateTransition{
			BookID:       updated.ID,
			BookTitle:    updated.Title,
			OldStateName: s.stateName(old),
			NewStateName: s.stateName(updated),
		}
		s.auditFailed(ctx, "update book", s.audit.LogUpdate(ctx, actor.UserID, domain.TargetBook, updated.ID, map[string]any{
			"type":         "state_transition",
			"bookId":       updated.ID,
			"bookTitle":    updated.Title,
			"oldStateName": result.Transition.OldStateName,
			"newStateName": result.Transition.NewStateName,
		}))
	case len(changes) > 0:
		s.auditFailed(ctx, "update book", s.audit.LogUpdate(ctx, actor.UserID, domain.TargetBook, updated.ID, map[string]any{
			"type":      "field_changes",
			"bookId":    updated.ID,
			"bookTitle": updated.Title,
			"changes":   changes,
		}))
	}

	s.log.InfoContext(ctx, "book updated",
		slog.Int64("user_id", actor.UserID),
		slog.Int64("book_id", updated.ID),
		slog.Int("changes", len(changes)),
	)

	return result, nil
}

// stateName prefers the hydrated state and falls back to the cache.
func (s *Service) stateName(b *domain.Book) string {
	if b.State != nil {
		return b.State.Name
	}
	if st, err := s.states.StateByID(b.StateID); err == nil {
		return st.Name
	}
	return ""
}
