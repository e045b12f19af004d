package book

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// ListStates returns the workflow states in stage order.
func (s *Service) ListStates(_ context.Context) ([]domain.BookState, error) {
	states, err := s.states.States()
	if err != nil {
		return nil, fmt.Errorf("list states: %w", err)
	}
	return states, nil
}

// ListCategories returns all categories ordered by name.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory adds a category. Names are unique.
func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	actor, err := staffPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	category, err := s.categories.Create(ctx, strings.TrimSpace(input.Name), trimOrNil(input.Description))
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.auditFailed(ctx, "create category", s.audit.LogCreate(ctx, actor.UserID, domain.TargetCategory, category.ID, map[string]any{
		"categoryId": category.ID,
		"name":       category.Name,
	}))

	s.log.InfoContext(ctx, "category created",
		slog.Int64("user_id", actor.UserID),
		slog.Int64("category_id", category.ID),
	)

	return category, nil
}

// UpdateCategory changes the provided category fields.
func (s *Service) UpdateCategory(ctx context.Context, input UpdateCategoryInput) (*domain.Category, error) {
	actor, err := staffPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.CategoryUpdateParams{Name: trimPtr(input.Name)}
	if input.Description != nil {
		if strings.TrimSpace(*input.Description) == "" {
			params.Description = ptr("") // clear description -> NULL in DB
		} else {
			params.Description = trimPtr(input.Description)
		}
	}

	var old, updated *domain.Category
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		old, getErr = s.categories.GetByID(txCtx, input.ID)
		if getErr != nil {
			return fmt.Errorf("get category: %w", getErr)
		}

		var updateErr error
		updated, updateErr = s.categories.Update(txCtx, input.ID, params)
		if updateErr != nil {
			return fmt.Errorf("update category: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changes := buildCategoryChanges(old, updated); len(changes) > 0 {
		s.auditFailed(ctx, "update category", s.audit.LogUpdate(ctx, actor.UserID, domain.TargetCategory, updated.ID, map[string]any{
			"type":       "field_changes",
			"categoryId": updated.ID,
			"name":       updated.Name,
			"changes":    changes,
		}))
	}

	s.log.InfoContext(ctx, "category updated",
		slog.Int64("user_id", actor.UserID),
		slog.Int64("category_id", updated.ID),
	)

	return updated, nil
}

func buildCategoryChanges(old, updated *domain.Category) []domain.FieldChange {
	var changes []domain.FieldChange
	if old.Name != updated.Name {
		changes = append(changes, domain.FieldChange{Field: "name", OldValue: old.Name, NewValue: updated.Name})
	}
	if !sameString(old.Description, updated.Description) {
		changes = append(changes, domain.FieldChange{
			Field:    "description",
			OldValue: strValue(old.Description),
			NewValue: strValue(updated.Description),
		})
	}
	return changes
}

func ptr[T any](v T) *T { return &v }
