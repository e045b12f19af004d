package task

import (
	"context"
	"fmt"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// GetTask returns a hydrated task.
func (s *Service) GetTask(ctx context.Context, id int64) (*domain.TaskDetails, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be a positive id")
	}
	task, err := s.tasks.GetDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

// SearchTasks returns hydrated tasks matching the filter, ordered by id.
func (s *Service) SearchTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.TaskDetails, error) {
	tasks, err := s.tasks.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search tasks: %w", err)
	}
	return tasks, nil
}

// ListByBook returns every task recorded for a book.
func (s *Service) ListByBook(ctx context.Context, bookID int64) ([]domain.Task, error) {
	if _, err := s.books.GetByID(ctx, bookID); err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	tasks, err := s.tasks.ListByBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// CurrentTask returns the current task of a book under order.
func (s *Service) CurrentTask(ctx context.Context, bookID int64, order domain.CurrentTaskOrder) (*domain.TaskDetails, error) {
	tasks, err := s.ListByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	current, ok := order.Resolve(tasks)
	if !ok {
		return nil, fmt.Errorf("current task of book %d: %w", bookID, domain.ErrNotFound)
	}

	details, err := s.tasks.GetDetails(ctx, current.ID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return details, nil
}
