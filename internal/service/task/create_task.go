package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// CreateTask assigns a book to a staff member.
func (s *Service) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.TaskDetails, error) {
	actor, err := staffPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	book, err := s.books.GetByID(ctx, input.BookID)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}

	var assigneeName any
	if input.AssigneeUserID != nil {
		assignee, err := s.users.GetByID(ctx, *input.AssigneeUserID)
		if err != nil {
			return nil, fmt.Errorf("get assignee: %w", err)
		}
		assigneeName = assignee.FullName()
	}

	var targetStateName any
	if input.TargetStateID != nil {
		state, err := s.states.StateByID(*input.TargetStateID)
		if err != nil {
			return nil, fmt.Errorf("target state %d: %w", *input.TargetStateID, err)
		}
		targetStateName = state.Name
	}

	created, err := s.tasks.Create(ctx, &domain.Task{
		BookID:         input.BookID,
		AssigneeUserID: input.AssigneeUserID,
		DueAt:          input.DueAt,
		TargetStateID:  input.TargetStateID,
		Notes:          trimOrNil(input.Notes),
	})
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	details, err := s.tasks.GetDetails(ctx, created.ID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	s.auditFailed(ctx, "assign task", s.audit.LogAssign(ctx, actor.UserID, created.ID, map[string]any{
		"taskId":          created.ID,
		"bookId":          book.ID,
		"bookTitle":       book.Title,
		"assignee":        assigneeName,
		"dueAt":           timeValue(input.DueAt),
		"targetStateName": targetStateName,
	}))

	s.log.InfoContext(ctx, "task created",
		slog.Int64("user_id", actor.UserID),
		slog.Int64("task_id", created.ID),
		slog.Int64("book_id", book.ID),
	)

	return details, nil
}
