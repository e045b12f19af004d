package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// UpdateTask applies a raw JSON patch. Unknown keys reject the whole patch.
func (s *Service) UpdateTask(ctx context.Context, id int64, patch map[string]json.RawMessage) (*domain.TaskDetails, error) {
	actor, err := staffPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be a positive id")
	}

	params, err := parsePatch(patch)
	if err != nil {
		return nil, err
	}

	var old, updated *domain.TaskDetails
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		old, getErr = s.tasks.GetDetails(txCtx, id)
		if getErr != nil {
			return fmt.Errorf("get task: %w", getErr)
		}

		if params.AssigneeUserID.Set && params.AssigneeUserID.Value != nil {
			if _, userErr := s.users.GetByID(txCtx, *params.AssigneeUserID.Value); userErr != nil {
				return fmt.Errorf("get assignee: %w", userErr)
			}
		}
		if params.TargetStateID.Set && params.TargetStateID.Value != nil {
			if _, stateErr := s.states.StateByID(*params.TargetStateID.Value); stateErr != nil {
				return fmt.Errorf("target state %d: %w", *params.TargetStateID.Value, stateErr)
			}
		}

		if _, updateErr := s.tasks.Update(txCtx, id, params); updateErr != nil {
			return fmt.Errorf("update task: %w", updateErr)
		}

		updated, getErr = s.tasks.GetDetails(txCtx, id)
		if getErr != nil {
			return fmt.Errorf("get task: %w", getErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.auditFailed(ctx, "update task", s.audit.LogUpdate(ctx, actor.UserID, domain.TargetTask, id, buildTaskAudit(old, updated, params)))

	s.log.InfoContext(ctx, "task updated",
		slog.Int64("user_id", actor.UserID),
		slog.Int64("task_id", id),
	)

	return updated, nil
}

// buildTaskAudit describes the update for the history log. Assignee and due
// date changes are spelled out; other fields go to the changes list.
func buildTaskAudit(old, updated *domain.TaskDetails, p domain.TaskUpdateParams) map[string]any {
	details := map[string]any{
		"bookId":    updated.BookID,
		"bookTitle": strValue(updated.BookTitle),
	}

	if p.AssigneeUserID.Set && !sameID(old.AssigneeUserID, updated.AssigneeUserID) {
		details["oldAssignee"] = strValue(old.AssigneeName)
		details["newAssignee"] = strValue(updated.AssigneeName)
	}
	if p.DueAt.Set && !sameTime(old.DueAt, updated.DueAt) {
		details["oldDueAt"] = timeValue(old.DueAt)
		details["newDueAt"] = timeValue(updated.DueAt)
	}

	var changes []domain.FieldChange
	if p.TargetStateID.Set && !sameID(old.TargetStateID, updated.TargetStateID) {
		changes = append(changes, domain.FieldChange{
			Field:    keyState,
			OldValue: strValue(old.TargetStateName),
			NewValue: strValue(updated.TargetStateName),
		})
	}
	if p.Notes.Set && strValue(old.Notes) != strValue(updated.Notes) {
		changes = append(changes, domain.FieldChange{
			Field:    keyNotes,
			OldValue: strValue(old.Notes),
			NewValue: strValue(updated.Notes),
		})
	}
	if len(changes) > 0 {
		details["changes"] = changes
	}

	return details
}

func sameID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func strValue(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func timeValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
