package audit

import (
	"context"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// LogLogin records a successful sign-in.
func (l *Logger) LogLogin(ctx context.Context, userID int64, email string) error {
	return l.Enqueue(ctx, domain.AuditEvent{
		ActorID:    userID,
		Action:     domain.ActionLogin,
		TargetType: domain.TargetSystem,
		Details:    map[string]any{"email": email},
	})
}

// LogLogout records a sign-out.
func (l *Logger) LogLogout(ctx context.Context, userID int64) error {
	return l.Enqueue(ctx, domain.AuditEvent{
		ActorID:    userID,
		Action:     domain.ActionLogout,
		TargetType: domain.TargetSystem,
	})
}

// LogPasswordChange records a password change by the user on their own account.
func (l *Logger) LogPasswordChange(ctx context.Context, userID int64) error {
	return l.Enqueue(ctx, domain.AuditEvent{
		ActorID:    userID,
		Action:     domain.ActionPasswordChange,
		TargetType: domain.TargetUser,
		TargetID:   &userID,
	})
}

// LogCreate records the creation of a target.
func (l *Logger) LogCreate(ctx context.Context, actorID int64, target domain.TargetType, targetID int64, details map[string]any) error {
	return l.enqueueTarget(ctx, actorID, domain.ActionCreate, target, targetID, details)
}

// LogUpdate records a modification of a target.
func (l *Logger) LogUpdate(ctx context.Context, actorID int64, target domain.TargetType, targetID int64, details map[string]any) error {
	return l.enqueueTarget(ctx, actorID, domain.ActionUpdate, target, targetID, details)
}

// LogDelete records the removal of a target.
func (l *Logger) LogDelete(ctx context.Context, actorID int64, target domain.TargetType, targetID int64, details map[string]any) error {
	return l.enqueueTarget(ctx, actorID, domain.ActionDelete, target, targetID, details)
}

// LogAssign records a task assignment.
func (l *Logger) LogAssign(ctx context.Context, actorID int64, taskID int64, details map[string]any) error {
	return l.enqueueTarget(ctx, actorID, domain.ActionAssign, domain.TargetTask, taskID, details)
}

func (l *Logger) enqueueTarget(ctx context.Context, actorID int64, action domain.Action, target domain.TargetType, targetID int64, details map[string]any) error {
	return l.Enqueue(ctx, domain.AuditEvent{
		ActorID:    actorID,
		Action:     action,
		TargetType: target,
		TargetID:   &targetID,
		Details:    details,
	})
}
