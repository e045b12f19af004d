package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bookflow-backend/internal/auth"
	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// CreateUser registers an active staff member.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	actor, err := staffPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := auth.ValidatePasswordPolicy("password", input.Password); err != nil {
		return nil, err
	}

	role, err := s.role(input.RoleID)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		RoleID:       role.ID,
		Active:       true,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.auditFailed(ctx, "create user", s.audit.LogCreate(ctx, actor.UserID, domain.TargetUser, created.ID, map[string]any{
		"email":    created.Email,
		"fullName": created.FullName(),
		"roleName": string(role.Name),
	}))

	s.log.InfoContext(ctx, "user created",
		slog.Int64("user_id", actor.UserID),
		slog.Int64("created_user_id", created.ID),
		slog.String("role", string(role.Name)),
	)

	return created, nil
}

// UpdateUser applies a partial profile update and returns the stored user
// with the changed fields.
func (s *Service) UpdateUser(ctx context.Context, input UpdateUserInput) (*UpdateResult, error) {
	actor, err := staffPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	params := input.params()

	if params.RoleID != nil {
		if _, err := s.role(*params.RoleID); err != nil {
			return nil, err
		}
	}

	var (
		updated *domain.User
		changes []domain.FieldChange
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.users.GetByIDForUpdate(txCtx, input.ID)
		if getErr != nil {
			return fmt.Errorf("get user: %w", getErr)
		}

		changes = buildUserChanges(old, params)

		if updateErr := s.users.Update(txCtx, input.ID, params); updateErr != nil {
			return fmt.Errorf("update user: %w", updateErr)
		}

		updated, getErr = s.users.GetByID(txCtx, input.ID)
		if getErr != nil {
			return fmt.Errorf("get user: %w", getErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changes == nil {
		changes = []domain.FieldChange{}
	}
	if len(changes) > 0 {
		s.auditFailed(ctx, "update user", s.audit.LogUpdate(ctx, actor.UserID, domain.TargetUser, updated.ID, map[string]any{
			"type":     "field_changes",
			"userId":   updated.ID,
			"fullName": updated.FullName(),
			"changes":  changes,
		}))
	}

	s.log.InfoContext(ctx, "user updated",
		slog.Int64("user_id", actor.UserID),
		slog.Int64("target_user_id", updated.ID),
		slog.Int("changes", len(changes)),
	)

	return &UpdateResult{User: updated, Changes: changes}, nil
}

// DeactivateUser disables sign-in for a user. Staff cannot deactivate
// themselves.
func (s *Service) DeactivateUser(ctx context.Context, id int64) error {
	actor, err := staffPrincipal(ctx)
	if err != nil {
		return err
	}
	if id <= 0 {
		return domain.NewValidationError("id", "must be a positive id")
	}
	if id == actor.UserID {
		return domain.NewValidationError("id", "cannot deactivate your own account")
	}

	u, err := s.setActive(ctx, id, false)
	if err != nil {
		return err
	}

	s.auditFailed(ctx, "deactivate user", s.audit.LogDelete(ctx, actor.UserID, domain.TargetUser, id, map[string]any{
		"type":     "deactivation",
		"email":    u.Email,
		"fullName": u.FullName(),
	}))

	s.log.InfoContext(ctx, "user deactivated",
		slog.Int64("user_id", actor.UserID),
		slog.Int64("target_user_id", id),
	)
	return nil
}

// ActivateUser re-enables sign-in for a deactivated user.
func (s *Service) ActivateUser(ctx context.Context, id int64) error {
	actor, err := staffPrincipal(ctx)
	if err != nil {
		return err
	}
	if id <= 0 {
		return domain.NewValidationError("id", "must be a positive id")
	}

	u, err := s.setActive(ctx, id, true)
	if err != nil {
		return err
	}

	s.auditFailed(ctx, "activate user", s.audit.LogUpdate(ctx, actor.UserID, domain.TargetUser, id, map[string]any{
		"type":     "activation",
		"email":    u.Email,
		"fullName": u.FullName(),
	}))

	s.log.InfoContext(ctx, "user activated",
		slog.Int64("user_id", actor.UserID),
		slog.Int64("target_user_id", id),
	)
	return nil
}

func (s *Service) setActive(ctx context.Context, id int64, active bool) (*domain.User, error) {
	var u *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		u, getErr = s.users.GetByIDForUpdate(txCtx, id)
		if getErr != nil {
			return fmt.Errorf("get user: %w", getErr)
		}
		if u.Active == active {
			if active {
				return domain.NewValidationError("id", "user is already active")
			}
			return domain.NewValidationError("id", "user is already inactive")
		}
		if updateErr := s.users.Update(txCtx, id, domain.UserUpdateParams{Active: &active}); updateErr != nil {
			return fmt.Errorf("update user: %w", updateErr)
		}
		u.Active = active
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// role resolves a role id. An unknown id is a validation error on roleId.
func (s *Service) role(id int64) (domain.Role, error) {
	r, err := s.roles.RoleByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Role{}, domain.NewValidationError("roleId", "unknown role")
		}
		return domain.Role{}, fmt.Errorf("resolve role: %w", err)
	}
	return r, nil
}

func buildUserChanges(old *domain.User, p domain.UserUpdateParams) []domain.FieldChange {
	var changes []domain.FieldChange

	add := func(field string, oldValue, newValue any) {
		changes = append(changes, domain.FieldChange{Field: field, OldValue: oldValue, NewValue: newValue})
	}

	if p.FirstName != nil && *p.FirstName != old.FirstName {
		add("firstName", old.FirstName, *p.FirstName)
	}
	if p.LastName != nil && *p.LastName != old.LastName {
		add("lastName", old.LastName, *p.LastName)
	}
	if p.Email != nil && *p.Email != old.Email {
		add("email", old.Email, *p.Email)
	}
	if p.RoleID != nil && *p.RoleID != old.RoleID {
		add("roleId", old.RoleID, *p.RoleID)
	}
	return changes
}
