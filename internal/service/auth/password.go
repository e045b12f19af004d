package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bookflow-backend/internal/auth"
	"github.com/heartmarshall/bookflow-backend/internal/domain"
	"github.com/heartmarshall/bookflow-backend/pkg/ctxutil"
)

// ChangePassword replaces the caller's password after checking the current one.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if p.IsAnonymous() {
		return domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, p.UserID)
	if err != nil {
		return fmt.Errorf("auth.ChangePassword get user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, input.CurrentPassword) {
		return domain.ErrUnauthorized
	}

	hash, err := auth.HashPassword(input.NewPassword, s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("auth.ChangePassword: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("auth.ChangePassword update: %w", err)
	}

	s.auditFailed(ctx, "password_change", s.audit.LogPasswordChange(ctx, user.ID))

	s.log.InfoContext(ctx, "password changed", slog.Int64("user_id", user.ID))
	return nil
}

// RestorePassword is reserved for the self-service reset flow.
func (s *Service) RestorePassword(_ context.Context, _ string) error {
	return domain.ErrNotImplemented
}
