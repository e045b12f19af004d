package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
	"github.com/heartmarshall/bookflow-backend/pkg/ctxutil"
)

// Logout records the end of a session. Tokens are stateless, so there is
// nothing to revoke; the client drops its token.
func (s *Service) Logout(ctx context.Context) error {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if p.IsAnonymous() {
		return nil
	}

	s.auditFailed(ctx, "logout", s.audit.LogLogout(ctx, p.UserID))

	s.log.InfoContext(ctx, "user logged out", slog.Int64("user_id", p.UserID))
	return nil
}

// Me returns the caller's principal and, for staff, the stored profile.
func (s *Service) Me(ctx context.Context) (*MeResult, error) {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if p.IsAnonymous() {
		return &MeResult{Principal: p}, nil
	}

	user, err := s.users.GetByID(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return &MeResult{Principal: p, User: user}, nil
}
