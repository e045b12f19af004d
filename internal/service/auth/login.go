package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bookflow-backend/internal/auth"
	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// Login authenticates a staff member with email + password.
// Returns ErrUnauthorized if the email is unknown, the account is inactive
// or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if !user.Active || !auth.CheckPassword(user.PasswordHash, input.Password) {
		return nil, domain.ErrUnauthorized
	}

	p := principalOf(user)
	token, err := s.jwt.GenerateAccessToken(p)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.auditFailed(ctx, "login", s.audit.LogLogin(ctx, user.ID, user.Email))

	s.log.InfoContext(ctx, "user logged in", slog.Int64("user_id", user.ID))

	return &AuthResult{Token: token, Principal: p, User: user}, nil
}

// LoginAnonymous mints a read-only token for the public catalogue.
// The users table is never touched.
func (s *Service) LoginAnonymous(ctx context.Context) (*AuthResult, error) {
	token, err := s.jwt.GenerateAnonymousToken()
	if err != nil {
		return nil, fmt.Errorf("auth.LoginAnonymous issue token: %w", err)
	}

	s.log.DebugContext(ctx, "anonymous session started")

	return &AuthResult{Token: token, Principal: domain.AnonymousPrincipal()}, nil
}
