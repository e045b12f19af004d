package user

import (
	"context"
	"fmt"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// UpdateResult is the stored user after an update with the applied changes.
type UpdateResult struct {
	User    *domain.User
	Changes []domain.FieldChange
}

// ListUsers returns active and inactive users matching filter.
func (s *Service) ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	if _, err := staffPrincipal(ctx); err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetUser returns a single user.
func (s *Service) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	if _, err := staffPrincipal(ctx); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be a positive id")
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// ListRoles returns the persisted roles.
func (s *Service) ListRoles(_ context.Context) ([]domain.Role, error) {
	return s.roles.Roles()
}
