package auth

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/bookflow-backend/internal/auth"
	"github.com/heartmarshall/bookflow-backend/internal/config"
	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(p domain.Principal) (auth.Token, error)
	GenerateAnonymousToken() (auth.Token, error)
}

// auditLogger defines the audit interface needed by auth service.
type auditLogger interface {
	LogLogin(ctx context.Context, userID int64, email string) error
	LogLogout(ctx context.Context, userID int64) error
	LogPasswordChange(ctx context.Context, userID int64) error
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
	audit auditLogger
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	jwt jwtManager,
	audit auditLogger,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
		audit: audit,
		cfg:   cfg,
	}
}

func principalOf(u *domain.User) domain.Principal {
	return domain.Principal{
		UserID:   u.ID,
		Email:    u.Email,
		RoleID:   u.RoleID,
		RoleName: u.RoleName,
	}
}

func (s *Service) auditFailed(ctx context.Context, action string, err error) {
	if err == nil {
		return
	}
	s.log.WarnContext(ctx, "audit event dropped",
		slog.String("action", action),
		slog.String("error", err.Error()),
	)
}
