package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
	"github.com/heartmarshall/bookflow-backend/pkg/ctxutil"
)

type userRepo interface {
	List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, id int64, params domain.UserUpdateParams) error
}

type roleCatalog interface {
	Roles() ([]domain.Role, error)
	RoleByID(id int64) (domain.Role, error)
}

type auditLogger interface {
	LogCreate(ctx context.Context, actorID int64, target domain.TargetType, targetID int64, details map[string]any) error
	LogUpdate(ctx context.Context, actorID int64, target domain.TargetType, targetID int64, details map[string]any) error
	LogDelete(ctx context.Context, actorID int64, target domain.TargetType, targetID int64, details map[string]any) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages staff accounts.
type Service struct {
	log        *slog.Logger
	users      userRepo
	roles      roleCatalog
	audit      auditLogger
	tx         txManager
	bcryptCost int
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	roles roleCatalog,
	audit auditLogger,
	tx txManager,
	bcryptCost int,
) *Service {
	return &Service{
		log:        logger.With("service", "user"),
		users:      users,
		roles:      roles,
		audit:      audit,
		tx:         tx,
		bcryptCost: bcryptCost,
	}
}

func staffPrincipal(ctx context.Context) (domain.Principal, error) {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return domain.Principal{}, domain.ErrUnauthorized
	}
	if p.IsAnonymous() {
		return domain.Principal{}, domain.ErrForbidden
	}
	return p, nil
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
