package task

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
	"github.com/heartmarshall/bookflow-backend/pkg/ctxutil"
)

type taskRepo interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, id int64, params domain.TaskUpdateParams) (*domain.Task, error)
	GetDetails(ctx context.Context, id int64) (*domain.TaskDetails, error)
	Search(ctx context.Context, filter domain.TaskFilter) ([]domain.TaskDetails, error)
	ListByBook(ctx context.Context, bookID int64) ([]domain.Task, error)
}

type bookRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type stateCatalog interface {
	StateByID(id int64) (domain.BookState, error)
}

type auditLogger interface {
	LogAssign(ctx context.Context, actorID int64, taskID int64, details map[string]any) error
	LogUpdate(ctx context.Context, actorID int64, target domain.TargetType, targetID int64, details map[string]any) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service assigns books to staff members and tracks those assignments.
type Service struct {
	tasks  taskRepo
	books  bookRepo
	users  userRepo
	states stateCatalog
	audit  auditLogger
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new Task service.
func NewService(
	log *slog.Logger,
	tasks taskRepo,
	books bookRepo,
	users userRepo,
	states stateCatalog,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		tasks:  tasks,
		books:  books,
		users:  users,
		states: states,
		audit:  audit,
		tx:     tx,
		log:    log.With("service", "task"),
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

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
