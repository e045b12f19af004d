package book

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
	"github.com/heartmarshall/bookflow-backend/pkg/ctxutil"
)

type bookRepo interface {
	Create(ctx context.Context, b *domain.Book) (*domain.Book, error)
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Book, error)
	List(ctx context.Context, filter domain.BookFilter) ([]domain.Book, error)
	Update(ctx context.Context, id int64, params domain.BookUpdateParams) error
	Delete(ctx context.Context, id int64) error
}

type categoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, name string, description *string) (*domain.Category, error)
	Update(ctx context.Context, id int64, params domain.CategoryUpdateParams) (*domain.Category, error)
}

type stateCatalog interface {
	States() ([]domain.BookState, error)
	StateByID(id int64) (domain.BookState, error)
	DefaultState() (domain.BookState, error)
	PublishedState() (domain.BookState, error)
}

type auditLogger interface {
	LogCreate(ctx context.Context, actorID int64, target domain.TargetType, targetID int64, details map[string]any) error
	LogUpdate(ctx context.Context, actorID int64, target domain.TargetType, targetID int64, details map[string]any) error
	LogDelete(ctx context.Context, actorID int64, target domain.TargetType, targetID int64, details map[string]any) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the book workflow: cataloguing, state transitions and
// the category and state reference data.
type Service struct {
	books      bookRepo
	categories categoryRepo
	states     stateCatalog
	audit      auditLogger
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Book service.
func NewService(
	log *slog.Logger,
	books bookRepo,
	categories categoryRepo,
	states stateCatalog,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		books:      books,
		categories: categories,
		states:     states,
		audit:      audit,
		tx:         tx,
		log:        log.With("service", "book"),
	}
}

// staffPrincipal returns the caller if it is a persisted user.
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

// viewer returns the caller, or the anonymous principal when none is set.
func viewer(ctx context.Context) domain.Principal {
	if p, ok := ctxutil.PrincipalFromCtx(ctx); ok {
		return p
	}
	return domain.AnonymousPrincipal()
}

// auditFailed reports a dropped audit event. The business operation has
// already succeeded and is not affected.
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

// trimPtr trims whitespace and keeps empty strings.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
