package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

const (
	defaultRecentLimit   = 20
	defaultActivityLimit = 50
	maxLimit             = 200
)

type historyRepo interface {
	List(ctx context.Context, filter domain.HistoryFilter) ([]domain.HistoryRecord, error)
	Count(ctx context.Context, filter domain.HistoryFilter) (int, error)
	GetByID(ctx context.Context, id int64) (*domain.HistoryRecord, error)
	ListByTarget(ctx context.Context, targetTypeID, targetID int64) ([]domain.HistoryRecord, error)
	ListByActor(ctx context.Context, userID int64, limit int) ([]domain.HistoryRecord, error)
	Recent(ctx context.Context, limit int) ([]domain.HistoryRecord, error)
}

type catalog interface {
	TargetTypeID(name string) (int64, error)
	Actions() ([]domain.ActionInfo, error)
	TargetTypes() ([]domain.TargetTypeInfo, error)
}

// Service answers audit trail queries.
type Service struct {
	history historyRepo
	catalog catalog
	log     *slog.Logger
}

// NewService creates a new History service.
func NewService(log *slog.Logger, history historyRepo, catalog catalog) *Service {
	return &Service{
		history: history,
		catalog: catalog,
		log:     log.With("service", "history"),
	}
}

// TargetHistory is the audit trail of a single entity.
type TargetHistory struct {
	TargetType string
	TargetID   int64
	Records    []domain.HistoryRecord
	Total      int
}

// GetHistory returns one page of records matching the filter together with
// the total number of matches.
func (s *Service) GetHistory(ctx context.Context, filter domain.HistoryFilter) (*domain.HistoryPage, error) {
	filter.Normalize()

	var (
		records []domain.HistoryRecord
		total   int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.history.List(gctx, filter)
		if err != nil {
			return fmt.Errorf("list history: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = s.history.Count(gctx, filter)
		if err != nil {
			return fmt.Errorf("count history: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.HistoryPage{
		Records:  records,
		Total:    total,
		Page:     filter.Page(),
		PageSize: filter.Limit,
	}, nil
}

// GetByID returns a single record.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.HistoryRecord, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be a positive id")
	}
	rec, err := s.history.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get history record: %w", err)
	}
	return rec, nil
}

// GetByTarget returns the trail of one entity. The type accepts canonical
// names and legacy aliases.
func (s *Service) GetByTarget(ctx context.Context, targetType string, targetID int64) (*TargetHistory, error) {
	if targetID <= 0 {
		return nil, domain.NewValidationError("targetId", "must be a positive id")
	}

	typeID, err := s.catalog.TargetTypeID(targetType)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("targetType", fmt.Sprintf("unknown target type %q", targetType))
		}
		return nil, fmt.Errorf("resolve target type: %w", err)
	}

	records, err := s.history.ListByTarget(ctx, typeID, targetID)
	if err != nil {
		return nil, fmt.Errorf("list target history: %w", err)
	}

	return &TargetHistory{
		TargetType: domain.NormalizeTargetType(targetType).String(),
		TargetID:   targetID,
		Records:    records,
		Total:      len(records),
	}, nil
}

// RecentActivity returns the newest records across all entities.
func (s *Service) RecentActivity(ctx context.Context, limit int) ([]domain.HistoryRecord, error) {
	records, err := s.history.Recent(ctx, clampLimit(limit, defaultRecentLimit))
	if err != nil {
		return nil, fmt.Errorf("recent history: %w", err)
	}
	return records, nil
}

// UserActivity returns the newest records performed by a user.
func (s *Service) UserActivity(ctx context.Context, userID int64, limit int) ([]domain.HistoryRecord, error) {
	if userID <= 0 {
		return nil, domain.NewValidationError("userId", "must be a positive id")
	}
	records, err := s.history.ListByActor(ctx, userID, clampLimit(limit, defaultActivityLimit))
	if err != nil {
		return nil, fmt.Errorf("user history: %w", err)
	}
	return records, nil
}

// ListActions returns the audited action catalogue.
func (s *Service) ListActions(_ context.Context) ([]domain.ActionInfo, error) {
	return s.catalog.Actions()
}

// ListTargetTypes returns the audited target type catalogue.
func (s *Service) ListTargetTypes(_ context.Context) ([]domain.TargetTypeInfo, error) {
	return s.catalog.TargetTypes()
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return min(limit, maxLimit)
}
