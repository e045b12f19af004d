package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
	"github.com/heartmarshall/bookflow-backend/internal/service/history"
	"github.com/heartmarshall/bookflow-backend/pkg/envelope"
)

type historyService interface {
	GetHistory(ctx context.Context, filter domain.HistoryFilter) (*domain.HistoryPage, error)
	GetByID(ctx context.Context, id int64) (*domain.HistoryRecord, error)
	GetByTarget(ctx context.Context, targetType string, targetID int64) (*history.TargetHistory, error)
	RecentActivity(ctx context.Context, limit int) ([]domain.HistoryRecord, error)
	UserActivity(ctx context.Context, userID int64, limit int) ([]domain.HistoryRecord, error)
	ListActions(ctx context.Context) ([]domain.ActionInfo, error)
	ListTargetTypes(ctx context.Context) ([]domain.TargetTypeInfo, error)
}

// HistoryHandler serves the audit trail.
type HistoryHandler struct {
	svc historyService
	log *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc historyService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{svc: svc, log: logger.With("handler", "history")}
}

// List handles GET /history.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	filter := domain.HistoryFilter{
		ActorUserID:  q.int64Ptr("actorUserId"),
		ActionID:     q.int64Ptr("actionId"),
		TargetTypeID: q.int64Ptr("targetTypeId"),
		TargetID:     q.int64Ptr("targetId"),
		From:         q.timePtr("from"),
		To:           q.timePtr("to"),
		Limit:        q.int("limit", 0),
		Offset:       q.int("offset", 0),
	}
	if err := q.err(); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	page, err := h.svc.GetHistory(r.Context(), filter)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, historyPageResponse{
		Records:  toHistoryResponses(page.Records),
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, "")
}

// Get handles GET /history/{id}.
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	rec, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, toHistoryResponse(*rec), "")
}

// ByTarget handles GET /history/target/{type}/{id}.
func (h *HistoryHandler) ByTarget(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	res, err := h.svc.GetByTarget(r.Context(), r.PathValue("type"), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, targetHistoryResponse{
		TargetType: res.TargetType,
		TargetID:   res.TargetID,
		Records:    toHistoryResponses(res.Records),
		Total:      res.Total,
	}, "")
}

// Recent handles GET /history/recent.
func (h *HistoryHandler) Recent(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	limit := q.int("limit", 0)
	if err := q.err(); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	records, err := h.svc.RecentActivity(r.Context(), limit)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, toHistoryResponses(records), "")
}

// UserActivity handles GET /history/user/{id}.
func (h *HistoryHandler) UserActivity(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	q := newQueryParser(r)
	limit := q.int("limit", 0)
	if err := q.err(); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	records, err := h.svc.UserActivity(r.Context(), userID, limit)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, toHistoryResponses(records), "")
}

// Actions handles GET /history/actions.
func (h *HistoryHandler) Actions(w http.ResponseWriter, r *http.Request) {
	actions, err := h.svc.ListActions(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := make([]lookupResponse, 0, len(actions))
	for _, a := range actions {
		out = append(out, lookupResponse{ID: a.ID, Name: a.Name, Description: a.Description})
	}
	envelope.WriteSuccess(w, http.StatusOK, out, "")
}

// TargetTypes handles GET /history/target-types.
func (h *HistoryHandler) TargetTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.ListTargetTypes(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := make([]lookupResponse, 0, len(types))
	for _, t := range types {
		out = append(out, lookupResponse{ID: t.ID, Name: t.Name, Description: t.Description})
	}
	envelope.WriteSuccess(w, http.StatusOK, out, "")
}
