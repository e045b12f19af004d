package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
	"github.com/heartmarshall/bookflow-backend/internal/service/task"
	"github.com/heartmarshall/bookflow-backend/pkg/envelope"
)

type taskService interface {
	SearchTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.TaskDetails, error)
	CreateTask(ctx context.Context, input task.CreateTaskInput) (*domain.TaskDetails, error)
	GetTask(ctx context.Context, id int64) (*domain.TaskDetails, error)
	UpdateTask(ctx context.Context, id int64, patch map[string]json.RawMessage) (*domain.TaskDetails, error)
	ListByBook(ctx context.Context, bookID int64) ([]domain.Task, error)
	CurrentTask(ctx context.Context, bookID int64, order domain.CurrentTaskOrder) (*domain.TaskDetails, error)
}

// TaskHandler serves the /tasks endpoints and the per-book task views.
type TaskHandler struct {
	svc taskService
	log *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(svc taskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: logger.With("handler", "task")}
}

type createTaskRequest struct {
	BookID         int64      `json:"bookId"         validate:"required,gt=0"`
	AssigneeUserID *int64     `json:"assigneeUserId" validate:"omitempty,gt=0"`
	TargetStateID  *int64     `json:"targetStateId"  validate:"omitempty,gt=0"`
	DueAt          *time.Time `json:"dueAt"`
	Notes          *string    `json:"notes"          validate:"omitempty,max=2000"`
}

// Search handles GET /tasks.
func (h *TaskHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	filter := domain.TaskFilter{
		BookID:         q.int64Ptr("bookId"),
		AssigneeUserID: q.int64Ptr("assigneeUserId"),
		TargetStateID:  q.int64Ptr("targetStateId"),
	}
	if err := q.err(); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	tasks, err := h.svc.SearchTasks(r.Context(), filter)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := make([]taskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, toTaskDetailsResponse(&tasks[i]))
	}
	envelope.WriteSuccess(w, http.StatusOK, out, "")
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	t, err := h.svc.CreateTask(r.Context(), task.CreateTaskInput{
		BookID:         req.BookID,
		AssigneeUserID: req.AssigneeUserID,
		TargetStateID:  req.TargetStateID,
		DueAt:          req.DueAt,
		Notes:          req.Notes,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusCreated, toTaskDetailsResponse(t), "task created")
}

// Get handles GET /tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	t, err := h.svc.GetTask(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, toTaskDetailsResponse(t), "")
}

// Update handles PUT /tasks/{id}. The body is a partial object; the service
// rejects keys that are not editable.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	var patch map[string]json.RawMessage
	if err := decodeJSON(w, r, &patch); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	t, err := h.svc.UpdateTask(r.Context(), id, patch)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, toTaskDetailsResponse(t), "task updated")
}

// ListByBook handles GET /books/{id}/tasks.
func (h *TaskHandler) ListByBook(w http.ResponseWriter, r *http.Request) {
	bookID, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	tasks, err := h.svc.ListByBook(r.Context(), bookID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	envelope.WriteSuccess(w, http.StatusOK, out, "")
}

// CurrentTask handles GET /books/{id}/current-task. ?by=id selects the
// highest task id instead of the latest assignment.
func (h *TaskHandler) CurrentTask(w http.ResponseWriter, r *http.Request) {
	bookID, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	order, ok := domain.ParseCurrentTaskOrder(r.URL.Query().Get("by"))
	if !ok {
		writeDomainError(w, r, h.log, domain.NewValidationError("by", "must be assigned or id"))
		return
	}

	t, err := h.svc.CurrentTask(r.Context(), bookID, order)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, toTaskDetailsResponse(t), "")
}
