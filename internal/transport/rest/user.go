package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
	"github.com/heartmarshall/bookflow-backend/internal/service/user"
	"github.com/heartmarshall/bookflow-backend/pkg/envelope"
)

type userService interface {
	ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	CreateUser(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, input user.UpdateUserInput) (*user.UpdateResult, error)
	DeactivateUser(ctx context.Context, id int64) error
	ActivateUser(ctx context.Context, id int64) error
	ListRoles(ctx context.Context) ([]domain.Role, error)
}

// UserHandler serves staff account administration.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type createUserRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName"  validate:"required,max=100"`
	Email     string `json:"email"     validate:"required,email,max=255"`
	Password  string `json:"password"  validate:"required,max=72"`
	RoleID    int64  `json:"roleId"    validate:"required,gt=0"`
}

type updateUserRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName"  validate:"omitempty,max=100"`
	Email     *string `json:"email"     validate:"omitempty,email,max=255"`
	RoleID    *int64  `json:"roleId"    validate:"omitempty,gt=0"`
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	filter := domain.UserFilter{
		Active: q.boolPtr("active"),
		RoleID: q.int64Ptr("roleId"),
	}
	if err := q.err(); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	users, err := h.svc.ListUsers(r.Context(), filter)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, toUserResponses(users), "")
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	u, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, toUserResponse(u), "")
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	u, err := h.svc.CreateUser(r.Context(), user.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		RoleID:    req.RoleID,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusCreated, toUserResponse(u), "user created")
}

// Update handles PUT /users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	var req updateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	res, err := h.svc.UpdateUser(r.Context(), user.UpdateUserInput{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		RoleID:    req.RoleID,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, updateUserResponse{
		User:    toUserResponse(res.User),
		Changes: res.Changes,
	}, "user updated")
}

// Deactivate handles DELETE /users/{id}. Users are never removed.
func (h *UserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeactivateUser(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, nil, "user deactivated")
}

// Activate handles PATCH /users/{id}/activate.
func (h *UserHandler) Activate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if err := h.svc.ActivateUser(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, nil, "user activated")
}

// Roles handles GET /users/roles.
func (h *UserHandler) Roles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.svc.ListRoles(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := make([]roleResponse, 0, len(roles))
	for _, role := range roles {
		out = append(out, toRoleResponse(role))
	}
	envelope.WriteSuccess(w, http.StatusOK, out, "")
}
