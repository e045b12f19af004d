package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bookflow-backend/internal/service/auth"
	"github.com/heartmarshall/bookflow-backend/pkg/envelope"
)

type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	LoginAnonymous(ctx context.Context) (*auth.AuthResult, error)
	ChangePassword(ctx context.Context, input auth.ChangePasswordInput) error
	RestorePassword(ctx context.Context, email string) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*auth.MeResult, error)
}

// AuthHandler serves the /auth endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required"`
}

type restorePasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	res, err := h.svc.Login(r.Context(), auth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, toAuthResponse(res), "login successful")
}

// LoginAnonymous handles POST /auth/login-anonymous.
func (h *AuthHandler) LoginAnonymous(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.LoginAnonymous(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, toAuthResponse(res), "anonymous session started")
}

// ChangePassword handles POST /auth/change-password.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	err := h.svc.ChangePassword(r.Context(), auth.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, nil, "password changed")
}

// RestorePassword handles POST /auth/restore-password.
func (h *AuthHandler) RestorePassword(w http.ResponseWriter, r *http.Request) {
	var req restorePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if err := h.svc.RestorePassword(r.Context(), req.Email); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, nil, "restore instructions sent")
}

// Logout handles POST /auth/logout. Tokens are stateless, so this only
// records the event.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, nil, "logged out")
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Me(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, meResponse{
		Principal: toPrincipalResponse(res.Principal),
		User:      toUserResponse(res.User),
	}, "")
}
