package rest

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/bookflow-backend/internal/config"
	"github.com/heartmarshall/bookflow-backend/internal/domain"
	"github.com/heartmarshall/bookflow-backend/internal/transport/middleware"
	"github.com/heartmarshall/bookflow-backend/pkg/envelope"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (domain.Principal, error)
}

// Handlers groups every handler the router mounts.
type Handlers struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	Book    *BookHandler
	Task    *TaskHandler
	History *HistoryHandler
	User    *UserHandler
}

// NewRouter builds the HTTP handler tree. Health probes live at the root;
// everything else is mounted under cfg.Server.APIPrefix.
func NewRouter(cfg config.Config, logger *slog.Logger, tokens tokenValidator, limiter *middleware.RateLimiter, h Handlers) http.Handler {
	mux := http.NewServeMux()
	prefix := strings.TrimRight(cfg.Server.APIPrefix, "/")

	route := func(method, path string, handler http.HandlerFunc, mws ...middleware.Middleware) {
		mux.Handle(method+" "+prefix+path, middleware.Chain(mws...)(handler))
	}

	public := middleware.Guard(middleware.Public, tokens)
	signed := middleware.Guard(middleware.Signed, tokens)
	staff := middleware.Guard(middleware.Staff, tokens)
	loginLimit := limiter.Limit(cfg.Server.LoginRateLimit)

	// Health
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	// Auth
	route("POST", "/auth/login", h.Auth.Login, loginLimit)
	route("POST", "/auth/login-anonymous", h.Auth.LoginAnonymous, loginLimit)
	route("POST", "/auth/restore-password", h.Auth.RestorePassword)
	route("POST", "/auth/change-password", h.Auth.ChangePassword, signed)
	route("POST", "/auth/logout", h.Auth.Logout, signed)
	route("GET", "/auth/me", h.Auth.Me, signed)

	// Books and reference data
	route("GET", "/books", h.Book.List, public)
	route("GET", "/books/{id}", h.Book.Get, public)
	route("POST", "/books", h.Book.Create, staff)
	route("PUT", "/books/{id}", h.Book.Update, staff)
	route("DELETE", "/books/{id}", h.Book.Delete, staff)
	route("GET", "/books/{id}/tasks", h.Task.ListByBook, staff)
	route("GET", "/books/{id}/current-task", h.Task.CurrentTask, staff)
	route("GET", "/states", h.Book.ListStates, public)
	route("GET", "/categories", h.Book.ListCategories, public)
	route("POST", "/categories", h.Book.CreateCategory, staff)
	route("PUT", "/categories/{id}", h.Book.UpdateCategory, staff)

	// Tasks
	route("GET", "/tasks", h.Task.Search, staff)
	route("POST", "/tasks", h.Task.Create, staff)
	route("GET", "/tasks/{id}", h.Task.Get, staff)
	route("PUT", "/tasks/{id}", h.Task.Update, staff)

	// History
	route("GET", "/history", h.History.List, staff)
	route("GET", "/history/recent", h.History.Recent, staff)
	route("GET", "/history/actions", h.History.Actions, staff)
	route("GET", "/history/target-types", h.History.TargetTypes, staff)
	route("GET", "/history/user/{id}", h.History.UserActivity, staff)
	route("GET", "/history/target/{type}/{id}", h.History.ByTarget, staff)
	route("GET", "/history/{id}", h.History.Get, staff)

	// Users
	route("GET", "/users/roles", h.User.Roles, staff)
	route("GET", "/users", h.User.List, staff)
	route("POST", "/users", h.User.Create, staff)
	route("GET", "/users/{id}", h.User.Get, staff)
	route("PUT", "/users/{id}", h.User.Update, staff)
	route("DELETE", "/users/{id}", h.User.Deactivate, staff)
	route("PATCH", "/users/{id}/activate", h.User.Activate, staff)

	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		envelope.WriteError(w, http.StatusNotFound, "route not found", nil)
	})

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}
