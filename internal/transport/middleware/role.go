package middleware

import (
	"net/http"
	"slices"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
	"github.com/heartmarshall/bookflow-backend/pkg/ctxutil"
	"github.com/heartmarshall/bookflow-backend/pkg/envelope"
)

// RequireRole admits principals whose role is in roles. Anonymous sessions
// are always rejected, even when the Lector role is listed.
// Must run after Authenticate.
func RequireRole(roles ...domain.RoleName) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := ctxutil.PrincipalFromCtx(r.Context())
			if !ok {
				envelope.WriteError(w, http.StatusUnauthorized, "not authenticated", nil)
				return
			}
			if p.IsAnonymous() || !slices.Contains(roles, p.RoleName) {
				envelope.WriteError(w, http.StatusForbidden, "insufficient permissions", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
