package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
	"github.com/heartmarshall/bookflow-backend/pkg/ctxutil"
	"github.com/heartmarshall/bookflow-backend/pkg/envelope"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (domain.Principal, error)
}

// Authenticate requires a valid bearer token and stores the resolved
// principal in the request context.
func Authenticate(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, present := extractBearerToken(r)
			if !present {
				envelope.WriteError(w, http.StatusUnauthorized, "token not provided", nil)
				return
			}
			serveWithToken(validator, token, next, w, r)
		})
	}
}

// OptionalAuthenticate lets requests without an Authorization header through
// as the anonymous principal. A header that is present must carry a valid
// bearer token.
func OptionalAuthenticate(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				ctx := ctxutil.WithPrincipal(r.Context(), domain.AnonymousPrincipal())
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
			token, present := extractBearerToken(r)
			if !present {
				envelope.WriteError(w, http.StatusUnauthorized, "token not provided", nil)
				return
			}
			serveWithToken(validator, token, next, w, r)
		})
	}
}

func serveWithToken(validator tokenValidator, token string, next http.Handler, w http.ResponseWriter, r *http.Request) {
	p, err := validator.ValidateAccessToken(token)
	if err != nil {
		envelope.WriteError(w, http.StatusUnauthorized, "invalid or expired token", nil)
		return
	}
	if rec, ok := w.(principalRecorder); ok {
		rec.recordPrincipal(p)
	}
	next.ServeHTTP(w, r.WithContext(ctxutil.WithPrincipal(r.Context(), p)))
}

// extractBearerToken returns the token and whether the header used the
// Bearer scheme.
func extractBearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	return token, token != ""
}
